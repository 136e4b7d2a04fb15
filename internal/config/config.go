package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apiscaffold/apiscaffold/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood in config.yaml (and as APISCAFFOLD_<KEY> env vars).
const (
	KeyBaseURL  = "base_url"
	KeyLayout   = "layout"
	KeyInstall  = "install"
	KeyLogLevel = "log_level"
)

// DefaultBaseURL is offered by the base URL prompt when nothing else is configured.
const DefaultBaseURL = "https://pumpup-api.devstree.in/api/v1"

// Settings is the resolved configuration for one invocation.
type Settings struct {
	BaseURL  string
	Layout   string // empty selects the registry default
	Install  bool
	LogLevel string
}

// Dir returns the config directory: $APISCAFFOLD_HOME when set, else ~/.apiscaffold.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper from the config file and environment and returns the
// resolved settings. A missing config file is not an error.
func Load() (Settings, error) {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyBaseURL, DefaultBaseURL)
	viper.SetDefault(KeyLayout, "")
	viper.SetDefault(KeyInstall, true)
	viper.SetDefault(KeyLogLevel, "warn")

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}

	return Settings{
		BaseURL:  viper.GetString(KeyBaseURL),
		Layout:   viper.GetString(KeyLayout),
		Install:  viper.GetBool(KeyInstall),
		LogLevel: viper.GetString(KeyLogLevel),
	}, nil
}
