package cli

import (
	"fmt"

	"github.com/apiscaffold/apiscaffold/internal/branding"
	"github.com/apiscaffold/apiscaffold/internal/config"
	"github.com/apiscaffold/apiscaffold/internal/console"
	"github.com/apiscaffold/apiscaffold/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	// settings is resolved once per invocation by the root pre-run hook.
	settings config.Settings
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates a ready-to-use API layer for a React/TypeScript project:
an axios instance with auth interceptors, react-query data hooks and storage
helpers, then installs the packages they depend on.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load()
		if err != nil {
			return err
		}
		settings = s
		logger.Init(cmd.ErrOrStderr(), s.LogLevel)
		logger.Debug("config loaded", "file", config.FilePath(), "layout", s.Layout, "install", s.Install)
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionLine() + "\n")

	err := rootCmd.Execute()
	if err != nil {
		console.New(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).Error("Error: %v", err)
	}
	return err
}

func versionLine() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", branding.CLIName(), buildVersion, buildCommit, buildDate)
}
