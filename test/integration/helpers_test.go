//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // APISCAFFOLD_HOME, holds config.yaml
	BinDir     string // sole PATH entry, holds fake package managers
	ProjectDir string // the project being scaffolded
	LogFile    string // fake package managers append their argv here
}

// setupTestEnv creates isolated temp directories and points APISCAFFOLD_HOME and
// PATH at them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake package managers are shell scripts")
	}

	env := &testEnv{
		HomeDir:    t.TempDir(),
		BinDir:     t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	env.LogFile = filepath.Join(env.BinDir, "calls.log")

	t.Setenv("APISCAFFOLD_HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir)
	return env
}

// fakeManager installs a package manager script that logs its working
// directory and arguments, then exits with code.
func fakeManager(t *testing.T, env *testEnv, name string, code int) {
	t.Helper()
	script := "#!/bin/sh\n" +
		"echo \"$(pwd) " + name + " $*\" >> '" + env.LogFile + "'\n" +
		"exit " + strconv.Itoa(code) + "\n"
	writeFile(t, filepath.Join(env.BinDir, name), script)
	if err := os.Chmod(filepath.Join(env.BinDir, name), 0755); err != nil {
		t.Fatal(err)
	}
}

func readCalls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q", path, substr)
	}
}
