package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/apiscaffold/apiscaffold/internal/config"
	"github.com/apiscaffold/apiscaffold/internal/pkgmgr"
	"github.com/apiscaffold/apiscaffold/internal/registry"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var checkLayouts string

func init() {
	doctorCmd.Flags().StringVar(&checkLayouts, "check-layouts", "", "Validate a layouts file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment init depends on",
	Long: `Report the config file in use, the built-in layouts, the package manager init
would pick for the current directory, and which package manager binaries are on PATH.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkLayouts != "" {
			return runLayoutsCheck(out, checkLayouts)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		runConfigCheck(out)
		if err := runRegistryCheck(out); err != nil {
			return err
		}
		runRuntimeCheck(out, afero.NewOsFs(), cwd)
		return nil
	},
}

func runConfigCheck(w io.Writer) {
	fmt.Fprintln(w, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [INFO] No config file at %s, using defaults\n", path)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s\n", path)
	}
	fmt.Fprintf(w, "  [INFO] base_url=%s layout=%q install=%t\n", settings.BaseURL, settings.Layout, settings.Install)
}

func runRegistryCheck(w io.Writer) error {
	fmt.Fprintln(w, "Layouts check:")
	reg, err := registry.Load()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return err
	}
	for _, l := range reg.Layouts {
		marker := ""
		if l.Name == reg.DefaultLayout {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  [ OK ] %s%s: %d folders, %d files\n", l.Name, marker, len(l.Folders), len(l.Files))
	}
	if settings.Layout != "" {
		if _, err := reg.Layout(settings.Layout); err != nil {
			fmt.Fprintf(w, "  [FAIL] configured %v\n", err)
			return err
		}
	}
	return nil
}

func runRuntimeCheck(w io.Writer, fsys afero.Fs, dir string) {
	fmt.Fprintln(w, "Runtime check:")
	detected := pkgmgr.Detect(fsys, dir)
	fmt.Fprintf(w, "  [INFO] %s would install with %s\n", dir, detected)
	for _, m := range []pkgmgr.Manager{pkgmgr.NPM, pkgmgr.Yarn, pkgmgr.PNPM} {
		checkBinary(w, string(m))
	}
}

func checkBinary(w io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}

// runLayoutsCheck validates a layouts file against the registry schema and rules.
func runLayoutsCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Layouts validation: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("reading layouts file: %w", err)
	}

	result, err := registry.Validate(data)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("layouts validation failed: %w", err)
	}
	if !result.Valid {
		fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "    - %s\n", issue)
		}
		return fmt.Errorf("layouts file %s has %d validation issue(s)", path, len(result.Issues))
	}

	reg, err := registry.Parse(data)
	if err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(w, "    - %s\n", line)
		}
		return fmt.Errorf("layouts file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Valid layouts file: %s\n", strings.Join(reg.Names(), ", "))
	return nil
}
