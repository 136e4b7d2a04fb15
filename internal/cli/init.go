package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apiscaffold/apiscaffold/internal/config"
	"github.com/apiscaffold/apiscaffold/internal/console"
	"github.com/apiscaffold/apiscaffold/internal/logger"
	"github.com/apiscaffold/apiscaffold/internal/pkgmgr"
	"github.com/apiscaffold/apiscaffold/internal/prompt"
	"github.com/apiscaffold/apiscaffold/internal/registry"
	"github.com/apiscaffold/apiscaffold/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the API layer in the current directory",
	Long: `Generate the API layer in the current directory.

Prompts for the API base URL, creates the config/api, config/instance, hooks and
utils folders with their TypeScript sources, and installs axios,
@tanstack/react-query, sonner and js-cookie with the project's package manager
(yarn.lock selects yarn, pnpm-lock.yaml selects pnpm, otherwise npm).

Existing folders can be skipped, overwritten or merged; existing files can be
skipped or overwritten. Must be run from an interactive terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		in := cmd.InOrStdin()
		interactive := false
		if f, ok := in.(*os.File); ok {
			interactive = prompt.IsTerminal(f)
		}

		return runInit(cmd.Context(), initOptions{
			WorkDir:   cwd,
			FS:        afero.NewOsFs(),
			Prompter:  prompt.New(in, cmd.OutOrStdout(), interactive),
			Printer:   console.New(cmd.OutOrStdout(), cmd.ErrOrStderr()),
			Settings:  settings,
			Installer: &pkgmgr.Installer{Stdin: in, Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		})
	},
}

// installer is satisfied by *pkgmgr.Installer.
type installer interface {
	Install(ctx context.Context, dir string, m pkgmgr.Manager, deps []registry.Dependency) error
}

type initOptions struct {
	WorkDir  string
	FS       afero.Fs
	Prompter *prompt.Prompter
	// Resolver answers conflicts. Nil means ask through Prompter.
	Resolver  scaffold.Resolver
	Printer   *console.Printer
	Settings  config.Settings
	Installer installer
}

func runInit(ctx context.Context, opts initOptions) error {
	reg, err := registry.Load()
	if err != nil {
		return err
	}
	layout, err := reg.Layout(opts.Settings.Layout)
	if err != nil {
		return err
	}

	// Every conflict needs an answer, so refuse before touching anything.
	if !opts.Prompter.Interactive() {
		return prompt.ErrInteractionUnavailable
	}

	baseURL, err := opts.Prompter.AskBaseURL(opts.Settings.BaseURL)
	if err != nil {
		return err
	}

	pm := pkgmgr.Detect(opts.FS, opts.WorkDir)
	rc := scaffold.RunContext{
		WorkDir:        opts.WorkDir,
		BaseURL:        baseURL,
		PackageManager: pm,
		Layout:         layout.Name,
	}
	logger.Info("scaffolding", "dir", rc.WorkDir, "layout", rc.Layout, "manager", rc.PackageManager)

	resolver := opts.Resolver
	if resolver == nil {
		resolver = opts.Prompter
	}

	p := opts.Printer
	p.Step("\nSetting up API structure (%s layout)...", layout.Name)

	planner := scaffold.New(opts.FS, resolver)
	planner.OnEntry = func(e scaffold.Entry) { reportEntry(p, e) }
	summary, err := planner.Apply(rc, layout)
	if err != nil {
		return fmt.Errorf("setting up API structure: %w", err)
	}
	p.Note("%s", summarize(summary))

	if opts.Settings.Install {
		installDependencies(ctx, p, opts.Installer, rc, reg.Dependencies)
	} else {
		p.Note("Skipping dependency install. Add them with: %s", manualCommand(pm, reg.Dependencies))
	}

	p.Success("\nAPI setup completed successfully!")
	if len(layout.Checklist) > 0 {
		p.Warn("Note: Ensure you have the following utilities in your project:")
		for _, item := range layout.Checklist {
			p.Warn("- %s", item)
		}
		p.Note("You may need to implement these utilities or remove their references if not needed.")
	}
	return nil
}

// installDependencies never fails the run; a failed install is reported with
// the command to run by hand.
func installDependencies(ctx context.Context, p *console.Printer, inst installer, rc scaffold.RunContext, deps []registry.Dependency) {
	p.Step("\nInstalling dependencies with %s...", rc.PackageManager)

	err := inst.Install(ctx, rc.WorkDir, rc.PackageManager, deps)
	if err == nil {
		p.Success("Dependencies installed successfully.")
		return
	}

	manual := manualCommand(rc.PackageManager, deps)
	var warn *pkgmgr.InstallWarning
	if errors.As(err, &warn) {
		manual = warn.Command
	}
	logger.Warn("dependency install failed", "manager", rc.PackageManager, "error", err)

	p.Error("Failed to install dependencies. Please install them manually:")
	p.Warn("Run: %s", manual)
}

func manualCommand(m pkgmgr.Manager, deps []registry.Dependency) string {
	specs := make([]string, len(deps))
	for i, d := range deps {
		specs[i] = d.Spec()
	}
	return pkgmgr.ShellCommand(m.Command(specs))
}

func reportEntry(p *console.Printer, e scaffold.Entry) {
	switch e.Kind {
	case scaffold.KindFolder:
		switch e.Action {
		case scaffold.ActionCreate:
			p.Success("Created directory: %s", e.Path)
		case scaffold.ActionOverwrite:
			p.Warn("Removed existing directory: %s", e.Path)
			p.Success("Created directory: %s", e.Path)
		case scaffold.ActionMerge:
			p.Note("Adding missing files to directory: %s", e.Path)
		case scaffold.ActionSkip:
			p.Warn("Skipping directory: %s", e.Path)
		}
	case scaffold.KindFile:
		switch e.Action {
		case scaffold.ActionCreate:
			p.Success("Created file: %s", e.Path)
		case scaffold.ActionOverwrite:
			p.Success("Overwrote file: %s", e.Path)
		case scaffold.ActionSkip:
			if e.Reason != "" {
				p.Warn("Skipping file %s as directory was skipped", e.Path)
				return
			}
			p.Warn("Skipping file: %s", e.Path)
		}
	}
}
