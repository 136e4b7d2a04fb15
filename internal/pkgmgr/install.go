package pkgmgr

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/apiscaffold/apiscaffold/internal/logger"
	"github.com/apiscaffold/apiscaffold/internal/registry"
	"mvdan.cc/sh/v3/syntax"
)

// InstallWarning reports a failed install. Command is the shell line to run
// manually.
type InstallWarning struct {
	Command string
	Err     error
}

func (w *InstallWarning) Error() string {
	return fmt.Sprintf("installing dependencies: %v (run manually: %s)", w.Err, w.Command)
}

func (w *InstallWarning) Unwrap() error { return w.Err }

// Installer runs package manager commands with the terminal's streams.
type Installer struct {
	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Install adds deps to the project in dir using m. Output streams straight
// through. A missing binary or non-zero exit yields *InstallWarning.
func (i *Installer) Install(ctx context.Context, dir string, m Manager, deps []registry.Dependency) error {
	specs := make([]string, len(deps))
	for n, d := range deps {
		specs[n] = d.Spec()
	}
	argv := m.Command(specs)
	manual := ShellCommand(argv)

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return &InstallWarning{Command: manual, Err: fmt.Errorf("%s not found: %w", argv[0], err)}
	}

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = i.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = i.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = i.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	logger.Debug("running install", "dir", dir, "command", manual)
	if err := cmd.Run(); err != nil {
		return &InstallWarning{Command: manual, Err: err}
	}
	return nil
}

// ShellCommand renders argv as one line a POSIX shell would split back into the
// same arguments.
func ShellCommand(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			q = strconv.Quote(arg)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}
