package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apiscaffold/apiscaffold/internal/scaffold"
	"golang.org/x/term"
)

// ErrInteractionUnavailable is returned when a question needs an answer but
// stdin is not an interactive terminal.
var ErrInteractionUnavailable = errors.New("interactive input unavailable: run this command from a terminal")

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// New returns a Prompter. interactive reports whether in is a live user.
func New(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// FromTerminal returns a Prompter over in, interactive only when in is a terminal.
func FromTerminal(in *os.File, out io.Writer) *Prompter {
	return New(in, out, IsTerminal(in))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Interactive reports whether the Prompter may ask questions.
func (p *Prompter) Interactive() bool { return p.interactive }

type choice struct {
	label    string
	decision scaffold.Decision
}

var (
	folderChoices = []choice{
		{"Skip and continue", scaffold.DecisionSkip},
		{"Overwrite (delete and recreate)", scaffold.DecisionOverwrite},
		{"Create missing files only", scaffold.DecisionMerge},
	}
	fileChoices = []choice{
		{"Skip", scaffold.DecisionSkip},
		{"Overwrite", scaffold.DecisionOverwrite},
	}
)

// Resolve asks what to do with an existing folder (skip, overwrite, merge;
// default merge) or file (skip, overwrite; default skip). An empty answer takes
// the default. An unrecognized answer is an error; there is no retry.
func (p *Prompter) Resolve(kind scaffold.Kind, path string) (scaffold.Decision, error) {
	if !p.interactive {
		return "", ErrInteractionUnavailable
	}

	choices, def, label := fileChoices, scaffold.DecisionSkip, "File"
	if kind == scaffold.KindFolder {
		choices, def, label = folderChoices, scaffold.DecisionMerge, "Directory"
	}

	defIdx := 0
	fmt.Fprintf(p.out, "\n? %s %s already exists. What would you like to do?\n", label, path)
	for i, c := range choices {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, c.label)
		if c.decision == def {
			defIdx = i + 1
		}
	}
	fmt.Fprintf(p.out, "Enter number [1-%d] (default %d): ", len(choices), defIdx)

	answer, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}
	if answer == "" {
		return def, nil
	}

	if num, err := strconv.Atoi(answer); err == nil && num >= 1 && num <= len(choices) {
		return choices[num-1].decision, nil
	}
	for _, c := range choices {
		if strings.EqualFold(answer, string(c.decision)) {
			return c.decision, nil
		}
	}
	return "", fmt.Errorf("invalid selection %q: choose 1-%d", answer, len(choices))
}

// readLine returns the next trimmed line. A final line without a newline is
// returned as-is; io.EOF is only reported when nothing was read.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
