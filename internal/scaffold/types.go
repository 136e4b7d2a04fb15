package scaffold

import (
	"fmt"

	"github.com/apiscaffold/apiscaffold/internal/pkgmgr"
)

// Kind distinguishes the two things a Resolver can be asked about.
type Kind int

const (
	KindFolder Kind = iota
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Decision is the answer to an existing folder or file.
// Folders accept all three; files accept skip and overwrite.
type Decision string

const (
	DecisionSkip      Decision = "skip"
	DecisionOverwrite Decision = "overwrite"
	DecisionMerge     Decision = "merge"
)

// Resolver decides what to do with a folder or file that already exists.
// path is relative to the working directory, slash separated.
type Resolver interface {
	Resolve(kind Kind, path string) (Decision, error)
}

// Action is what the planner did to one folder or file.
type Action string

const (
	ActionCreate    Action = "create"
	ActionOverwrite Action = "overwrite"
	ActionMerge     Action = "merge"
	ActionSkip      Action = "skip"
)

// RunContext is the read-only input of one invocation.
type RunContext struct {
	WorkDir        string
	BaseURL        string
	PackageManager pkgmgr.Manager
	Layout         string
}

// Entry records one planner step.
type Entry struct {
	Kind   Kind
	Path   string // relative, slash separated
	Action Action
	Reason string // set for skips that were not a user decision
}

// Summary is the ordered record of a run.
type Summary struct {
	Entries []Entry
}

// Count returns how many entries of kind ended with action.
func (s *Summary) Count(kind Kind, action Action) int {
	n := 0
	for _, e := range s.Entries {
		if e.Kind == kind && e.Action == action {
			n++
		}
	}
	return n
}

// Paths returns the paths of kind that ended with action, in run order.
func (s *Summary) Paths(kind Kind, action Action) []string {
	var paths []string
	for _, e := range s.Entries {
		if e.Kind == kind && e.Action == action {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// FilesystemError reports a failed create, delete or write with the path involved.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
