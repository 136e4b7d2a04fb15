package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apiscaffold/apiscaffold/internal/logger"
	"github.com/apiscaffold/apiscaffold/internal/registry"
	"github.com/spf13/afero"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var errNotDir = errors.New("exists and is not a directory")

// Planner applies a layout to a working directory.
type Planner struct {
	fs       afero.Fs
	resolver Resolver

	// OnEntry, when set, is called as each step is recorded.
	OnEntry func(Entry)
}

// New returns a Planner over fsys that consults resolver for existing targets.
func New(fsys afero.Fs, resolver Resolver) *Planner {
	return &Planner{fs: fsys, resolver: resolver}
}

// Apply creates the layout's folders in order, then writes its files in order.
// The first filesystem or resolver error aborts the run; earlier writes stay.
func (p *Planner) Apply(rc RunContext, layout *registry.Layout) (*Summary, error) {
	s := &Summary{}
	skipped := make(map[string]bool)

	for _, folder := range layout.Folders {
		abs, err := safeJoin(rc.WorkDir, folder)
		if err != nil {
			return nil, err
		}
		act, err := p.ensureFolder(folder, abs)
		if err != nil {
			return nil, err
		}
		if act == ActionSkip {
			skipped[folder] = true
		}
		p.record(s, Entry{Kind: KindFolder, Path: folder, Action: act})
	}

	data := registry.Data{BaseURL: rc.BaseURL}
	for _, f := range layout.Files {
		if folder, ok := layout.FolderOf(f.Path); ok && skipped[folder] {
			p.record(s, Entry{
				Kind:   KindFile,
				Path:   f.Path,
				Action: ActionSkip,
				Reason: fmt.Sprintf("directory %s was skipped", folder),
			})
			continue
		}

		abs, err := safeJoin(rc.WorkDir, f.Path)
		if err != nil {
			return nil, err
		}
		act, err := p.writeFile(f, abs, data)
		if err != nil {
			return nil, err
		}
		p.record(s, Entry{Kind: KindFile, Path: f.Path, Action: act})
	}

	return s, nil
}

func (p *Planner) ensureFolder(rel, abs string) (Action, error) {
	info, err := p.fs.Stat(abs)
	switch {
	case err == nil && !info.IsDir():
		return "", &FilesystemError{Op: "create directory", Path: abs, Err: errNotDir}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", &FilesystemError{Op: "stat", Path: abs, Err: err}
	case err != nil:
		if err := p.fs.MkdirAll(abs, dirPerm); err != nil {
			return "", &FilesystemError{Op: "create directory", Path: abs, Err: err}
		}
		return ActionCreate, nil
	}

	d, err := p.resolver.Resolve(KindFolder, rel)
	if err != nil {
		return "", fmt.Errorf("directory %s: %w", rel, err)
	}
	logger.Debug("folder exists", "path", rel, "decision", d)

	switch d {
	case DecisionSkip:
		return ActionSkip, nil
	case DecisionMerge:
		return ActionMerge, nil
	case DecisionOverwrite:
		if err := p.fs.RemoveAll(abs); err != nil {
			return "", &FilesystemError{Op: "remove directory", Path: abs, Err: err}
		}
		if err := p.fs.MkdirAll(abs, dirPerm); err != nil {
			return "", &FilesystemError{Op: "create directory", Path: abs, Err: err}
		}
		return ActionOverwrite, nil
	default:
		return "", fmt.Errorf("directory %s: unsupported decision %q", rel, d)
	}
}

func (p *Planner) writeFile(f registry.File, abs string, data registry.Data) (Action, error) {
	info, err := p.fs.Stat(abs)
	exists := err == nil
	switch {
	case exists && info.IsDir():
		return "", &FilesystemError{Op: "write file", Path: abs, Err: errors.New("is a directory")}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", &FilesystemError{Op: "stat", Path: abs, Err: err}
	}

	act := ActionCreate
	if exists {
		d, err := p.resolver.Resolve(KindFile, f.Path)
		if err != nil {
			return "", fmt.Errorf("file %s: %w", f.Path, err)
		}
		logger.Debug("file exists", "path", f.Path, "decision", d)

		switch d {
		case DecisionSkip:
			return ActionSkip, nil
		case DecisionOverwrite:
			act = ActionOverwrite
		default:
			return "", fmt.Errorf("file %s: unsupported decision %q", f.Path, d)
		}
	}

	content, err := registry.Render(f, data)
	if err != nil {
		return "", err
	}
	if err := p.writeAtomic(abs, content); err != nil {
		return "", &FilesystemError{Op: "write file", Path: abs, Err: err}
	}
	return act, nil
}

// writeAtomic writes data to a temp file beside p and renames it into place, so
// an interrupted write never leaves a truncated template behind.
func (p *Planner) writeAtomic(path string, data []byte) (err error) {
	f, err := afero.TempFile(p.fs, filepath.Dir(path), ".apiscaffold-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		_ = f.Close()
		if err != nil {
			_ = p.fs.Remove(tmp)
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = p.fs.Chmod(tmp, filePerm); err != nil {
		return err
	}
	return p.fs.Rename(tmp, path)
}

func (p *Planner) record(s *Summary, e Entry) {
	s.Entries = append(s.Entries, e)
	if p.OnEntry != nil {
		p.OnEntry(e)
	}
}

// safeJoin resolves a slash-separated registry path under baseDir, refusing
// absolute paths and parent escapes.
func safeJoin(baseDir, rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimSpace(rel)))
	if clean == "." || clean == ".." || filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" ||
		strings.HasPrefix(clean, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid template path %q", rel)
	}
	return filepath.Join(baseDir, clean), nil
}
