package pkgmgr

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Manager identifies a package manager by its binary name.
type Manager string

// Supported package managers.
const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
)

// lockfiles are checked in order; the first match wins.
var lockfiles = []struct {
	name    string
	manager Manager
}{
	{"yarn.lock", Yarn},
	{"pnpm-lock.yaml", PNPM},
}

// Detect picks the package manager for dir from the lockfile present there,
// defaulting to npm.
func Detect(fsys afero.Fs, dir string) Manager {
	for _, lf := range lockfiles {
		if ok, _ := afero.Exists(fsys, filepath.Join(dir, lf.name)); ok {
			return lf.manager
		}
	}
	return NPM
}

// Command returns the argv that adds packages with m.
func (m Manager) Command(packages []string) []string {
	var argv []string
	switch m {
	case Yarn:
		argv = []string{"yarn", "add"}
	case PNPM:
		argv = []string{"pnpm", "add"}
	default:
		argv = []string{"npm", "install"}
	}
	return append(argv, packages...)
}
