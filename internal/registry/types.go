package registry

import "strings"

// templateSuffix marks sources rendered with text/template. Everything else is
// copied byte-for-byte.
const templateSuffix = ".tmpl"

// Dependency is one npm package installed after scaffolding.
type Dependency struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"` // semver constraint, e.g. "^5"
}

// Spec returns the package argument for an install command ("axios@^1" or "axios").
func (d Dependency) Spec() string {
	if d.Version == "" {
		return d.Name
	}
	return d.Name + "@" + d.Version
}

// File is one generated file.
type File struct {
	Path   string `yaml:"path" json:"path"`     // relative to the working directory, slash separated
	Source string `yaml:"source" json:"source"` // relative to the embedded templates directory
}

// Templated reports whether the source receives run data when rendered.
func (f File) Templated() bool {
	return strings.HasSuffix(f.Source, templateSuffix)
}

// Layout is a named folder tree and the files written into it.
type Layout struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Folders     []string `yaml:"folders" json:"folders"`
	Files       []File   `yaml:"files" json:"files"`
	Checklist   []string `yaml:"checklist,omitempty" json:"checklist,omitempty"`
}

// FolderOf returns the listed folder that owns path: the longest folder that is
// path's directory or one of its ancestors.
func (l *Layout) FolderOf(path string) (string, bool) {
	best := ""
	for _, folder := range l.Folders {
		if strings.HasPrefix(path, folder+"/") && len(folder) > len(best) {
			best = folder
		}
	}
	return best, best != ""
}

// Registry is the parsed layouts.yaml.
type Registry struct {
	DefaultLayout string       `yaml:"default_layout" json:"default_layout"`
	Dependencies  []Dependency `yaml:"dependencies" json:"dependencies"`
	Layouts       []Layout     `yaml:"layouts" json:"layouts"`
}
