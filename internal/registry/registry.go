package registry

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed layouts.yaml
var rawLayouts []byte

//go:embed templates
var templateFS embed.FS

const templatesDir = "templates"

var (
	builtin     *Registry
	builtinOnce sync.Once
	builtinErr  error
)

// Data holds the values available to templated sources.
type Data struct {
	BaseURL string
}

// Load returns the registry compiled into the binary. It is parsed and
// validated on first use.
func Load() (*Registry, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = Parse(rawLayouts)
		if builtinErr != nil {
			builtinErr = fmt.Errorf("built-in layouts: %w", builtinErr)
		}
	})
	return builtin, builtinErr
}

// Parse validates layouts YAML against the schema, decodes it, and checks the
// rules the schema cannot express: owned file paths, template sources present in
// the embedded templates, one templated file per layout, and semver constraints.
func Parse(data []byte) (*Registry, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid layouts:\n  %s", strings.Join(msgs, "\n  "))
	}

	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding layouts: %w", err)
	}
	if err := r.check(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Registry) check() error {
	var errs []error

	for _, dep := range r.Dependencies {
		if dep.Version == "" {
			continue
		}
		if _, err := semver.NewConstraint(dep.Version); err != nil {
			errs = append(errs, fmt.Errorf("dependency %s: invalid version constraint %q: %w", dep.Name, dep.Version, err))
		}
	}

	seen := make(map[string]bool)
	for i := range r.Layouts {
		l := &r.Layouts[i]
		if seen[l.Name] {
			errs = append(errs, fmt.Errorf("layout %q is defined twice", l.Name))
		}
		seen[l.Name] = true

		templated := 0
		for _, f := range l.Files {
			if _, ok := l.FolderOf(f.Path); !ok {
				errs = append(errs, fmt.Errorf("layout %s: %s is outside the listed folders", l.Name, f.Path))
			}
			if _, err := fs.Stat(templateFS, path.Join(templatesDir, f.Source)); err != nil {
				errs = append(errs, fmt.Errorf("layout %s: template %s: %w", l.Name, f.Source, err))
			}
			if f.Templated() {
				templated++
			}
		}
		if templated != 1 {
			errs = append(errs, fmt.Errorf("layout %s: want exactly one templated file, found %d", l.Name, templated))
		}
	}

	if !seen[r.DefaultLayout] {
		errs = append(errs, fmt.Errorf("default layout %q is not defined", r.DefaultLayout))
	}

	return errors.Join(errs...)
}

// Layout returns the named layout. An empty name selects the default.
func (r *Registry) Layout(name string) (*Layout, error) {
	if name == "" {
		name = r.DefaultLayout
	}
	for i := range r.Layouts {
		if r.Layouts[i].Name == name {
			return &r.Layouts[i], nil
		}
	}
	return nil, fmt.Errorf("unknown layout %q (available: %s)", name, strings.Join(r.Names(), ", "))
}

// Names lists the layout names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.Layouts))
	for i, l := range r.Layouts {
		names[i] = l.Name
	}
	return names
}

// Render produces the bytes to write for f. Sources ending in .tmpl are executed
// as text/template with data; all other sources are returned verbatim.
func Render(f File, data Data) ([]byte, error) {
	src, err := fs.ReadFile(templateFS, path.Join(templatesDir, f.Source))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", f.Source, err)
	}
	if !f.Templated() {
		return src, nil
	}

	tmpl, err := template.New(f.Source).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", f.Source, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", f.Source, err)
	}
	return buf.Bytes(), nil
}
