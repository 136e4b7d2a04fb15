package registry

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadBuiltin(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if r.DefaultLayout != "src" {
		t.Errorf("DefaultLayout = %q, want %q", r.DefaultLayout, "src")
	}
	if diff := cmp.Diff([]string{"src", "flat"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	var specs []string
	for _, d := range r.Dependencies {
		specs = append(specs, d.Spec())
	}
	want := []string{"axios@^1", "@tanstack/react-query@^5", "sonner@>=1", "js-cookie@^3"}
	if diff := cmp.Diff(want, specs); diff != "" {
		t.Errorf("dependency specs mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutFolders(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		name    string
		folders []string
		files   int
	}{
		{"src", []string{"src/config/api", "src/config/instance", "src/hooks", "src/utils"}, 8},
		{"flat", []string{"config/api", "config/instance", "hooks"}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := r.Layout(tt.name)
			if err != nil {
				t.Fatalf("Layout(%q) error: %v", tt.name, err)
			}
			if diff := cmp.Diff(tt.folders, l.Folders); diff != "" {
				t.Errorf("folders mismatch (-want +got):\n%s", diff)
			}
			if len(l.Files) != tt.files {
				t.Errorf("got %d files, want %d", len(l.Files), tt.files)
			}
			if len(l.Checklist) == 0 {
				t.Error("checklist should not be empty")
			}
		})
	}
}

func TestLayoutDefaultAndUnknown(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	l, err := r.Layout("")
	if err != nil {
		t.Fatalf("Layout(\"\") error: %v", err)
	}
	if l.Name != "src" {
		t.Errorf("default layout = %q, want %q", l.Name, "src")
	}

	_, err = r.Layout("nope")
	if err == nil {
		t.Fatal("expected error for unknown layout")
	}
	if !strings.Contains(err.Error(), "src, flat") {
		t.Errorf("error should list available layouts, got: %v", err)
	}
}

func TestRenderEmbedsBaseURLOnce(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	const baseURL = "https://api.example.com/v1"

	for _, l := range r.Layouts {
		for _, f := range l.Files {
			out, err := Render(f, Data{BaseURL: baseURL})
			if err != nil {
				t.Fatalf("Render(%s) error: %v", f.Path, err)
			}
			content := string(out)

			if f.Templated() {
				if !strings.Contains(content, "baseURL: '"+baseURL+"'") {
					t.Errorf("%s/%s: base URL not embedded:\n%s", l.Name, f.Path, content)
				}
				if strings.Contains(content, "{{") {
					t.Errorf("%s/%s: unrendered placeholder left behind", l.Name, f.Path)
				}
				continue
			}
			if strings.Contains(content, baseURL) {
				t.Errorf("%s/%s: base URL should only appear in the templated file", l.Name, f.Path)
			}
		}
	}
}

func TestRenderVerbatim(t *testing.T) {
	f := File{Path: "src/config/api/api.ts", Source: "api.ts"}
	out, err := Render(f, Data{BaseURL: "https://ignored.example.com"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := `const API = {
  auth: {
    login: 'auth/login'
  },
};

Object.freeze(API);
export default API;
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("api.ts mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFlatInstanceDropsStorage(t *testing.T) {
	out, err := Render(File{Path: "config/instance/instance.ts", Source: "flat/instance.ts.tmpl"}, Data{BaseURL: "http://localhost:3000"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	content := string(out)
	if strings.Contains(content, "@/utils/storage") {
		t.Error("flat instance should not import storage helpers")
	}
	if !strings.Contains(content, "baseURL: 'http://localhost:3000'") {
		t.Error("flat instance should embed the base URL")
	}
}

func TestRenderMissingSource(t *testing.T) {
	_, err := Render(File{Path: "x/y.ts", Source: "missing.ts"}, Data{})
	if err == nil {
		t.Fatal("expected error for missing template source")
	}
}

func TestFolderOf(t *testing.T) {
	l := &Layout{Folders: []string{"src/config", "src/config/api", "src/hooks"}}

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"src/config/api/api.ts", "src/config/api", true},
		{"src/config/settings.ts", "src/config", true},
		{"src/hooks/useFetchData.ts", "src/hooks", true},
		{"src/hooksx/a.ts", "", false},
		{"README.md", "", false},
	}

	for _, tt := range tests {
		got, ok := l.FolderOf(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FolderOf(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDependencySpec(t *testing.T) {
	tests := []struct {
		dep  Dependency
		want string
	}{
		{Dependency{Name: "axios"}, "axios"},
		{Dependency{Name: "axios", Version: "^1"}, "axios@^1"},
		{Dependency{Name: "@tanstack/react-query", Version: "^5"}, "@tanstack/react-query@^5"},
	}
	for _, tt := range tests {
		if got := tt.dep.Spec(); got != tt.want {
			t.Errorf("Spec() = %q, want %q", got, tt.want)
		}
	}
}

const validLayouts = `default_layout: mini
dependencies:
  - name: axios
    version: "^1"
layouts:
  - name: mini
    folders: [src/config/instance]
    files:
      - path: src/config/instance/instance.ts
        source: instance.ts.tmpl
`

func TestParseValid(t *testing.T) {
	r, err := Parse([]byte(validLayouts))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	l, err := r.Layout("")
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if l.Name != "mini" || len(l.Files) != 1 || !l.Files[0].Templated() {
		t.Errorf("unexpected layout: %+v", l)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing layouts",
			yaml:    "default_layout: src\ndependencies: []\n",
			wantErr: "invalid layouts",
		},
		{
			name:    "bad layout name",
			yaml:    strings.Replace(validLayouts, "name: mini", "name: Mini Layout", 1),
			wantErr: "invalid layouts",
		},
		{
			name:    "parent escape",
			yaml:    strings.Replace(validLayouts, "path: src/config/instance/instance.ts", "path: ../instance.ts", 1),
			wantErr: "invalid layouts",
		},
		{
			name:    "unknown key",
			yaml:    validLayouts + "extra: true\n",
			wantErr: "invalid layouts",
		},
		{
			name:    "bad constraint",
			yaml:    strings.Replace(validLayouts, `version: "^1"`, `version: "not-a-version"`, 1),
			wantErr: "invalid version constraint",
		},
		{
			name:    "file outside folders",
			yaml:    strings.Replace(validLayouts, "folders: [src/config/instance]", "folders: [src/hooks]", 1),
			wantErr: "outside the listed folders",
		},
		{
			name:    "missing source",
			yaml:    strings.Replace(validLayouts, "source: instance.ts.tmpl", "source: nowhere.ts.tmpl", 1),
			wantErr: "template nowhere.ts.tmpl",
		},
		{
			name:    "no templated file",
			yaml:    strings.Replace(validLayouts, "source: instance.ts.tmpl", "source: api.ts", 1),
			wantErr: "exactly one templated file",
		},
		{
			name:    "unknown default",
			yaml:    strings.Replace(validLayouts, "default_layout: mini", "default_layout: other", 1),
			wantErr: `default layout "other"`,
		},
		{
			name:    "not yaml",
			yaml:    "layouts: [",
			wantErr: "parsing YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsIssuePaths(t *testing.T) {
	yml := strings.Replace(validLayouts, "folders: [src/config/instance]", "folders: []", 1)
	result, err := Validate([]byte(yml))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result for empty folders")
	}
	found := false
	for _, issue := range result.Issues {
		if strings.HasPrefix(issue.Path, "/layouts/0/folders") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an issue under /layouts/0/folders, got %v", result.Issues)
	}
}
