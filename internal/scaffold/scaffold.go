package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/rabellamy/generator-drupal-theme/internal/basetheme"
	"github.com/rabellamy/generator-drupal-theme/internal/branding"
	"github.com/rabellamy/generator-drupal-theme/internal/wizard"
	"github.com/spf13/afero"
)

// ErrTargetExists is wrapped by the FilesystemError returned when the theme
// directory is already present. Generate never merges into an existing tree.
var ErrTargetExists = errors.New("target directory already exists")

// FilesystemError reports a failed filesystem operation during generation.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// Region is a Drupal theme region declared in the .info file.
type Region struct {
	Key   string
	Label string
}

// DefaultRegions are the regions every generated theme declares.
var DefaultRegions = []Region{
	{"header", "Header"},
	{"navigation", "Navigation"},
	{"highlighted", "Highlighted"},
	{"help", "Help"},
	{"content", "Content"},
	{"sidebar_first", "First sidebar"},
	{"sidebar_second", "Second sidebar"},
	{"footer", "Footer"},
}

// Data holds all template variables available to scaffold templates.
type Data struct {
	ProjectName   string
	ProjectSlug   string
	BaseTheme     string         // catalog id, empty for none
	BaseThemeName string         // display name, empty for none
	Description   string
	Settings      map[string]any // base theme settings, may be nil
	SassDir       string
	CSSDir        string
	JSDir         string
	TemplateDir   string
	Regions       []Region
	Generator     string
	Date          string // YYYY-MM-DD shown in the .info header, omitted when empty
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Root  string
	Dirs  []string
	Files []string
}

// NewData builds template data from a finished wizard configuration.
func NewData(cfg *wizard.Config) *Data {
	d := &Data{
		ProjectName: cfg.ProjectName,
		ProjectSlug: cfg.ProjectSlug,
		BaseTheme:   cfg.BaseTheme,
		Settings:    cfg.BaseThemeSettings,
		SassDir:     cfg.SassDir,
		CSSDir:      cfg.CSSDir,
		JSDir:       cfg.JSDir,
		TemplateDir: cfg.TemplateDir,
		Regions:     DefaultRegions,
		Generator:   branding.CLIName(),
		Date:        time.Now().Format(time.DateOnly),
	}

	if desc, ok := basetheme.Lookup(cfg.BaseTheme); ok && cfg.BaseTheme != basetheme.None {
		d.BaseThemeName = desc.Name
		d.Description = fmt.Sprintf("%s, a sub-theme of %s.", cfg.ProjectName, desc.Name)
	} else {
		d.Description = fmt.Sprintf("%s theme.", cfg.ProjectName)
	}
	return d
}

// staticFiles are copied verbatim into the theme root.
var staticFiles = []struct {
	src string
	dst string
}{
	{"editorconfig", ".editorconfig"},
	{"jshintrc", ".jshintrc"},
}

const (
	templatesDir = "templates"
	infoTemplate = "theme.info.tmpl"
)

// Generate creates the theme directory in fsys. Steps run in order and stop
// at the first failure; anything already created stays on disk.
func Generate(fsys afero.Fs, data *Data) (*Result, error) {
	if data.ProjectSlug == "" {
		return nil, fmt.Errorf("project slug is empty")
	}

	// Create the theme root. An existing root is never reused.
	exists, err := afero.Exists(fsys, data.ProjectSlug)
	if err != nil {
		return nil, &FilesystemError{Op: "stat", Path: data.ProjectSlug, Err: err}
	}
	if exists {
		return nil, &FilesystemError{Op: "mkdir", Path: data.ProjectSlug, Err: ErrTargetExists}
	}
	if err := fsys.Mkdir(data.ProjectSlug, 0755); err != nil {
		return nil, &FilesystemError{Op: "mkdir", Path: data.ProjectSlug, Err: err}
	}

	root := afero.NewBasePathFs(fsys, data.ProjectSlug)
	result := &Result{Root: data.ProjectSlug}

	// Asset directories. Two roles may share a name.
	for _, dir := range []string{data.SassDir, data.CSSDir, data.JSDir, data.TemplateDir} {
		if err := root.MkdirAll(dir, 0755); err != nil {
			return nil, &FilesystemError{Op: "mkdir", Path: path.Join(data.ProjectSlug, dir), Err: err}
		}
		if !slices.Contains(result.Dirs, dir) {
			result.Dirs = append(result.Dirs, dir)
		}
	}

	// Rendered .info file.
	infoName := data.ProjectSlug + ".info"
	rendered, err := render(infoTemplate, data)
	if err != nil {
		return nil, err
	}
	if err := afero.WriteFile(root, infoName, rendered, 0644); err != nil {
		return nil, &FilesystemError{Op: "write", Path: path.Join(data.ProjectSlug, infoName), Err: err}
	}
	result.Files = append(result.Files, infoName)

	// Dotfiles.
	for _, f := range staticFiles {
		content, err := readTemplate(f.src)
		if err != nil {
			return nil, err
		}
		if err := afero.WriteFile(root, f.dst, content, 0644); err != nil {
			return nil, &FilesystemError{Op: "write", Path: path.Join(data.ProjectSlug, f.dst), Err: err}
		}
		result.Files = append(result.Files, f.dst)
	}

	return result, nil
}

func readTemplate(name string) ([]byte, error) {
	p := path.Join(templatesDir, name)
	b, err := fs.ReadFile(scaffoldFS, p)
	if err != nil {
		return nil, &FilesystemError{Op: "read template", Path: p, Err: err}
	}
	return b, nil
}

// render executes an embedded template with sprig functions.
func render(name string, data *Data) ([]byte, error) {
	tmplBytes, err := readTemplate(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// IsExist reports whether err means the theme directory was already there.
func IsExist(err error) bool {
	return errors.Is(err, ErrTargetExists) || errors.Is(err, os.ErrExist)
}

// String summarizes the result for log output.
func (r *Result) String() string {
	return fmt.Sprintf("%s (%s; %s)", r.Root, strings.Join(r.Dirs, ", "), strings.Join(r.Files, ", "))
}
