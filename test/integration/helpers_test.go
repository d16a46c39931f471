//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rabellamy/generator-drupal-theme/internal/branding"
	"github.com/rabellamy/generator-drupal-theme/internal/prompt"
	"github.com/rabellamy/generator-drupal-theme/internal/scaffold"
	"github.com/rabellamy/generator-drupal-theme/internal/schema"
	"github.com/rabellamy/generator-drupal-theme/internal/store"
	"github.com/rabellamy/generator-drupal-theme/internal/wizard"
	"github.com/spf13/afero"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // DRUPALTHEME_HOME, holds config.yaml
	ProjectDir string // where themes are generated
	Fs         afero.Fs
}

// setupTestEnv creates isolated temp directories and points DRUPALTHEME_HOME
// at one of them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	env.Fs = afero.NewBasePathFs(afero.NewOsFs(), env.ProjectDir)

	t.Setenv(branding.EnvVar("HOME"), env.HomeDir)
	return env
}

// runWizard runs every step against the project store with scripted answers.
func runWizard(t *testing.T, env *testEnv, answers ...string) (*store.Store, *wizard.Config) {
	t.Helper()

	st, err := store.Open(env.Fs, ".", branding.StoreNamespace())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}

	input := strings.Join(answers, "\n") + "\n"
	var out strings.Builder
	p := &wizard.Pipeline{Asker: prompt.NewLineAsker(strings.NewReader(input), &out), Store: st}
	cfg, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Pipeline.Run: %v\n%s", err, out.String())
	}
	return st, cfg
}

// materialize validates the stored answers and generates the theme from them.
func materialize(t *testing.T, env *testEnv, st *store.Store) *scaffold.Result {
	t.Helper()

	res, err := schema.Validate(st.Values())
	if err != nil {
		t.Fatalf("schema.Validate: %v", err)
	}
	if !res.Valid {
		t.Fatalf("stored answers invalid: %v", res)
	}

	cfg, err := wizard.FromValues(st.Values())
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}

	result, err := scaffold.Generate(env.Fs, scaffold.NewData(cfg))
	if err != nil {
		t.Fatalf("scaffold.Generate: %v", err)
	}
	return result
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to NOT exist: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q", path, substr)
	}
}
