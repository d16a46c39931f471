//go:build integration

package integration_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rabellamy/generator-drupal-theme/internal/scaffold"
	"github.com/rabellamy/generator-drupal-theme/internal/store"
	"github.com/rabellamy/generator-drupal-theme/internal/wizard"
)

// TestFullFlowDefaults tests the complete flow:
// answer the wizard -> validate the store -> generate -> verify the tree.
func TestFullFlowDefaults(t *testing.T) {
	env := setupTestEnv(t)

	st, cfg := runWizard(t, env, "My Great Theme", "1", "n")
	if cfg.ProjectSlug != "my-great-theme" {
		t.Fatalf("ProjectSlug = %q", cfg.ProjectSlug)
	}
	assertFileExists(t, filepath.Join(env.ProjectDir, store.FileName))

	result := materialize(t, env, st)

	root := filepath.Join(env.ProjectDir, result.Root)
	for _, d := range []string{"sass", "css", "js", "tpl"} {
		assertDirExists(t, filepath.Join(root, d))
	}
	assertFileExists(t, filepath.Join(root, "my-great-theme.info"))
	assertFileExists(t, filepath.Join(root, ".editorconfig"))
	assertFileExists(t, filepath.Join(root, ".jshintrc"))
	assertFileContains(t, filepath.Join(root, "my-great-theme.info"), "name = My Great Theme")

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 7 {
		t.Errorf("theme root has %d entries, want 7", len(entries))
	}
}

// TestFullFlowRerunClearsSettings answers once with Aurora, then again with
// Zen in the same directory. The stale Aurora settings must not survive.
func TestFullFlowRerunClearsSettings(t *testing.T) {
	env := setupTestEnv(t)

	st, _ := runWizard(t, env, "First Theme", "3", "", "", "", "n")
	if _, ok := st.Get(wizard.KeyBaseThemeSettings); !ok {
		t.Fatal("aurora run should store settings")
	}

	st, _ = runWizard(t, env, "Second Theme", "2", "n")
	if _, ok := st.Get(wizard.KeyBaseThemeSettings); ok {
		t.Error("zen run should clear stored settings")
	}

	result := materialize(t, env, st)
	info := filepath.Join(env.ProjectDir, result.Root, "second-theme.info")
	assertFileContains(t, info, "base theme = zen")
	assertFileNotExists(t, filepath.Join(env.ProjectDir, "first-theme"))
}

func TestFullFlowExistingThemeUntouched(t *testing.T) {
	env := setupTestEnv(t)

	st, _ := runWizard(t, env, "My Great Theme", "1", "n")
	materialize(t, env, st)

	marker := filepath.Join(env.ProjectDir, "my-great-theme", "css", "custom.css")
	writeFile(t, marker, "body {}\n")

	cfg, err := wizard.FromValues(st.Values())
	if err != nil {
		t.Fatal(err)
	}
	_, err = scaffold.Generate(env.Fs, scaffold.NewData(cfg))
	if !errors.Is(err, scaffold.ErrTargetExists) {
		t.Fatalf("second Generate = %v, want ErrTargetExists", err)
	}
	assertFileContains(t, marker, "body {}")
}
