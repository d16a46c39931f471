package schema

import (
	"strings"
	"testing"

	"github.com/rabellamy/generator-drupal-theme/internal/basetheme"
)

func validValues() map[string]any {
	return map[string]any{
		"projectName": "My Great Theme",
		"projectSlug": "my-great-theme",
		"baseTheme":   nil,
		"sassDir":     "sass",
		"cssDir":      "css",
		"jsDir":       "js",
		"templateDir": "tpl",
	}
}

func TestValidateValid(t *testing.T) {
	res, err := Validate(validValues())
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected valid, got issues: %s", res.Error())
	}
}

func TestValidateWithSettings(t *testing.T) {
	v := validValues()
	v["baseTheme"] = "omega"
	v["baseThemeSettings"] = map[string]any{"subtheme": "corona", "compass": true}

	res, err := Validate(v)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected valid, got issues: %s", res.Error())
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		path   string
	}{
		{"empty name", func(v map[string]any) { v["projectName"] = "" }, "/projectName"},
		{"slug with slash", func(v map[string]any) { v["projectSlug"] = "a/b" }, "/projectSlug"},
		{"slug with underscore", func(v map[string]any) { v["projectSlug"] = "my_theme" }, "/projectSlug"},
		{"uppercase dir", func(v map[string]any) { v["cssDir"] = "CSS" }, "/cssDir"},
		{"unknown base theme", func(v map[string]any) { v["baseTheme"] = "bootstrap" }, "/baseTheme"},
		{"free template dir", func(v map[string]any) { v["templateDir"] = "views" }, "/templateDir"},
		{"missing js dir", func(v map[string]any) { delete(v, "jsDir") }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validValues()
			tt.mutate(v)

			res, err := Validate(v)
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if res.Valid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, issue := range res.Issues {
				if issue.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %q: %s", tt.path, res.Error())
			}
		})
	}
}

func TestSchemaEnumMatchesCatalog(t *testing.T) {
	for _, id := range basetheme.IDs() {
		v := validValues()
		if id == basetheme.None {
			v["baseTheme"] = nil
		} else {
			v["baseTheme"] = id
		}
		res, err := Validate(v)
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if !res.Valid {
			t.Errorf("catalog id %q rejected: %s", id, res.Error())
		}
	}
}

func TestResultError(t *testing.T) {
	r := &Result{Issues: []Issue{{Path: "/a", Message: "bad"}, {Message: "worse"}}}
	if got := r.Error(); !strings.Contains(got, "/a: bad") || !strings.Contains(got, "worse") {
		t.Errorf("Error() = %q", got)
	}
}
