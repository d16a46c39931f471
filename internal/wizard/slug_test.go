package wizard

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Great Theme", "my-great-theme"},
		{"  padded  ", "padded"},
		{"Custom Sass", "custom-sass"},
		{"already-slugged", "already-slugged"},
		{"a/b\\c", "a-b-c"},
		{"Multiple   Spaces--and--dashes", "multiple-spaces-and-dashes"},
		{"Thème Été", "theme-ete"},
		{"!!!", ""},
		{"My_Great_Theme", "my-great-theme"},
		{"Rock & Roll", "rock-roll"},
		{"user@site", "user-site"},
		{"__lead_and_trail__", "lead-and-trail"},
		{"Don't Panic", "don-t-panic"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyProperties(t *testing.T) {
	inputs := []string{"My Great Theme", "x", "A B C", "../../etc/passwd", "Tab\tName", "ÜBER Theme 2", "snake_case_name", "R&D @ Home"}
	for _, in := range inputs {
		s := Slugify(in)
		if s == "" {
			t.Errorf("Slugify(%q) is empty", in)
		}
		if strings.ContainsAny(s, "/\\_ ") {
			t.Errorf("Slugify(%q) = %q contains a separator other than a dash", in, s)
		}
		if s != strings.TrimSpace(s) {
			t.Errorf("Slugify(%q) = %q has surrounding whitespace", in, s)
		}
		if s != strings.ToLower(s) {
			t.Errorf("Slugify(%q) = %q is not lowercase", in, s)
		}
		if again := Slugify(in); again != s {
			t.Errorf("Slugify(%q) not deterministic: %q vs %q", in, s, again)
		}
	}
}

func TestValidateProjectName(t *testing.T) {
	if err := validateProjectName(""); err != errNameRequired {
		t.Errorf("empty name: got %v", err)
	}
	if err := validateProjectName("   "); err != errNameRequired {
		t.Errorf("blank name: got %v", err)
	}
	if err := validateProjectName("???"); err != errNameNoSlug {
		t.Errorf("unsluggable name: got %v", err)
	}
	if err := validateProjectName("Good Name"); err != nil {
		t.Errorf("valid name: got %v", err)
	}
}
