package prompt

import (
	"context"
	"testing"
)

func TestInputValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  string
		want string
	}{
		{"typed", "Night Sky", "", "Night Sky"},
		{"padded", "  Night Sky ", "", "Night Sky"},
		{"empty uses default", "", "sass", "sass"},
		{"blank uses default", "   ", "sass", "sass"},
		{"empty without default", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inputValue(tt.in, tt.def); got != tt.want {
				t.Errorf("inputValue(%q, %q) = %q, want %q", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestHuhField_InputDefault(t *testing.T) {
	field, value, err := huhField(Question{Name: "sassDir", Kind: KindInput, Message: "Sass directory?", Default: "sass"})
	if err != nil {
		t.Fatalf("huhField() error: %v", err)
	}
	if field == nil {
		t.Fatal("expected a field")
	}
	if got := value(); got != "sass" {
		t.Errorf("untouched input = %v, want sass", got)
	}
}

func TestHuhField_ConfirmDefault(t *testing.T) {
	for _, def := range []bool{true, false} {
		field, value, err := huhField(Question{Name: "compass", Kind: KindConfirm, Message: "Compass?", Default: def})
		if err != nil {
			t.Fatalf("huhField() error: %v", err)
		}
		if got := value(); got != def {
			t.Errorf("confirm default %v: value() = %v", def, got)
		}
		if got := field.GetValue(); got != def {
			t.Errorf("confirm default %v: GetValue() = %v", def, got)
		}
	}
}

func TestHuhField_SelectDefault(t *testing.T) {
	choices := []Choice{{"Aurora", "aurora"}, {"Corona", "corona"}, {"Polaris", "polaris"}}

	tests := []struct {
		name string
		def  any
		want string
	}{
		{"matching default", "corona", "corona"},
		{"unknown default picks first", "north", "aurora"},
		{"no default picks first", nil, "aurora"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, value, err := huhField(Question{Name: "subtheme", Kind: KindSelect, Message: "Subtheme?", Choices: choices, Default: tt.def})
			if err != nil {
				t.Fatalf("huhField() error: %v", err)
			}
			if got := value(); got != tt.want {
				t.Errorf("value() = %v, want %s", got, tt.want)
			}
			if got := field.GetValue(); got != tt.want {
				t.Errorf("GetValue() = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestHuhField_Errors(t *testing.T) {
	if _, _, err := huhField(Question{Name: "empty", Kind: KindSelect}); err == nil {
		t.Error("expected error for a select without choices")
	}
	if _, _, err := huhField(Question{Name: "odd", Kind: Kind(42)}); err == nil {
		t.Error("expected error for an unknown kind")
	}
}

func TestHuhAsker_SkipsHiddenQuestions(t *testing.T) {
	hidden := func(Answers) bool { return false }
	a := &HuhAsker{}

	answers, err := a.Ask(context.Background(), []Question{
		{Name: "sassDir", Kind: KindInput, When: hidden},
		{Name: "templateDir", Kind: KindSelect, Choices: []Choice{{"tpl", "tpl"}}, When: hidden},
	})
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if len(answers) != 0 {
		t.Errorf("answers = %v, want none", answers)
	}
}
