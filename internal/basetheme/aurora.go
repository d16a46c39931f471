package basetheme

import "github.com/rabellamy/generator-drupal-theme/internal/prompt"

// Aurora asks for the settings shared by the Aurora family of themes. Omega
// 4.x reuses it, so the questions do not name a specific theme.
type Aurora struct{}

// Prompts implements Provider.
func (Aurora) Prompts() []prompt.Question {
	return []prompt.Question{
		{
			Name:    "subtheme",
			Kind:    prompt.KindSelect,
			Message: "Which kind of subtheme would you like?",
			Choices: []prompt.Choice{
				{Label: "Aurora", Value: "aurora"},
				{Label: "Corona", Value: "corona"},
				{Label: "Polaris", Value: "polaris"},
				{Label: "North", Value: "north"},
			},
			Default: "aurora",
		},
		{
			Name:    "compass",
			Kind:    prompt.KindConfirm,
			Message: "Use Compass extensions?",
			Default: true,
		},
		{
			Name:    "magic",
			Kind:    prompt.KindConfirm,
			Message: "Configure the Magic module for development?",
			Default: false,
		},
	}
}
