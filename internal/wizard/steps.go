package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/rabellamy/generator-drupal-theme/internal/basetheme"
	"github.com/rabellamy/generator-drupal-theme/internal/prompt"
)

// Step is one stage of the wizard. Keys lists the store keys the step owns;
// they are written (or removed) after Run returns.
type Step struct {
	Name string
	Keys []string
	Run  func(ctx context.Context, cfg *Config, ask prompt.Asker) error
}

// Steps returns the wizard steps in execution order.
func Steps(reg basetheme.Registry) []Step {
	return []Step{
		BaseStep(),
		SubOptionStep(reg),
		AdvancedStep(),
	}
}

// BaseStep asks for the theme name and the base theme.
func BaseStep() Step {
	return Step{
		Name: "base",
		Keys: []string{KeyProjectName, KeyProjectSlug, KeyBaseTheme},
		Run: func(ctx context.Context, cfg *Config, ask prompt.Asker) error {
			catalog := basetheme.Catalog()
			choices := make([]prompt.Choice, len(catalog))
			for i, d := range catalog {
				choices[i] = prompt.Choice{Label: d.Name, Value: d.ID}
			}

			answers, err := ask.Ask(ctx, []prompt.Question{
				{
					Name:     KeyProjectName,
					Kind:     prompt.KindInput,
					Message:  "What's your theme's name? (Required)",
					Validate: validateProjectName,
				},
				{
					Name:    KeyBaseTheme,
					Kind:    prompt.KindSelect,
					Message: "Which base theme would you like to use?",
					Choices: choices,
					Default: basetheme.None,
				},
			})
			if err != nil {
				return err
			}

			cfg.ProjectName = strings.TrimSpace(answers.String(KeyProjectName))
			cfg.ProjectSlug = Slugify(cfg.ProjectName)
			cfg.BaseTheme = answers.String(KeyBaseTheme)
			return nil
		},
	}
}

// SubOptionStep asks the extra questions of the chosen base theme's settings
// provider. Themes without a provider ask nothing.
func SubOptionStep(reg basetheme.Registry) Step {
	return Step{
		Name: "base theme settings",
		Keys: []string{KeyBaseThemeSettings},
		Run: func(ctx context.Context, cfg *Config, ask prompt.Asker) error {
			cfg.BaseThemeSettings = nil

			d, ok := basetheme.Lookup(cfg.BaseTheme)
			if !ok {
				return fmt.Errorf("unknown base theme %q", cfg.BaseTheme)
			}
			provider, err := reg.Resolve(d)
			if err != nil {
				return err
			}
			if provider == nil {
				return nil
			}

			answers, err := ask.Ask(ctx, provider.Prompts())
			if err != nil {
				return err
			}
			cfg.BaseThemeSettings = map[string]any(answers)
			return nil
		},
	}
}

const keyAdvFileOptions = "advFileOptions"

// AdvancedStep optionally customizes the four directory names. Declining
// keeps the defaults; free-text answers are slugified.
func AdvancedStep() Step {
	return Step{
		Name: "advanced",
		Keys: []string{KeySassDir, KeyCSSDir, KeyJSDir, KeyTemplateDir},
		Run: func(ctx context.Context, cfg *Config, ask prompt.Asker) error {
			cfg.SassDir = DefaultSassDir
			cfg.CSSDir = DefaultCSSDir
			cfg.JSDir = DefaultJSDir
			cfg.TemplateDir = DefaultTemplateDir

			onlyWhen := prompt.OnlyWhen(keyAdvFileOptions)
			tplChoices := make([]prompt.Choice, len(TemplateDirChoices))
			for i, c := range TemplateDirChoices {
				tplChoices[i] = prompt.Choice{Label: c, Value: c}
			}

			answers, err := ask.Ask(ctx, []prompt.Question{
				{
					Name:    keyAdvFileOptions,
					Kind:    prompt.KindConfirm,
					Message: "Do you want to customize your theme's directories?",
					Default: false,
				},
				{
					Name:     KeySassDir,
					Kind:     prompt.KindInput,
					Message:  "Sass directory?",
					Default:  cfg.SassDir,
					Validate: validateDirName,
					When:     onlyWhen,
				},
				{
					Name:     KeyCSSDir,
					Kind:     prompt.KindInput,
					Message:  "CSS directory?",
					Default:  cfg.CSSDir,
					Validate: validateDirName,
					When:     onlyWhen,
				},
				{
					Name:     KeyJSDir,
					Kind:     prompt.KindInput,
					Message:  "JavaScript directory?",
					Default:  cfg.JSDir,
					Validate: validateDirName,
					When:     onlyWhen,
				},
				{
					Name:    KeyTemplateDir,
					Kind:    prompt.KindSelect,
					Message: "Template directory?",
					Choices: tplChoices,
					Default: cfg.TemplateDir,
					When:    onlyWhen,
				},
			})
			if err != nil {
				return err
			}

			if answers.Bool(keyAdvFileOptions) {
				cfg.SassDir = Slugify(answers.String(KeySassDir))
				cfg.CSSDir = Slugify(answers.String(KeyCSSDir))
				cfg.JSDir = Slugify(answers.String(KeyJSDir))
				cfg.TemplateDir = answers.String(KeyTemplateDir)
			}
			return nil
		},
	}
}
