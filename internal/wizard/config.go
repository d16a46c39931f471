package wizard

import (
	"fmt"

	"github.com/rabellamy/generator-drupal-theme/internal/basetheme"
)

// Store keys.
const (
	KeyProjectName       = "projectName"
	KeyProjectSlug       = "projectSlug"
	KeyBaseTheme         = "baseTheme"
	KeyBaseThemeSettings = "baseThemeSettings"
	KeySassDir           = "sassDir"
	KeyCSSDir            = "cssDir"
	KeyJSDir             = "jsDir"
	KeyTemplateDir       = "templateDir"
)

// Default directory names.
const (
	DefaultSassDir     = "sass"
	DefaultCSSDir      = "css"
	DefaultJSDir       = "js"
	DefaultTemplateDir = "tpl"
)

// TemplateDirChoices are the allowed template directory names.
var TemplateDirChoices = []string{"tpl", "templates"}

// Config is the configuration accumulated across the wizard steps.
// BaseTheme is basetheme.None when no base theme was chosen;
// BaseThemeSettings is nil when the base theme has no settings provider.
type Config struct {
	ProjectName       string
	ProjectSlug       string
	BaseTheme         string
	BaseThemeSettings map[string]any
	SassDir           string
	CSSDir            string
	JSDir             string
	TemplateDir       string
}

// value returns the store form of key. ok is false when c has no value for
// key and the key should be removed from the store.
func (c *Config) value(key string) (any, bool) {
	switch key {
	case KeyProjectName:
		return c.ProjectName, true
	case KeyProjectSlug:
		return c.ProjectSlug, true
	case KeyBaseTheme:
		if c.BaseTheme == basetheme.None {
			return nil, true
		}
		return c.BaseTheme, true
	case KeyBaseThemeSettings:
		if c.BaseThemeSettings == nil {
			return nil, false
		}
		return c.BaseThemeSettings, true
	case KeySassDir:
		return c.SassDir, true
	case KeyCSSDir:
		return c.CSSDir, true
	case KeyJSDir:
		// Older generators stored the sass directory under this key.
		return c.JSDir, true
	case KeyTemplateDir:
		return c.TemplateDir, true
	}
	return nil, false
}

// Values returns every set key of c in store form.
func (c *Config) Values() map[string]any {
	out := map[string]any{}
	for _, k := range []string{
		KeyProjectName, KeyProjectSlug, KeyBaseTheme, KeyBaseThemeSettings,
		KeySassDir, KeyCSSDir, KeyJSDir, KeyTemplateDir,
	} {
		if v, ok := c.value(k); ok {
			out[k] = v
		}
	}
	return out
}

// FromValues rebuilds a Config from stored values.
func FromValues(values map[string]any) (*Config, error) {
	c := &Config{}
	var err error
	str := func(key string, dst *string) {
		if err != nil {
			return
		}
		v, ok := values[key]
		if !ok || v == nil {
			return
		}
		s, isStr := v.(string)
		if !isStr {
			err = fmt.Errorf("stored %s: expected string, got %T", key, v)
			return
		}
		*dst = s
	}

	str(KeyProjectName, &c.ProjectName)
	str(KeyProjectSlug, &c.ProjectSlug)
	str(KeyBaseTheme, &c.BaseTheme)
	str(KeySassDir, &c.SassDir)
	str(KeyCSSDir, &c.CSSDir)
	str(KeyJSDir, &c.JSDir)
	str(KeyTemplateDir, &c.TemplateDir)
	if err != nil {
		return nil, err
	}

	if v, ok := values[KeyBaseThemeSettings]; ok && v != nil {
		m, isMap := v.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("stored %s: expected mapping, got %T", KeyBaseThemeSettings, v)
		}
		c.BaseThemeSettings = m
	}
	return c, nil
}
