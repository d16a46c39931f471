// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	StoreNamespace string `yaml:"store_namespace"`
	Greeting       string `yaml:"greeting"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:        "drupaltheme",
			DisplayName:    "DrupalTheme",
			Description:    "Scaffold a new Drupal theme from a base theme",
			HomeDir:        ".drupaltheme",
			EnvPrefix:      "DRUPALTHEME",
			StoreNamespace: "generator-drupaltheme",
			Greeting:       "Welcome to the marvelous DrupalTheme generator!",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "drupaltheme").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".drupaltheme").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "DRUPALTHEME").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// StoreNamespace returns the top-level key the wizard answers are saved under.
func StoreNamespace() string { load(); return defaults.StoreNamespace }

// Greeting returns the banner text shown when the wizard starts.
func Greeting() string { load(); return defaults.Greeting }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "DRUPALTHEME_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
