package basetheme

import (
	"fmt"

	"github.com/rabellamy/generator-drupal-theme/internal/prompt"
)

// Provider supplies the extra questions a base theme asks.
type Provider interface {
	Prompts() []prompt.Question
}

// LookupError reports a descriptor whose provider key is not registered.
type LookupError struct {
	Theme    string
	Provider string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("base theme %q references unknown settings provider %q", e.Theme, e.Provider)
}

// Registry maps provider keys to providers.
type Registry map[string]Provider

// DefaultRegistry returns a registry with every built-in provider.
func DefaultRegistry() Registry {
	return Registry{
		ProviderAurora: Aurora{},
	}
}

// Resolve returns the provider for d. A descriptor without a provider
// resolves to nil with no error.
func (r Registry) Resolve(d Descriptor) (Provider, error) {
	if d.Provider == "" {
		return nil, nil
	}
	p, ok := r[d.Provider]
	if !ok || p == nil {
		return nil, &LookupError{Theme: d.ID, Provider: d.Provider}
	}
	return p, nil
}
