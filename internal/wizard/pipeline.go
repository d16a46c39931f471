package wizard

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/rabellamy/generator-drupal-theme/internal/basetheme"
	"github.com/rabellamy/generator-drupal-theme/internal/prompt"
	"github.com/rabellamy/generator-drupal-theme/internal/store"
)

// Pipeline runs the wizard steps strictly in order against a single Config.
type Pipeline struct {
	Asker    prompt.Asker
	Store    *store.Store
	Registry basetheme.Registry
	Logger   *log.Logger
}

// Run executes every step and saves the store after each one. On error the
// store keeps whatever earlier steps saved.
func (p *Pipeline) Run(ctx context.Context) (*Config, error) {
	logger := p.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	reg := p.Registry
	if reg == nil {
		reg = basetheme.DefaultRegistry()
	}

	cfg := &Config{}
	for _, step := range Steps(reg) {
		logger.Debug("Running wizard step", "step", step.Name)

		if err := step.Run(ctx, cfg, p.Asker); err != nil {
			return nil, fmt.Errorf("%s step: %w", step.Name, err)
		}

		for _, key := range step.Keys {
			if v, ok := cfg.value(key); ok {
				p.Store.Set(key, v)
			} else {
				p.Store.Delete(key)
			}
		}
		if err := p.Store.Save(); err != nil {
			return nil, fmt.Errorf("saving answers after %s step: %w", step.Name, err)
		}
		logger.Debug("Saved answers", "step", step.Name, "path", p.Store.Path())
	}
	return cfg, nil
}
