package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// HuhAsker renders each question as a single-field huh form. Questions run
// one form at a time so a When predicate sees every earlier answer.
type HuhAsker struct {
	In  io.Reader
	Out io.Writer
}

// Ask implements Asker.
func (a *HuhAsker) Ask(ctx context.Context, questions []Question) (Answers, error) {
	answers := Answers{}

	// ESC quits alongside ctrl+c.
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c/esc", "quit"),
	)

	for _, q := range questions {
		if !q.asked(answers) {
			continue
		}

		field, value, err := huhField(q)
		if err != nil {
			return nil, err
		}

		form := huh.NewForm(huh.NewGroup(field)).WithKeyMap(keyMap)
		if a.In != nil {
			form = form.WithInput(a.In)
		}
		if a.Out != nil {
			form = form.WithOutput(a.Out)
		}

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrAborted
			}
			return nil, fmt.Errorf("asking %q: %w", q.Name, err)
		}
		answers[q.Name] = value()
	}
	return answers, nil
}

// huhField builds the form field for q and a getter for its final value.
func huhField(q Question) (huh.Field, func() any, error) {
	switch q.Kind {
	case KindInput:
		def := q.defaultString()
		var s string
		in := huh.NewInput().
			Title(q.Message).
			Placeholder(def).
			Value(&s)
		if q.Validate != nil {
			in = in.Validate(func(v string) error {
				return q.Validate(inputValue(v, def))
			})
		}
		return in, func() any { return inputValue(s, def) }, nil

	case KindConfirm:
		b := q.defaultBool()
		c := huh.NewConfirm().
			Title(q.Message).
			Affirmative("Yes").
			Negative("No").
			Value(&b)
		return c, func() any { return b }, nil

	case KindSelect:
		if len(q.Choices) == 0 {
			return nil, nil, fmt.Errorf("question %q has no choices", q.Name)
		}
		s := q.Choices[q.defaultIndex()].Value
		opts := make([]huh.Option[string], len(q.Choices))
		for i, c := range q.Choices {
			opts[i] = huh.NewOption(c.Label, c.Value)
		}
		sel := huh.NewSelect[string]().
			Title(q.Message).
			Options(opts...).
			Value(&s)
		return sel, func() any { return s }, nil
	}
	return nil, nil, fmt.Errorf("question %q: unsupported kind %s", q.Name, q.Kind)
}

// inputValue trims v and falls back to def when nothing was typed.
func inputValue(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
