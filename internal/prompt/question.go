package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user ends the session before every
// question has an answer (EOF on stdin, ctrl+c in a form).
var ErrAborted = errors.New("prompt aborted by user")

// Kind is the input style of a question.
type Kind int

const (
	KindInput Kind = iota
	KindConfirm
	KindSelect
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindConfirm:
		return "confirm"
	case KindSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Choice is one option of a select question.
type Choice struct {
	Label string
	Value string
}

// Question describes a single prompt.
//
// Default is a string for input and select questions and a bool for confirm
// questions. When, if set, is evaluated against the answers collected so far;
// a question whose When returns false is not asked and gets no answer.
type Question struct {
	Name     string
	Kind     Kind
	Message  string
	Default  any
	Choices  []Choice
	Validate func(string) error
	When     func(Answers) bool
}

// Asker puts questions to the user in order and returns the answers.
type Asker interface {
	Ask(ctx context.Context, questions []Question) (Answers, error)
}

// Answers maps question names to values: string for input and select,
// bool for confirm.
type Answers map[string]any

// String returns the string answer for name, or "" if absent.
func (a Answers) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Bool returns the bool answer for name, or false if absent.
func (a Answers) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// Has reports whether name was answered.
func (a Answers) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// OnlyWhen returns a When predicate that is true when the named confirm
// question was answered yes.
func OnlyWhen(name string) func(Answers) bool {
	return func(a Answers) bool { return a.Bool(name) }
}

func (q Question) asked(answers Answers) bool {
	return q.When == nil || q.When(answers)
}

func (q Question) defaultString() string {
	s, _ := q.Default.(string)
	return s
}

func (q Question) defaultBool() bool {
	b, _ := q.Default.(bool)
	return b
}

// defaultIndex returns the index of the default choice, or 0.
func (q Question) defaultIndex() int {
	def := q.defaultString()
	for i, c := range q.Choices {
		if c.Value == def {
			return i
		}
	}
	return 0
}
