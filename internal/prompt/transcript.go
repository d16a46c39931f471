package prompt

import "context"

// Transcript wraps an Asker and records the name of every question that was
// actually put to the user, in order.
type Transcript struct {
	Asker Asker
	Asked []string
}

// Ask implements Asker.
func (t *Transcript) Ask(ctx context.Context, questions []Question) (Answers, error) {
	wrapped := make([]Question, len(questions))
	for i, q := range questions {
		when := q.When
		name := q.Name
		q.When = func(a Answers) bool {
			if when != nil && !when(a) {
				return false
			}
			t.Asked = append(t.Asked, name)
			return true
		}
		wrapped[i] = q
	}
	return t.Asker.Ask(ctx, wrapped)
}

// Len returns the number of questions asked so far.
func (t *Transcript) Len() int { return len(t.Asked) }
