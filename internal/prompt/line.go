package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineAsker asks questions over plain text streams. Select questions are
// rendered as numbered menus. Invalid input is reported and the question is
// asked again.
type LineAsker struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineAsker creates a LineAsker reading answers from r and writing
// prompts to w.
func NewLineAsker(r io.Reader, w io.Writer) *LineAsker {
	return &LineAsker{in: bufio.NewReader(r), out: w}
}

// Ask implements Asker.
func (a *LineAsker) Ask(ctx context.Context, questions []Question) (Answers, error) {
	answers := Answers{}
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !q.asked(answers) {
			continue
		}

		var (
			v   any
			err error
		)
		switch q.Kind {
		case KindInput:
			v, err = a.askInput(q)
		case KindConfirm:
			v, err = a.askConfirm(q)
		case KindSelect:
			v, err = a.askSelect(q)
		default:
			return nil, fmt.Errorf("question %q: unsupported kind %s", q.Name, q.Kind)
		}
		if err != nil {
			return nil, err
		}
		answers[q.Name] = v
	}
	return answers, nil
}

func (a *LineAsker) askInput(q Question) (string, error) {
	def := q.defaultString()
	for {
		if def != "" {
			fmt.Fprintf(a.out, "? %s (%s) ", q.Message, def)
		} else {
			fmt.Fprintf(a.out, "? %s ", q.Message)
		}

		line, err := a.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			line = def
		}

		if q.Validate != nil {
			if verr := q.Validate(line); verr != nil {
				fmt.Fprintf(a.out, ">> %s\n", verr)
				continue
			}
		}
		return line, nil
	}
}

func (a *LineAsker) askConfirm(q Question) (bool, error) {
	def := q.defaultBool()
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(a.out, "? %s (%s) ", q.Message, hint)

		line, err := a.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(a.out, ">> Please answer yes or no\n")
	}
}

func (a *LineAsker) askSelect(q Question) (string, error) {
	if len(q.Choices) == 0 {
		return "", fmt.Errorf("question %q has no choices", q.Name)
	}
	def := q.defaultIndex()
	for {
		fmt.Fprintf(a.out, "? %s\n", q.Message)
		for i, c := range q.Choices {
			marker := " "
			if i == def {
				marker = ">"
			}
			fmt.Fprintf(a.out, " %s %d) %s\n", marker, i+1, c.Label)
		}
		fmt.Fprintf(a.out, "Enter number [1-%d] (%d): ", len(q.Choices), def+1)

		line, err := a.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return q.Choices[def].Value, nil
		}

		num, convErr := strconv.Atoi(line)
		if convErr != nil || num < 1 || num > len(q.Choices) {
			fmt.Fprintf(a.out, ">> Invalid selection %q: choose 1-%d\n", line, len(q.Choices))
			continue
		}
		return q.Choices[num-1].Value, nil
	}
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; EOF with nothing read is ErrAborted.
func (a *LineAsker) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
