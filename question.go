package survey

import (
	"fmt"
	"slices"
)

type QuestionID = string
type OptionID = string

// QuestionType is the kind of answer a question expects.
type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeMultipleChoice QuestionType = "multipleChoice"
)

// ParseQuestionType accepts the internal names as well as the exported
// "multiple-choice" spelling and the short form "choice".
func ParseQuestionType(s string) (QuestionType, error) {
	switch s {
	case "text":
		return QuestionTypeText, nil
	case "multipleChoice", "multiple-choice", "choice":
		return QuestionTypeMultipleChoice, nil
	}
	return "", fmt.Errorf("unknown question type %q", s)
}

// DisplayName returns the name shown for the type in the editor.
func (t QuestionType) DisplayName() string {
	if t == QuestionTypeMultipleChoice {
		return "Multiple Choice"
	}
	return "Freeform Text"
}

// Option is one selectable choice of a multiple choice question.
type Option struct {
	ID   OptionID
	Text string
}

// Question is a single entry of a survey definition.
// Options is non-empty exactly when Type is QuestionTypeMultipleChoice.
type Question struct {
	ID       QuestionID
	Label    string
	Type     QuestionType
	Required bool
	Options  []Option
}

func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

func (q Question) WithLabel(label string) Question {
	q = q.clone()
	q.Label = label
	return q
}

func (q Question) WithRequired(required bool) Question {
	q = q.clone()
	q.Required = required
	return q
}

// WithType switches the question type. Switching to multiple choice keeps the
// existing options or starts with a single empty one; switching away drops them.
func (q Question) WithType(t QuestionType, newID func() string) Question {
	q = q.clone()
	q.Type = t
	if t != QuestionTypeMultipleChoice {
		q.Options = nil
		return q
	}
	if len(q.Options) == 0 {
		q.Options = []Option{{ID: newID()}}
	}
	return q
}

// normalized enforces the option invariant of the question's type: only multiple
// choice questions have options, and they always have at least one.
func (q Question) normalized(newID func() string) Question {
	q = q.clone()
	if q.Type != QuestionTypeMultipleChoice {
		q.Options = nil
	} else if len(q.Options) == 0 {
		q.Options = []Option{{ID: newID()}}
	}
	return q
}

// Option returns the option with the given id.
func (q Question) Option(id OptionID) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// AddOption appends an empty option with a fresh id.
func (q Question) AddOption(newID func() string) Question {
	q = q.clone()
	q.Options = append(q.Options, Option{ID: newID()})
	return q
}

func (q Question) UpdateOptionText(id OptionID, text string) Question {
	q = q.clone()
	for i := range q.Options {
		if q.Options[i].ID == id {
			q.Options[i].Text = text
		}
	}
	return q
}

// DeleteOption removes the option. A multiple choice question never ends up
// without options: removing the last one leaves a single empty option.
func (q Question) DeleteOption(id OptionID, newID func() string) Question {
	q = q.clone()
	q.Options = slices.DeleteFunc(q.Options, func(o Option) bool { return o.ID == id })
	if len(q.Options) == 0 {
		q.Options = []Option{{ID: newID()}}
	}
	return q
}

// Summary is the heading used for the question in the editor.
func (q Question) Summary() string {
	if q.Label != "" {
		return q.Label
	}
	return fmt.Sprintf("Untitled Question (%s)", q.Type.DisplayName())
}

// Definition is the authored schema of a survey.
type Definition struct {
	Title       string
	Description string
	Questions   []Question
}

func (d Definition) clone() Definition {
	qs := make([]Question, 0, len(d.Questions))
	for _, q := range d.Questions {
		qs = append(qs, q.clone())
	}
	d.Questions = qs
	return d
}

// Question returns the question with the given id.
func (d Definition) Question(id QuestionID) (Question, bool) {
	for _, q := range d.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
