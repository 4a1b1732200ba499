package form

import (
	"fmt"
	"strings"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/errors"
	"google.golang.org/api/forms/v1"
)

const choiceTypeRadio = "RADIO"

// Item converts a survey question into a Google Forms question item.
// Blank and repeated option texts are dropped because Forms rejects them; a
// multiple choice question left without options cannot be published.
func Item(q survey.Question) (item *forms.Item, err error) {
	question := &forms.Question{Required: q.Required}
	switch q.Type {
	case survey.QuestionTypeText:
		question.TextQuestion = &forms.TextQuestion{Paragraph: false}
	case survey.QuestionTypeMultipleChoice:
		options := ChoiceOptions(q.Options)
		if len(options) == 0 {
			return nil, fmt.Errorf("question %q has no non-blank option: %w", q.Summary(), errors.ErrUnpublishable)
		}
		question.ChoiceQuestion = &forms.ChoiceQuestion{Type: choiceTypeRadio, Options: options}
	default:
		return nil, fmt.Errorf("question %q has type %q: %w", q.Summary(), q.Type, errors.ErrUnpublishable)
	}

	return &forms.Item{
		Title:        q.Label,
		QuestionItem: &forms.QuestionItem{Question: question},
	}, nil
}

func ChoiceOptions(options []survey.Option) []*forms.Option {
	seen := map[string]bool{}
	out := []*forms.Option{}
	for _, o := range options {
		text := strings.TrimSpace(o.Text)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		out = append(out, &forms.Option{Value: text})
	}
	return out
}
