// Package export turns the state of a survey session into the definition and
// responses documents shown to the user and copied as text.
package export

import (
	survey "github.com/Jumpaku/go-survey"
)

const (
	typeText           = "text"
	typeMultipleChoice = "multiple-choice"
)

// Definition is the external form of a survey definition.
type Definition struct {
	Title       string     `json:"title" yaml:"title" toml:"title"`
	Description string     `json:"description" yaml:"description" toml:"description"`
	Questions   []Question `json:"questions" yaml:"questions" toml:"questions"`
}

// Question is the external form of a question. Options holds the option texts
// and is omitted when there are none.
type Question struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Type     string   `json:"type" yaml:"type" toml:"type"`
	Question string   `json:"question" yaml:"question" toml:"question"`
	Required bool     `json:"required" yaml:"required" toml:"required"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// Responses maps question ids to a string, or to a list of strings for a
// multi-select value.
type Responses map[string]any

func DefinitionDocument(d survey.Definition) Definition {
	doc := Definition{
		Title:       d.Title,
		Description: d.Description,
		Questions:   make([]Question, 0, len(d.Questions)),
	}
	for _, q := range d.Questions {
		eq := Question{
			ID:       q.ID,
			Type:     exportType(q.Type),
			Question: q.Label,
			Required: q.Required,
		}
		if q.Type == survey.QuestionTypeMultipleChoice {
			for _, o := range q.Options {
				eq.Options = append(eq.Options, o.Text)
			}
		}
		doc.Questions = append(doc.Questions, eq)
	}
	return doc
}

func exportType(t survey.QuestionType) string {
	switch t {
	case survey.QuestionTypeText:
		return typeText
	case survey.QuestionTypeMultipleChoice:
		return typeMultipleChoice
	}
	return string(t)
}

func ResponsesDocument(m survey.ResponseMap) Responses {
	doc := Responses{}
	for id, r := range m {
		switch v := r.Value.(type) {
		case survey.ResponseMultiSelect:
			doc[id] = append([]string{}, v.Selected...)
		default:
			doc[id] = r.Text()
		}
	}
	return doc
}
