package export_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/export"
)

func TestDefinitionDocument_Questions(t *testing.T) {
	cases := []struct {
		name string
		in   survey.Question
		want export.Question
	}{
		{
			name: "multiple choice",
			in: survey.Question{
				ID: "q1", Type: survey.QuestionTypeMultipleChoice, Label: "Color?", Required: true,
				Options: []survey.Option{{ID: "o1", Text: "Red"}, {ID: "o2", Text: "Blue"}},
			},
			want: export.Question{ID: "q1", Type: "multiple-choice", Question: "Color?", Required: true, Options: []string{"Red", "Blue"}},
		},
		{
			name: "text",
			in:   survey.Question{ID: "q2", Type: survey.QuestionTypeText, Label: "Name"},
			want: export.Question{ID: "q2", Type: "text", Question: "Name"},
		},
		{
			name: "multiple choice without options",
			in:   survey.Question{ID: "q3", Type: survey.QuestionTypeMultipleChoice, Options: []survey.Option{}},
			want: export.Question{ID: "q3", Type: "multiple-choice"},
		},
		{
			name: "empty option text is kept",
			in:   survey.Question{ID: "q4", Type: survey.QuestionTypeMultipleChoice, Options: []survey.Option{{ID: "o1"}}},
			want: export.Question{ID: "q4", Type: "multiple-choice", Options: []string{""}},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			doc := export.DefinitionDocument(survey.Definition{Title: "T", Questions: []survey.Question{c.in}})
			if diff := cmp.Diff([]export.Question{c.want}, doc.Questions); diff != "" {
				t.Fatalf("DefinitionDocument() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefinitionDocument_OmitsOptionsKey(t *testing.T) {
	doc := export.DefinitionDocument(survey.Definition{Questions: []survey.Question{
		{ID: "a", Type: survey.QuestionTypeText},
		{ID: "b", Type: survey.QuestionTypeMultipleChoice},
		{ID: "c", Type: survey.QuestionTypeText, Options: []survey.Option{{ID: "o1", Text: "Red"}}},
	}})
	for _, format := range []export.Format{export.FormatJSON, export.FormatYAML, export.FormatTOML} {
		text, err := export.Render(doc, format)
		if err != nil {
			t.Fatalf("Render(%s) error = %v", format, err)
		}
		if containsKey(text, "options") {
			t.Fatalf("Render(%s) contains options key:\n%s", format, text)
		}
	}
}

func TestResponsesDocument(t *testing.T) {
	got := export.ResponsesDocument(survey.ResponseMap{
		"name":  {Type: survey.QuestionTypeText, Value: survey.Scalar("Alice")},
		"color": {Type: survey.QuestionTypeMultipleChoice, Value: survey.Scalar("Blue")},
		"multi": {Type: survey.QuestionTypeMultipleChoice, Value: survey.MultiSelect("Red", "Blue")},
	})
	want := export.Responses{"name": "Alice", "color": "Blue", "multi": []string{"Red", "Blue"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ResponsesDocument() mismatch (-want +got):\n%s", diff)
	}
}
