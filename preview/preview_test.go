package preview_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/preview"
)

func render(t *testing.T, snap survey.Snapshot) string {
	t.Helper()
	var b strings.Builder
	if err := preview.Write(&b, snap); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return b.String()
}

func TestWrite_Empty(t *testing.T) {
	got := render(t, survey.Snapshot{})
	want := "Survey Preview\n" +
		"==============\n" +
		"\n" +
		"Add questions to see the preview here.\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Write() mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_Questions(t *testing.T) {
	snap := survey.Snapshot{
		Definition: survey.Definition{
			Title:       "T",
			Description: "D",
			Questions: []survey.Question{
				{ID: "n", Label: "Name", Type: survey.QuestionTypeText, Required: true},
				{ID: "c", Label: "Color", Type: survey.QuestionTypeMultipleChoice, Options: []survey.Option{{ID: "o1", Text: "Red"}, {ID: "o2", Text: "Blue"}, {ID: "o3"}}},
				{ID: "x", Type: survey.QuestionTypeText},
				{ID: "e", Type: survey.QuestionTypeMultipleChoice},
			},
		},
		Responses: survey.ResponseMap{
			"n": {Type: survey.QuestionTypeText, Value: survey.Scalar("Alice")},
			"c": {Type: survey.QuestionTypeMultipleChoice, Value: survey.Scalar("Blue")},
			"x": survey.EmptyResponse(survey.QuestionTypeText),
			"e": survey.EmptyResponse(survey.QuestionTypeMultipleChoice),
		},
	}
	want := `T
=
D

1. Name *
   > Alice

2. Color
   ( ) a) Red
   (x) b) Blue
   ( ) c) Untitled option

3. Untitled Question
   [Short answer]

4. Untitled Question
   No options available. Add options in the question editor.
`
	if diff := cmp.Diff(want, render(t, snap)); diff != "" {
		t.Fatalf("Write() mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingRequired(t *testing.T) {
	d := survey.Definition{Questions: []survey.Question{
		{ID: "a", Required: true, Type: survey.QuestionTypeText},
		{ID: "b", Required: true, Type: survey.QuestionTypeMultipleChoice},
		{ID: "c", Required: false, Type: survey.QuestionTypeText},
		{ID: "d", Required: true, Type: survey.QuestionTypeText},
	}}
	responses := survey.ResponseMap{
		"a": {Type: survey.QuestionTypeText, Value: survey.Scalar("x")},
		"b": survey.EmptyResponse(survey.QuestionTypeMultipleChoice),
		"c": survey.EmptyResponse(survey.QuestionTypeText),
	}

	got := preview.MissingRequired(d, responses)
	if diff := cmp.Diff([]survey.QuestionID{"b", "d"}, got); diff != "" {
		t.Fatalf("MissingRequired() mismatch (-want +got):\n%s", diff)
	}

	var b strings.Builder
	if err := preview.Write(&b, survey.Snapshot{Definition: d, Responses: responses}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(b.String(), "2 required question(s) unanswered") {
		t.Fatalf("Write() lacks unanswered notice:\n%s", b.String())
	}
}
