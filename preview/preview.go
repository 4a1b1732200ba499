// Package preview renders a survey the way a respondent fills it out.
package preview

import (
	"fmt"
	"io"
	"strings"

	survey "github.com/Jumpaku/go-survey"
)

const (
	fallbackTitle    = "Survey Preview"
	fallbackLabel    = "Untitled Question"
	fallbackOption   = "Untitled option"
	textPlaceholder  = "Short answer"
	emptySurvey      = "Add questions to see the preview here."
	noOptions        = "No options available. Add options in the question editor."
	requiredMarker   = " *"
	selectedMarker   = "(x)"
	unselectedMarker = "( )"
)

// Write renders the snapshot as plain text. Questions are numbered from 1 and
// options are lettered from a.
func Write(w io.Writer, snap survey.Snapshot) error {
	var b strings.Builder
	d := snap.Definition

	title := d.Title
	if title == "" {
		title = fallbackTitle
	}
	fmt.Fprintln(&b, title)
	fmt.Fprintln(&b, strings.Repeat("=", len([]rune(title))))
	if d.Description != "" {
		fmt.Fprintln(&b, d.Description)
	}

	if len(d.Questions) == 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, emptySurvey)
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, q := range d.Questions {
		fmt.Fprintln(&b)
		label := q.Label
		if label == "" {
			label = fallbackLabel
		}
		if q.Required {
			label += requiredMarker
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, label)

		answer := snap.Responses[q.ID].Text()
		if q.Type != survey.QuestionTypeMultipleChoice {
			if answer == "" {
				fmt.Fprintf(&b, "   [%s]\n", textPlaceholder)
			} else {
				fmt.Fprintf(&b, "   > %s\n", answer)
			}
			continue
		}
		if len(q.Options) == 0 {
			fmt.Fprintf(&b, "   %s\n", noOptions)
			continue
		}
		for j, o := range q.Options {
			marker := unselectedMarker
			if answer != "" && answer == o.Text {
				marker = selectedMarker
			}
			text := o.Text
			if text == "" {
				text = fallbackOption
			}
			fmt.Fprintf(&b, "   %s %c) %s\n", marker, 'a'+rune(j), text)
		}
	}

	if missing := MissingRequired(d, snap.Responses); len(missing) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "%d required question(s) unanswered\n", len(missing))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// MissingRequired returns the ids of required questions without an answer, in
// question order.
func MissingRequired(d survey.Definition, responses survey.ResponseMap) []survey.QuestionID {
	var missing []survey.QuestionID
	for _, q := range d.Questions {
		if q.Required && responses[q.ID].IsEmpty() {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
