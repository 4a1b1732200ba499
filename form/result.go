package form

import (
	"time"

	survey "github.com/Jumpaku/go-survey"
)

// GoogleQuestionID identifies a question inside a Google Form.
type GoogleQuestionID = string

// Published describes a survey that was published as a Google Form.
type Published struct {
	FormID       string
	ResponderURI string
	Questions    map[GoogleQuestionID]survey.Question
}

// Submission is one response collected by a published form, keyed by the ids
// of the survey questions.
type Submission struct {
	ResponseID        string
	RespondentEmail   string
	CreateTime        time.Time
	LastSubmittedTime time.Time
	Answers           survey.ResponseMap
}
