package form

import (
	"context"
	"fmt"
	"time"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"
)

type PublishState string

const (
	PublishStateUnpublished  PublishState = "unpublished"
	PublishStateAccepting    PublishState = "accepting"
	PublishStateNotAccepting PublishState = "not_accepting"
)

func ParsePublishState(s string) (PublishState, error) {
	switch state := PublishState(s); state {
	case PublishStateUnpublished, PublishStateAccepting, PublishStateNotAccepting:
		return state, nil
	}
	return "", fmt.Errorf("unknown publish state %q: %w", s, errors.ErrInvalidConfig)
}

// Client publishes surveys as Google Forms. The drive service is only needed
// for Share and MoveTo and may be nil.
type Client struct {
	forms *forms.Service
	drive *drive.Service
}

func New(formsService *forms.Service, driveService *drive.Service) *Client {
	return &Client{forms: formsService, drive: driveService}
}

// Publish creates a new form holding def and returns where it lives. When the
// form was created but filling it failed, the partly published form is
// returned together with the error.
func (c *Client) Publish(ctx context.Context, def survey.Definition) (published *Published, err error) {
	batch, err := NewBatch(def)
	if err != nil {
		return nil, err
	}

	f, err := c.forms.Forms.Create(&forms.Form{
		Info: &forms.Info{Title: def.Title, DocumentTitle: def.Title},
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.NewAPIError("failed to create form", err)
	}

	resp, err := c.forms.Forms.BatchUpdate(f.FormId, &forms.BatchUpdateFormRequest{
		Requests: batch.Requests(),
	}).Context(ctx).Do()
	if err != nil {
		return &Published{
			FormID:       f.FormId,
			ResponderURI: f.ResponderUri,
			Questions:    map[GoogleQuestionID]survey.Question{},
		}, newAPIError("failed to add questions to form "+f.FormId, err)
	}

	return &Published{
		FormID:       f.FormId,
		ResponderURI: f.ResponderUri,
		Questions:    batch.questions(resp.Replies),
	}, nil
}

func (c *Client) SetPublishState(ctx context.Context, formID string, state PublishState) (err error) {
	_, err = c.forms.Forms.SetPublishSettings(formID, &forms.SetPublishSettingsRequest{
		PublishSettings: &forms.PublishSettings{
			PublishState: &forms.PublishState{
				IsAcceptingResponses: state == PublishStateAccepting,
				IsPublished:          state != PublishStateUnpublished,
				ForceSendFields:      []string{"IsAcceptingResponses", "IsPublished"},
			},
		},
		UpdateMask: "publish_state",
	}).Context(ctx).Do()
	if err != nil {
		return newAPIError("failed to change publish state", err)
	}
	return nil
}

// FetchResponses lists the responses collected by a published form. Every
// submission has an entry for each published question; unanswered questions
// hold an empty response.
func (c *Client) FetchResponses(ctx context.Context, published *Published) (submissions []Submission, err error) {
	var responses []*forms.FormResponse
	err = c.forms.Forms.Responses.
		List(published.FormID).
		Pages(ctx, func(resp *forms.ListFormResponsesResponse) error {
			responses = append(responses, resp.Responses...)
			return nil
		})
	if err != nil {
		return nil, newAPIError("failed to list responses", err)
	}

	for _, response := range responses {
		createTime, err := parseTime(response.CreateTime)
		if err != nil {
			return nil, errors.NewAPIError("invalid create time of response "+response.ResponseId, err)
		}
		lastSubmittedTime, err := parseTime(response.LastSubmittedTime)
		if err != nil {
			return nil, errors.NewAPIError("invalid last submitted time of response "+response.ResponseId, err)
		}
		submission := Submission{
			ResponseID:        response.ResponseId,
			RespondentEmail:   response.RespondentEmail,
			CreateTime:        createTime,
			LastSubmittedTime: lastSubmittedTime,
			Answers:           survey.ResponseMap{},
		}
		for googleID, q := range published.Questions {
			submission.Answers[q.ID] = answer(q, response.Answers[googleID])
		}
		submissions = append(submissions, submission)
	}

	return submissions, nil
}

// parseTime reads an RFC 3339 timestamp of a form response. An absent
// timestamp is the zero time.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func answer(q survey.Question, a forms.Answer) survey.Response {
	if a.TextAnswers == nil || len(a.TextAnswers.Answers) == 0 {
		return survey.EmptyResponse(q.Type)
	}
	values := []string{}
	for _, textAnswer := range a.TextAnswers.Answers {
		values = append(values, textAnswer.Value)
	}
	if len(values) > 1 {
		return survey.Response{Type: q.Type, Value: survey.MultiSelect(values...)}
	}
	return survey.Response{Type: q.Type, Value: survey.Scalar(values[0])}
}
