// Package formmust wraps the form package with panic-based error handling.
//
// It provides the same publishing operations as the form package, but instead
// of returning errors, all exported methods panic on failure. It is meant for
// scripts and demos where any failure should abort.
package formmust

import (
	"context"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/form"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"
)

// Client publishes surveys as Google Forms.
//
// All methods of Client panic on error instead of returning an error value.
type Client struct {
	client *form.Client
}

// New creates a new Client with the given services.
// The services should be properly authenticated before being passed to this function.
func New(formsService *forms.Service, driveService *drive.Service) *Client {
	return &Client{client: form.New(formsService, driveService)}
}

// Publish creates a new form holding def.
//
// It panics if the survey cannot be published or an API call fails.
func (c *Client) Publish(ctx context.Context, def survey.Definition) *form.Published {
	return must1(c.client.Publish(ctx, def))
}

// SetPublishState changes whether the form is published and accepting responses.
//
// It panics if the API call fails.
func (c *Client) SetPublishState(ctx context.Context, formID string, state form.PublishState) {
	must0(c.client.SetPublishState(ctx, formID, state))
}

// FetchResponses lists the submissions of a published form.
//
// It panics if listing the responses fails.
func (c *Client) FetchResponses(ctx context.Context, published *form.Published) []form.Submission {
	return must1(c.client.FetchResponses(ctx, published))
}

// Share grants permission on the form's file.
//
// It panics if no drive service was given or the API call fails.
func (c *Client) Share(ctx context.Context, formID string, permission form.Permission) {
	must0(c.client.Share(ctx, formID, permission))
}

// MoveTo moves the form's file into folderID.
//
// It panics if no drive service was given or an API call fails.
func (c *Client) MoveTo(ctx context.Context, formID, folderID string) {
	must0(c.client.MoveTo(ctx, formID, folderID))
}

func must0(err error) {
	if err != nil {
		panic(err)
	}
}

func must1[T any](v T, err error) T {
	must0(err)
	return v
}
