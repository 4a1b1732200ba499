package shell

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"

	survey "github.com/Jumpaku/go-survey"
	surveyerrors "github.com/Jumpaku/go-survey/errors"
	"github.com/Jumpaku/go-survey/form"
	"github.com/Jumpaku/go-survey/internal/config"
)

func newGoogleClient(t *testing.T, replies map[string]string) (func(context.Context) (*form.Client, error), *[]string) {
	t.Helper()
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		calls = append(calls, key)
		reply, ok := replies[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)

	return func(ctx context.Context) (*form.Client, error) {
		fs, err := forms.NewService(ctx, option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
		if err != nil {
			return nil, err
		}
		ds, err := drive.NewService(ctx, option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
		if err != nil {
			return nil, err
		}
		return form.New(fs, ds), nil
	}, &calls
}

func TestFormPublisher_Publish(t *testing.T) {
	newClient, calls := newGoogleClient(t, map[string]string{
		"POST /v1/forms":                       `{"formId":"F1","responderUri":"https://example.com/F1"}`,
		"POST /v1/forms/F1:batchUpdate":        `{"replies":[{},{"createItem":{"questionId":["g1"]}}]}`,
		"POST /v1/forms/F1:setPublishSettings": `{"formId":"F1"}`,
		"GET /files/F1":                        `{"id":"F1","parents":["root"]}`,
		"PATCH /files/F1":                      `{"id":"F1"}`,
		"POST /files/F1/permissions":           `{"id":"p1"}`,
	})
	p := NewFormPublisher(newClient, config.GoogleConfig{
		Folder:       "folder",
		Share:        []string{"alice@example.com", "anyone"},
		PublishState: "accepting",
	}, slog.New(slog.DiscardHandler))

	def := survey.Definition{Title: "T", Questions: []survey.Question{{ID: "q1", Label: "Name", Type: survey.QuestionTypeText}}}
	published, err := p.Publish(context.Background(), def)
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if published.FormID != "F1" || published.Questions["g1"].ID != "q1" {
		t.Fatalf("Publish() = %#v", published)
	}

	want := []string{
		"POST /v1/forms",
		"POST /v1/forms/F1:batchUpdate",
		"POST /v1/forms/F1:setPublishSettings",
		"GET /files/F1",
		"PATCH /files/F1",
		"POST /files/F1/permissions",
		"POST /files/F1/permissions",
	}
	if diff := cmp.Diff(want, *calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestFormPublisher_ClientErrorIsRetried(t *testing.T) {
	cause := errors.New("no credentials")
	newClient, _ := newGoogleClient(t, map[string]string{})
	created := 0
	p := NewFormPublisher(func(ctx context.Context) (*form.Client, error) {
		created++
		if created == 1 {
			return nil, cause
		}
		return newClient(ctx)
	}, config.GoogleConfig{PublishState: "accepting"}, slog.New(slog.DiscardHandler))

	if _, err := p.FetchResponses(context.Background(), &form.Published{FormID: "F1"}); !errors.Is(err, cause) {
		t.Fatalf("FetchResponses() error = %v, want %v", err, cause)
	}
	for range 2 {
		c, err := p.getClient(context.Background())
		if err != nil || c == nil {
			t.Fatalf("getClient() = %v, %v, want a client", c, err)
		}
	}
	if created != 2 {
		t.Fatalf("client constructor called %d times, want 2", created)
	}
}

func TestFormPublisher_PublishError(t *testing.T) {
	newClient, _ := newGoogleClient(t, map[string]string{})
	p := NewFormPublisher(newClient, config.GoogleConfig{PublishState: "accepting"}, slog.New(slog.DiscardHandler))

	_, err := p.Publish(context.Background(), survey.Definition{Title: "T"})
	if !errors.Is(err, surveyerrors.ErrAPIError) {
		t.Fatalf("Publish() error = %v, want ErrAPIError", err)
	}
}

func TestFormPublisher_KeepsFormWhenLaterStepFails(t *testing.T) {
	newClient, calls := newGoogleClient(t, map[string]string{
		"POST /v1/forms":                `{"formId":"F1","responderUri":"https://example.com/F1"}`,
		"POST /v1/forms/F1:batchUpdate": `{"replies":[{},{"createItem":{"questionId":["g1"]}}]}`,
	})
	p := NewFormPublisher(newClient, config.GoogleConfig{PublishState: "accepting"}, slog.New(slog.DiscardHandler))

	def := survey.Definition{Title: "T", Questions: []survey.Question{{ID: "q1", Label: "Name", Type: survey.QuestionTypeText}}}
	published, err := p.Publish(context.Background(), def)
	if err == nil {
		t.Fatal("Publish() error = nil, want publish settings failure")
	}
	if published == nil || published.FormID != "F1" || published.Questions["g1"].ID != "q1" {
		t.Fatalf("Publish() = %#v, want form F1 with its questions", published)
	}
	if got := (*calls)[len(*calls)-1]; got != "POST /v1/forms/F1:setPublishSettings" {
		t.Fatalf("last call = %q", got)
	}
}
