package formmust_test

import (
	"context"
	"errors"
	"testing"

	survey "github.com/Jumpaku/go-survey"
	surveyerrors "github.com/Jumpaku/go-survey/errors"
	"github.com/Jumpaku/go-survey/form"
	"github.com/Jumpaku/go-survey/formmust"
)

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("recovered %v, want panic with %v", r, target)
		}
	}()
	f()
}

func TestClient_PanicsOnError(t *testing.T) {
	c := formmust.New(nil, nil)
	ctx := context.Background()

	t.Run("Publish", func(t *testing.T) {
		def := survey.Definition{Questions: []survey.Question{{ID: "q", Type: survey.QuestionTypeMultipleChoice, Options: []survey.Option{{ID: "o"}}}}}
		expectPanic(t, surveyerrors.ErrUnpublishable, func() { c.Publish(ctx, def) })
	})
	t.Run("Share", func(t *testing.T) {
		expectPanic(t, surveyerrors.ErrInvalidConfig, func() {
			c.Share(ctx, "F1", form.Permission{Grantee: form.Anyone(), Role: form.RoleReader})
		})
	})
	t.Run("MoveTo", func(t *testing.T) {
		expectPanic(t, surveyerrors.ErrInvalidConfig, func() { c.MoveTo(ctx, "F1", "folder") })
	})
}
