package shell

import (
	"context"
	"log/slog"
	"sync"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/form"
	"github.com/Jumpaku/go-survey/internal/config"
)

// FormPublisher publishes to Google Forms and then applies the configured
// publish state, folder and sharing. The client is created on first use so
// that credentials are only needed when publishing.
type FormPublisher struct {
	newClient func(ctx context.Context) (*form.Client, error)
	cfg       config.GoogleConfig
	logger    *slog.Logger

	mu     sync.Mutex
	client *form.Client
}

var _ Publisher = (*FormPublisher)(nil)

func NewFormPublisher(newClient func(ctx context.Context) (*form.Client, error), cfg config.GoogleConfig, logger *slog.Logger) *FormPublisher {
	return &FormPublisher{newClient: newClient, cfg: cfg, logger: logger}
}

// getClient keeps the first client that could be created. A failed attempt is
// retried on the next call.
func (p *FormPublisher) getClient(ctx context.Context) (*form.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		return p.client, nil
	}
	c, err := p.newClient(ctx)
	if err != nil {
		return nil, err
	}
	p.client = c
	return c, nil
}

func (p *FormPublisher) Publish(ctx context.Context, def survey.Definition) (*form.Published, error) {
	c, err := p.getClient(ctx)
	if err != nil {
		return nil, err
	}
	published, err := c.Publish(ctx, def)
	if err != nil {
		return published, err
	}
	p.logger.Info("form published", slog.String("form", published.FormID), slog.Int("questions", len(published.Questions)))

	state, err := form.ParsePublishState(p.cfg.PublishState)
	if err != nil {
		return published, err
	}
	if err := c.SetPublishState(ctx, published.FormID, state); err != nil {
		return published, err
	}
	if p.cfg.Folder != "" {
		if err := c.MoveTo(ctx, published.FormID, p.cfg.Folder); err != nil {
			return published, err
		}
	}
	for _, s := range p.cfg.Share {
		grantee, err := form.ParseGrantee(s)
		if err != nil {
			return published, err
		}
		if err := c.Share(ctx, published.FormID, form.Permission{Grantee: grantee, Role: form.RoleReader}); err != nil {
			return published, err
		}
		p.logger.Debug("form shared", slog.String("form", published.FormID), slog.String("grantee", s))
	}
	return published, nil
}

func (p *FormPublisher) FetchResponses(ctx context.Context, published *form.Published) ([]form.Submission, error) {
	c, err := p.getClient(ctx)
	if err != nil {
		return nil, err
	}
	return c.FetchResponses(ctx, published)
}
