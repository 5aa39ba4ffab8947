package pubsub

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"outreach/config"
	"outreach/internal/domain/lifecycle"
	"outreach/internal/domain/service"
)

// Provider names accepted in config.pubsub.provider.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// noopPublisher swallows events when pub/sub is not configured
type noopPublisher struct{}

func (noopPublisher) PublishCollectionEvent(context.Context, *service.CollectionEvent) error {
	return nil
}

func (noopPublisher) Close() error { return nil }

// PublisherParams defines dependencies for creating an event publisher
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration.
// When no pubsub section is configured a no-op publisher is returned so
// the rest of the application never has to nil-check.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Pub/Sub not configured, using no-op publisher")

		return noopPublisher{}, nil
	}

	var (
		publisher service.EventPublisher
		err       error
	)

	switch cfg.Provider {
	case ProviderLocal:
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, params.Logger)
	case ProviderGoogle:
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			done := make(chan error, 1)
			go func() { done <- publisher.Close() }()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(lifecycle.DefaultTimeout):
				return errors.New("timed out closing event publisher")
			}
		},
	})

	return publisher, nil
}

// Module provides pub/sub dependencies
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
