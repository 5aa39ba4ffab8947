package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"outreach/internal/domain/service"
)

// localHTTPPublisher implements EventPublisher by POSTing Pub/Sub push-style
// envelopes to a local endpoint. Useful for development without GCP access.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// PushMessage mirrors the envelope Google Pub/Sub push subscriptions deliver,
// so a local consumer can handle both transports with the same decoder.
type PushMessage struct {
	Message struct {
		Data       string            `json:"data"`
		Attributes map[string]string `json:"attributes,omitempty"`
		MessageID  string            `json:"messageId"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher that targets a local HTTP endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// PublishCollectionEvent delivers a collection-changed event to the local endpoint
func (p *localHTTPPublisher) PublishCollectionEvent(ctx context.Context, event *service.CollectionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	var push PushMessage
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = map[string]string{
		"collection": event.Collection,
		"origin":     event.Origin,
	}
	push.Message.MessageID = fmt.Sprintf("local-%d", time.Now().UnixNano())
	push.Subscription = "local-subscription"

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("[LocalPubSub] Failed to close response body", slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("local pubsub endpoint returned status %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Collection event published",
		slog.String("collection", event.Collection),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

// Close is a no-op for the local HTTP publisher
func (p *localHTTPPublisher) Close() error {
	return nil
}
