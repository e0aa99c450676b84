package pubsub

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"apparel/internal/domain/entity"
	"apparel/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/events-push"
	localPublishTimeout = 30 * time.Second
)

// localHTTPPublisher stands in for Pub/Sub in development: it POSTs each
// event straight to the worker's push endpoint, synchronously.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPublishTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) Publish(ctx context.Context, event *entity.Event) error {
	body, err := EncodePushMessage(event, localSubscription, time.Now())
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s to %s", event.Type, p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("worker answered %d for %s", resp.StatusCode, event.Type)
	}

	p.logger.DebugContext(ctx, "Event pushed to local worker",
		slog.String("endpoint", p.endpoint),
		slog.String("eventId", event.ID.String()),
		slog.String("eventType", string(event.Type)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
