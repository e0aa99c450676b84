package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"apparel/config"
	"apparel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		publisher, err := selectPublisher(ctx, nil, logger)

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.Publish(ctx, entity.NewEvent(entity.EventOrderPlaced, uuid.New(), time.Now())))
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := selectPublisher(ctx, &config.PubSubConfig{
			Provider:      ProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}, logger)

		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	invalid := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: ProviderLocal}},
		{"google without topic", &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "apparel"}},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := selectPublisher(ctx, tt.cfg, logger)

			assert.Nil(t, publisher)
			assert.Error(t, err)
		})
	}
}
