package pubsub

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received *entity.Event
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		received, err = DecodePushMessage(body)
		require.NoError(t, err)
		requestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := entity.NewEvent(entity.EventOrderPlaced, uuid.New(), time.Now())
	event.OrderCode = "O-101"
	event.RequestID = "req-1"

	require.NoError(t, publisher.Publish(context.Background(), event))
	require.NotNil(t, received)
	assert.Equal(t, event.ID, received.ID)
	assert.Equal(t, entity.EventOrderPlaced, received.Type)
	assert.Equal(t, "O-101", received.OrderCode)
	assert.Equal(t, "req-1", requestID)
}

func TestLocalHTTPPublisher_PublishNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.Publish(context.Background(), entity.NewEvent(entity.EventLogin, uuid.New(), time.Now()))
	assert.Error(t, err)
}

func TestDecodePushMessage_RejectsMalformedBody(t *testing.T) {
	_, err := DecodePushMessage([]byte(`{"message":{"data":"not-base64!"}}`))
	assert.Error(t, err)

	_, err = DecodePushMessage([]byte(`not json`))
	assert.Error(t, err)
}
