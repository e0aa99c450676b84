package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestScopeAndUser(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	userID := uuid.New()

	ctx := Scope(context.Background(), "req-1", base.With(slog.String("request_id", "req-1")))
	ctx = WithUser(ctx, userID)

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	got, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	GetLoggerOrDefault(ctx, nil).Info("order placed")
	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "user_id="+userID.String())
}

func TestOutsideRequestScope(t *testing.T) {
	fallback := slog.Default()
	ctx := context.Background()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	_, ok := GetUserIDFromContext(Scope(ctx, "req-2", fallback))
	assert.False(t, ok)
}
