package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)

	return id, ok
}

// WithUser records the authenticated user. A request-scoped logger, if
// present, is replaced by one that also carries user_id.
func WithUser(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
	}

	return ctx
}
