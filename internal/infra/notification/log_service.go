package notification

import (
	"context"
	"log/slog"

	"apparel/internal/domain/service"
)

// logService records pushes instead of sending them. Used when Firebase is not configured.
type logService struct {
	logger *slog.Logger
}

func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) Push(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	s.logger.InfoContext(ctx, "push notification",
		slog.Int("devices", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Any("data", msg.Data),
	)

	return &service.PushReport{Delivered: len(tokens)}, nil
}
