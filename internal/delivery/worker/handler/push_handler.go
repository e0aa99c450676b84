package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"apparel/config"
	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	"apparel/internal/errors"
	"apparel/internal/infra/pubsub"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// maxPushBodySize bounds a single push request; events are small JSON documents.
const maxPushBodySize = 1 << 20

// PushVerifier authenticates a push request.
type PushVerifier func(req *http.Request) error

// PushHandler receives Pub/Sub push deliveries of domain events and hands
// them to the notification use case.
type PushHandler struct {
	verify         PushVerifier
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Requests are only
// authenticated when events arrive from Google Pub/Sub with a push audience
// configured; the local publisher posts unauthenticated.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var verify PushVerifier
	if ps := params.Config.PubSub; ps != nil && ps.Provider == pubsub.ProviderGoogle && ps.PushAudience != "" {
		verify = newIDTokenVerifier(ps.PushAudience, ps.PushServiceAccount)
	}

	return &PushHandler{
		verify:         verify,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush answers 2xx once the event is handled or can never be handled,
// and 503 when it should be redelivered.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxPushBodySize))
	if err != nil {
		h.logger.Error("[Worker] Failed to read push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodePushMessage(body)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
	)
	ctx = deliverycontext.Scope(ctx, requestID, reqLogger)

	result, err := h.notificationUC.Dispatch(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to dispatch event, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Event dispatched",
		slog.Bool("skipped", result.Skipped),
		slog.Bool("mail_sent", result.MailSent),
		slog.Int("push_success", result.PushSuccess),
		slog.Int("push_failure", result.PushFailure),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the ID recorded by the publisher so a request can
// be followed from the API into the worker.
func extractRequestID(ctx context.Context, event *entity.Event) string {
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// newIDTokenVerifier checks the OIDC token Google attaches to push requests.
func newIDTokenVerifier(audience, serviceAccount string) PushVerifier {
	return func(req *http.Request) error {
		token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !found || token == "" {
			return errors.New("missing bearer token")
		}

		payload, err := idtoken.Validate(req.Context(), token, audience)
		if err != nil {
			return errors.Wrap(err, "failed to validate token")
		}

		if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
			return errors.Errorf("invalid issuer: %s", payload.Issuer)
		}
		if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
			return errors.New("email not verified")
		}
		if serviceAccount != "" {
			if email, _ := payload.Claims["email"].(string); email != serviceAccount {
				return errors.Errorf("unexpected push service account %q", email)
			}
		}

		return nil
	}
}
