package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apparel/config"
	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	"apparel/internal/infra/pubsub"
	mockUsecase "apparel/internal/mocks/usecase"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, verify PushVerifier) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	return &PushHandler{
		verify:         verify,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationUC: notificationUC,
	}, notificationUC
}

func pushBody(t *testing.T, event *entity.Event) []byte {
	t.Helper()

	body, err := pubsub.EncodePushMessage(event, "projects/apparel/subscriptions/notifications", time.Now())
	require.NoError(t, err)

	return body
}

func postPush(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/pubsub/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func testEvent() *entity.Event {
	event := entity.NewEvent(entity.EventOrderPlaced, uuid.New(), time.Now())
	event.OrderCode = "O-101"
	event.RequestID = "req-from-api"

	return event
}

func TestPushHandler_Dispatched(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, nil)
	event := testEvent()

	notificationUC.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(got *entity.Event) bool {
			return got.ID == event.ID && got.Type == entity.EventOrderPlaced && got.OrderCode == "O-101"
		})).
		Run(func(ctx context.Context, _ *entity.Event) {
			assert.Equal(t, "req-from-api", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&usecase.DispatchResult{MailSent: true}, nil)

	rec := postPush(h, pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DispatchFailureRequestsRedelivery(t *testing.T) {
	h, notificationUC := newTestPushHandler(t, nil)

	notificationUC.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil, errors.New("smtp timeout"))

	rec := postPush(h, pushBody(t, testEvent()))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedBody(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	for _, body := range [][]byte{
		[]byte("not json"),
		[]byte(`{"message":{"data":"%%%"}}`),
		[]byte(`{"message":{"data":"e30="}}`),
	} {
		rec := postPush(h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, string(body))
	}
}

func TestPushHandler_RejectedToken(t *testing.T) {
	h, _ := newTestPushHandler(t, func(*http.Request) error {
		return errors.New("invalid audience")
	})

	rec := postPush(h, pushBody(t, testEvent()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_Verification(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	local := NewPushHandler(PushHandlerParams{
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: pubsub.ProviderLocal}},
		Logger: logger,
	})
	assert.Nil(t, local.verify)

	google := NewPushHandler(PushHandlerParams{
		Config: &config.Config{PubSub: &config.PubSubConfig{
			Provider:     pubsub.ProviderGoogle,
			PushAudience: "https://worker.example.com/pubsub/push",
		}},
		Logger: logger,
	})
	require.NotNil(t, google.verify)

	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", nil)
	assert.ErrorContains(t, google.verify(req), "missing bearer token")
}
