package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	"apparel/internal/domain/repository"
	"apparel/internal/domain/service"
	"apparel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

// notificationMessage is what one event turns into.
type notificationMessage struct {
	subject string
	text    string
	push    bool // Also send a mobile push with subject as title.
	always  bool // Sent regardless of the recipient's settings.
	allowed func(entity.NotificationSettings) bool
}

type notificationService struct {
	userRepo        repository.UserRepository
	deviceRepo      repository.DeviceRepository
	mailer          service.Mailer
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	DeviceRepo      repository.DeviceRepository
	Mailer          service.Mailer
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		userRepo:        params.UserRepo,
		deviceRepo:      params.DeviceRepo,
		mailer:          params.Mailer,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Dispatch delivers the notifications of one event. A returned error means
// the event should be redelivered; events that can never be delivered are
// reported as skipped instead.
func (s *notificationService) Dispatch(ctx context.Context, event *entity.Event) (*usecase.DispatchResult, error) {
	logger := s.log(ctx).With(slog.String("eventType", string(event.Type)), slog.Any("eventID", event.ID))

	user, err := s.userRepo.FindByID(ctx, event.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("Dropping event for unknown user", slog.Any("userID", event.UserID))

			return &usecase.DispatchResult{Skipped: true}, nil
		}

		return nil, errors.Wrap(err, "failed to load recipient")
	}

	msg, ok := buildNotification(event)
	if !ok {
		logger.Warn("Dropping event of unknown type")

		return &usecase.DispatchResult{Skipped: true}, nil
	}
	if !msg.always && !msg.allowed(user.Notifications) {
		logger.Debug("Recipient opted out", slog.Any("userID", user.ID))

		return &usecase.DispatchResult{Skipped: true}, nil
	}

	result := &usecase.DispatchResult{}

	to := user.Email
	if email := event.Attributes[AttrEmail]; email != "" {
		to = email
	}
	if err := s.mailer.Send(ctx, service.Mail{To: []string{to}, Subject: msg.subject, Text: msg.text}); err != nil {
		return nil, errors.Wrap(err, "failed to send mail")
	}
	result.MailSent = true

	if msg.push {
		result.PushSuccess, result.PushFailure = s.push(ctx, logger, user, event, msg)
	}

	logger.Info("Event dispatched",
		slog.Bool("mailSent", result.MailSent),
		slog.Int("pushSuccess", result.PushSuccess),
		slog.Int("pushFailure", result.PushFailure),
	)

	return result, nil
}

// push sends msg to every active device of user. Devices whose token
// Firebase reports as invalid are deactivated. Push failures never fail the
// dispatch since the mail has already gone out.
func (s *notificationService) push(
	ctx context.Context,
	logger *slog.Logger,
	user *entity.User,
	event *entity.Event,
	msg notificationMessage,
) (sent, failed int) {
	if s.notificationSvc == nil {
		return 0, 0
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, user.ID, true)
	if err != nil {
		logger.Warn("Failed to load devices", slog.Any("error", err))

		return 0, 0
	}
	if len(devices) == 0 {
		return 0, 0
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	data := map[string]string{
		"event_type": string(event.Type),
		"event_id":   event.ID.String(),
	}
	if event.OrderCode != "" {
		data["order_code"] = event.OrderCode
	}
	if event.DesignCode != "" {
		data["design_code"] = event.DesignCode
	}

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		report, err := s.notificationSvc.Push(ctx, batch, service.PushMessage{Title: msg.subject, Body: msg.text, Data: data})
		if err != nil {
			logger.Warn("Push batch failed", slog.Int("size", len(batch)), slog.Any("error", err))
			failed += len(batch)

			continue
		}

		sent += report.Delivered
		failed += report.Failed

		for _, token := range report.StaleTokens {
			device, ok := deviceMap[token]
			if !ok {
				continue
			}
			if err := s.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
				logger.Warn("Failed to deactivate invalid device", slog.Any("deviceID", device.ID), slog.Any("error", err))
			}
		}
	}

	return sent, failed
}

// buildNotification renders the plain-text message of an event and the
// setting that gates it.
func buildNotification(event *entity.Event) (notificationMessage, bool) {
	switch event.Type {
	case entity.EventOTPIssued:
		return notificationMessage{
			subject: "Verify your email",
			text:    fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", event.Attributes[AttrOTP]),
			always:  true,
		}, true
	case entity.EventPasswordReset:
		return notificationMessage{
			subject: "Reset your password",
			text: fmt.Sprintf("We received a request to reset your password.\n\nOpen %s to choose a new one. "+
				"If you did not ask for this, you can ignore this email.", event.Attributes[AttrResetLink]),
			always: true,
		}, true
	case entity.EventLogin:
		return notificationMessage{
			subject: "New sign-in to your account",
			text:    fmt.Sprintf("Your account was signed in to at %s.", event.OccurredAt.UTC().Format("2006-01-02 15:04 MST")),
			push:    true,
			allowed: func(ns entity.NotificationSettings) bool { return ns.AccountActivityAlerts },
		}, true
	case entity.EventLoginFailed:
		return notificationMessage{
			subject: "Failed sign-in attempt",
			text:    fmt.Sprintf("Someone tried to sign in to your account with a wrong password at %s.", event.OccurredAt.UTC().Format("2006-01-02 15:04 MST")),
			allowed: func(ns entity.NotificationSettings) bool { return ns.AccountActivityAlerts },
		}, true
	case entity.EventLogout:
		return notificationMessage{
			subject: "You signed out",
			text:    fmt.Sprintf("Your account was signed out at %s. If this was not you, reset your password.", event.OccurredAt.UTC().Format("2006-01-02 15:04 MST")),
			allowed: func(ns entity.NotificationSettings) bool { return ns.AccountActivityAlerts },
		}, true
	case entity.EventOrderPlaced:
		return notificationMessage{
			subject: fmt.Sprintf("Order %s confirmed", event.OrderCode),
			text:    fmt.Sprintf("Thank you! Your order %s has been placed and is now %s.", event.OrderCode, event.Status),
			push:    true,
			allowed: func(ns entity.NotificationSettings) bool { return ns.OrderConfirmationEmail },
		}, true
	case entity.EventOrderPaid:
		return notificationMessage{
			subject: fmt.Sprintf("Payment received for order %s", event.OrderCode),
			text:    fmt.Sprintf("We have received your payment for order %s.", event.OrderCode),
			push:    true,
			allowed: func(ns entity.NotificationSettings) bool { return ns.PaymentSuccessNotification },
		}, true
	case entity.EventOrderTracking:
		return notificationMessage{
			subject: fmt.Sprintf("Order %s is %s", event.OrderCode, event.Tracking),
			text:    fmt.Sprintf("Your order %s is now %s (status: %s).", event.OrderCode, event.Tracking, event.Status),
			push:    true,
			allowed: func(ns entity.NotificationSettings) bool { return ns.ShippingDeliveryUpdates },
		}, true
	case entity.EventOrderCancelled:
		return notificationMessage{
			subject: fmt.Sprintf("Order %s cancelled", event.OrderCode),
			text:    fmt.Sprintf("Your order %s has been cancelled.", event.OrderCode),
			push:    true,
			allowed: func(ns entity.NotificationSettings) bool { return ns.ShippingDeliveryUpdates },
		}, true
	case entity.EventDesignReady:
		return notificationMessage{
			subject: fmt.Sprintf("Design %s is ready", event.DesignCode),
			text:    fmt.Sprintf("Your AI design %s is ready for review.", event.DesignCode),
			push:    true,
			allowed: func(ns entity.NotificationSettings) bool { return ns.AIDesignApprovalsAlerts },
		}, true
	default:
		return notificationMessage{}, false
	}
}
