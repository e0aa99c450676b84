package notification

import (
	"context"

	"apparel/internal/domain/service"
	"apparel/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService builds an FCM-backed NotificationService. An empty
// credentialsPath falls back to application default credentials.
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

func (s *firebaseService) Push(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	report := &service.PushReport{StaleTokens: make([]string, 0)}

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		chunk := tokens[start:min(start+maxMulticastTokens, len(tokens))]

		resp, err := s.client.SendEachForMulticast(ctx, toMulticast(chunk, msg))
		if err != nil {
			return report, errors.Wrapf(err, "failed to push to %d devices", len(chunk))
		}

		report.Delivered += resp.SuccessCount
		report.Failed += resp.FailureCount
		report.StaleTokens = append(report.StaleTokens, staleTokens(chunk, resp.Responses)...)
	}

	return report, nil
}

func toMulticast(tokens []string, msg service.PushMessage) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	}
}

// staleTokens picks tokens whose send failed because FCM rejected the token
// itself. Transient failures are not reported.
func staleTokens(chunk []string, responses []*messaging.SendResponse) []string {
	var stale []string
	for i, r := range responses {
		if r == nil || r.Error == nil || i >= len(chunk) {
			continue
		}
		if messaging.IsInvalidArgument(r.Error) || messaging.IsUnregistered(r.Error) {
			stale = append(stale, chunk[i])
		}
	}

	return stale
}
