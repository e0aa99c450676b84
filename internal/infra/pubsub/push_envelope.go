package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"apparel/internal/domain/entity"

	"github.com/pkg/errors"
)

// pushEnvelope is the body a Pub/Sub push subscription POSTs to its endpoint.
// Data holds the JSON event, base64 encoded.
type pushEnvelope struct {
	Message      pushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type pushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// EncodePushMessage renders event the way a push subscription would deliver it.
func EncodePushMessage(event *entity.Event, subscription string, publishedAt time.Time) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode event")
	}

	body, err := json.Marshal(pushEnvelope{
		Subscription: subscription,
		Message: pushedMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  event.MessageAttributes(),
			MessageID:   event.ID.String(),
			PublishTime: publishedAt.UTC().Format(time.RFC3339),
		},
	})

	return body, errors.Wrap(err, "encode push message")
}

// DecodePushMessage returns the event carried by a push body. An event
// without a type is rejected so the worker acks it instead of retrying.
func DecodePushMessage(body []byte) (*entity.Event, error) {
	var envelope pushEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "decode push message")
	}

	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push data")
	}

	var event entity.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "decode event")
	}
	if event.Type == "" {
		return nil, errors.New("event type is empty")
	}

	return &event, nil
}
