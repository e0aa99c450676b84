// Package delivery holds the transports that expose the use cases: the
// customer and admin HTTP API and the notification push worker.
package delivery

import "context"

// Delivery is a long-running transport started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
