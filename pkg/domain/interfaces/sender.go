package interfaces

import (
	"context"
)

// Sender delivers a serialized message body to a webhook endpoint
type Sender interface {
	// SendMessage issues a single POST and returns the response status code.
	// Non-2xx statuses are not errors.
	SendMessage(ctx context.Context, destination, body string) (int, error)
}
