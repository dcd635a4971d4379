package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mmhook/pkg/domain/interfaces"
	"github.com/m-mizutani/mmhook/pkg/domain/model"
)

// WebhookNotifier posts serialized messages to a single webhook
type WebhookNotifier struct {
	destination string
	sender      interfaces.Sender
}

// NewWebhookNotifier creates a Notifier that serializes a message and posts it
// to destination. A nil sender falls back to NewSender().
func NewWebhookNotifier(destination string, sender interfaces.Sender) interfaces.Notifier {
	if sender == nil {
		sender = NewSender()
	}
	return &WebhookNotifier{
		destination: destination,
		sender:      sender,
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, msg model.Message) (int, error) {
	logger := ctxlog.From(ctx)

	body, err := msg.ToJSON()
	if err != nil {
		logger.Debug("Failed to serialize message",
			slog.String("error", err.Error()),
		)
		return 0, err
	}

	return n.sender.SendMessage(ctx, n.destination, body)
}

// DryRunNotifier writes the serialized message instead of sending it
type DryRunNotifier struct {
	w io.Writer
}

func NewDryRunNotifier(w io.Writer) interfaces.Notifier {
	return &DryRunNotifier{w: w}
}

func (n *DryRunNotifier) Notify(ctx context.Context, msg model.Message) (int, error) {
	body, err := msg.ToJSON()
	if err != nil {
		return 0, err
	}

	if _, err := fmt.Fprintln(n.w, body); err != nil {
		return 0, goerr.Wrap(err, "failed to write payload")
	}
	return 0, nil
}
