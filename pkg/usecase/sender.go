package usecase

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mmhook/pkg/domain"
	"github.com/m-mizutani/mmhook/pkg/domain/interfaces"
)

type webhookSender struct{}

// NewSender creates a Sender posting to webhook endpoints
func NewSender() interfaces.Sender {
	return &webhookSender{}
}

func (s *webhookSender) SendMessage(ctx context.Context, destination, body string) (int, error) {
	return SendMessage(ctx, destination, body)
}

// SendMessage POSTs body to destination and returns the response status code.
// Any status the server answers with is returned as is; only a failure to
// complete the exchange is reported as an error, wrapped in domain.ErrTransport.
func SendMessage(ctx context.Context, destination, body string) (int, error) {
	logger := ctxlog.From(ctx)
	maskedURL := maskWebhookURL(destination)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, destination, strings.NewReader(body))
	if err != nil {
		return 0, domain.ErrTransport.Wrap(goerr.Wrap(err, "failed to create request",
			goerr.V("destination", maskedURL)))
	}

	// A fresh transport per call keeps calls independent of each other.
	// A replaced DefaultTransport is used as is and left untouched.
	client := &http.Client{}
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		client.Transport = t.Clone()
		defer client.CloseIdleConnections()
	}

	logger.Debug("Sending message",
		slog.String("destination", maskedURL),
		slog.Int("body_length", len(body)),
	)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, domain.ErrTransport.Wrap(goerr.Wrap(err, "failed to send request",
			goerr.V("destination", maskedURL)))
	}
	defer resp.Body.Close()

	// Drain so the exchange is fully read before the client is released
	_, _ = io.Copy(io.Discard, resp.Body)

	logger.Debug("Message sent",
		slog.String("destination", maskedURL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	return resp.StatusCode, nil
}

// maskWebhookURL masks the webhook key for logging
func maskWebhookURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		if len(raw) > 20 {
			return raw[:20] + "***"
		}
		return "***"
	}

	parts := strings.Split(u.Path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "hooks" {
			for j := i + 1; j < len(parts); j++ {
				if len(parts[j]) > 4 {
					parts[j] = parts[j][:2] + "***"
				}
			}
			return u.Scheme + "://" + u.Host + strings.Join(parts, "/")
		}
	}

	// Unknown layout, keep only scheme and host
	return u.Scheme + "://" + u.Host + "/***"
}
