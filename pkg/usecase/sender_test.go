package usecase_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/mmhook/pkg/domain"
	"github.com/m-mizutani/mmhook/pkg/domain/model"
	"github.com/m-mizutani/mmhook/pkg/usecase"
)

// newMockServer responds with status when the request body equals wantBody,
// and with 501 otherwise.
func newMockServer(t *testing.T, wantBody string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		gt.NoError(t, err)

		if r.Method != http.MethodPost || string(body) != wantBody {
			w.WriteHeader(http.StatusNotImplemented)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSendMessage(t *testing.T) {
	t.Run("Returns 200 from endpoint", func(t *testing.T) {
		server := newMockServer(t, `{"text":"Hello, world!"}`, http.StatusOK)

		status, err := usecase.SendMessage(context.Background(), server.URL, `{"text":"Hello, world!"}`)
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusOK)
	})

	t.Run("Non-success status is not an error", func(t *testing.T) {
		for _, want := range []int{http.StatusNotFound, http.StatusBadRequest, http.StatusInternalServerError} {
			server := newMockServer(t, `{}`, want)

			status, err := usecase.SendMessage(context.Background(), server.URL, `{}`)
			gt.NoError(t, err)
			gt.Equal(t, status, want)
		}
	})

	t.Run("Sends raw body without content type", func(t *testing.T) {
		var (
			gotMethod      string
			gotContentType string
			gotBody        string
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotContentType = r.Header.Get("Content-Type")
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		// Not validated as JSON by the dispatcher
		status, err := usecase.SendMessage(context.Background(), server.URL, "not json")
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusOK)
		gt.Equal(t, gotMethod, http.MethodPost)
		gt.Equal(t, gotContentType, "")
		gt.Equal(t, gotBody, "not json")
	})

	t.Run("Connection refused is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		status, err := usecase.SendMessage(context.Background(), url, `{}`)
		gt.Error(t, err)
		gt.Equal(t, status, 0)
		gt.True(t, errors.Is(err, domain.ErrTransport))
		gt.Equal(t, domain.Classify(err), domain.KindTransport)
	})

	t.Run("Invalid destination is a transport error", func(t *testing.T) {
		for _, dest := range []string{"", "://missing-scheme", "http://127.0.0.1:99999/hooks/x"} {
			_, err := usecase.SendMessage(context.Background(), dest, `{}`)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, domain.ErrTransport))
		}
	})

	t.Run("Cancelled context is a transport error", func(t *testing.T) {
		server := newMockServer(t, `{}`, http.StatusOK)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := usecase.SendMessage(ctx, server.URL, `{}`)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrTransport))
		gt.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("Sender interface delegates", func(t *testing.T) {
		server := newMockServer(t, `{"channel":"ops"}`, http.StatusCreated)

		status, err := usecase.NewSender().SendMessage(context.Background(), server.URL, `{"channel":"ops"}`)
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusCreated)
	})
}

type countingTransport struct {
	base  http.RoundTripper
	calls int
}

func (c *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	c.calls++
	return c.base.RoundTrip(r)
}

func TestSendMessageWithReplacedDefaultTransport(t *testing.T) {
	orig := http.DefaultTransport
	rt := &countingTransport{base: orig}
	http.DefaultTransport = rt
	t.Cleanup(func() { http.DefaultTransport = orig })

	t.Run("Uses the replacement without panicking", func(t *testing.T) {
		server := newMockServer(t, `{"text":"wrapped"}`, http.StatusOK)

		status, err := usecase.SendMessage(context.Background(), server.URL, `{"text":"wrapped"}`)
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusOK)
		gt.Equal(t, rt.calls, 1)
	})

	t.Run("Transport failure is still classified", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := usecase.SendMessage(context.Background(), url, `{}`)
		gt.Error(t, err)
		gt.Equal(t, domain.Classify(err), domain.KindTransport)
	})
}

func TestSerializeAndSend(t *testing.T) {
	server := newMockServer(t, `{"text":"Hello, world!"}`, http.StatusOK)

	msg := model.NewMessage()
	msg.Text = model.String("Hello, world!")

	body, err := msg.ToJSON()
	gt.NoError(t, err)

	status, err := usecase.SendMessage(context.Background(), server.URL, body)
	gt.NoError(t, err)
	gt.Equal(t, status, http.StatusOK)
}

func TestMaskWebhookURL(t *testing.T) {
	testCases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "mattermost hook key",
			url:  "https://chat.example.com/hooks/xi9s8gkq6fbwm8c7yq1rbkc4jc",
			want: "https://chat.example.com/hooks/xi***",
		},
		{
			name: "other path",
			url:  "http://127.0.0.1:8065/api/v4/posts",
			want: "http://127.0.0.1:8065/***",
		},
		{
			name: "not a url",
			url:  "short",
			want: "***",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := usecase.MaskWebhookURL(tc.url)
			gt.Equal(t, got, tc.want)
			gt.False(t, strings.Contains(got, "8gkq6fbwm8c7yq1rbkc4jc"))
		})
	}
}
