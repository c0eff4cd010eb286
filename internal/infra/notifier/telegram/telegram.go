// Package telegram delivers match events through the Telegram Bot API. Each
// subscriber of an event is a chat id.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gabapcia/chaintrack/internal/alerting"
	"github.com/gabapcia/chaintrack/internal/chainpoll"
	transporthttp "github.com/gabapcia/chaintrack/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

const defaultBaseURL = "https://api.telegram.org"

// ErrNotDelivered is returned when the Bot API rejects a message.
var ErrNotDelivered = errors.New("telegram rejected the message")

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

type sink struct {
	token     string
	baseURL   string
	client    *retryablehttp.Client
	formatter *alerting.Formatter
}

var _ chainpoll.NotificationSink = (*sink)(nil)

func (s *sink) send(ctx context.Context, chatID, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var data sendMessageResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return fmt.Errorf("%w: status %d", ErrNotDelivered, res.StatusCode)
	}

	if !data.OK {
		return fmt.Errorf("%w: status %d: %s", ErrNotDelivered, res.StatusCode, data.Description)
	}

	return nil
}

// Notify sends the formatted event to every subscriber. All subscribers are
// attempted; the failures are joined.
func (s *sink) Notify(ctx context.Context, event chainpoll.MatchEvent) error {
	text := s.formatter.Format(event)

	var errs []error
	for _, chatID := range event.Subscribers {
		if err := s.send(ctx, chatID, text); err != nil {
			errs = append(errs, fmt.Errorf("chat %s: %w", chatID, err))
		}
	}

	return errors.Join(errs...)
}

type config struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

type Option func(*config)

// WithBaseURL points the sink at another Bot API server.
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the default retrying client.
func WithHTTPClient(client *retryablehttp.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// New returns a sink posting with the bot token.
func New(token string, formatter *alerting.Formatter, opts ...Option) *sink {
	cfg := config{
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = transporthttp.NewClient()
	}

	return &sink{
		token:     token,
		baseURL:   strings.TrimRight(cfg.baseURL, "/"),
		client:    cfg.httpClient,
		formatter: formatter,
	}
}
