// Package jsonrpc provides a generic JSON-RPC 2.0 client over HTTP, used to
// talk to blockchain nodes that are not covered by a dedicated SDK.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	transporthttp "github.com/gabapcia/chaintrack/internal/pkg/transport/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnauthorized is returned when the endpoint rejects the credentials (HTTP 401 or 403).
	ErrUnauthorized = errors.New("provider rejected credentials")
)

// RPCError is the error object of a JSON-RPC response. It matches
// ErrProviderReturnedError with errors.Is.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *RPCError) Is(target error) bool {
	return target == ErrProviderReturnedError
}

type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *RPCError       `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the JSON-RPC error object, if any.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client sends JSON-RPC requests and returns the raw result payload.
type Client interface {
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type config struct {
	httpClient *http.Client
	username   string
	password   string
}

// Option configures a client built by NewClient.
type Option func(*config)

// WithHTTPClient replaces the default retrying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithBasicAuth sends HTTP basic credentials with every request.
func WithBasicAuth(username, password string) Option {
	return func(cfg *config) {
		cfg.username = username
		cfg.password = password
	}
}

type client struct {
	providerEndpoint string
	cfg              config
}

var _ Client = (*client)(nil)

// Fetch posts a request with a random UUID as id and decodes the response
// envelope. Servers that answer errors with non-2xx statuses and a JSON body
// (bitcoind does) still yield an *RPCError.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.cfg.username != "" {
		req.SetBasicAuth(c.cfg.username, c.cfg.password)
	}

	res, err := c.cfg.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var data response
	if err := json.Unmarshal(raw, &data); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("unexpected status %d from provider", res.StatusCode)
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// NewClient returns a Client posting to providerEndpoint. Without
// WithHTTPClient it uses a retrying client from the transport/http package.
func NewClient(providerEndpoint string, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = transporthttp.NewStandardClient()
	}

	return &client{
		providerEndpoint: providerEndpoint,
		cfg:              cfg,
	}
}
