// Package backend is the adapter to the remote spreadsheet action endpoint.
//
// Every call is a single POST carrying an "action" discriminator. Calls never
// return errors: transport failures are retried and then collapse into a
// failed Result or an empty collection.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/festy23/tournament_portal/internal/config"
	"github.com/festy23/tournament_portal/pkg/retry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FallbackMessage is returned once every attempt of a call has failed in transport.
const FallbackMessage = "Network Error: Check API URL and Permissions"

// contentType avoids a CORS preflight, which the hosted endpoint does not answer.
const contentType = "text/plain;charset=utf-8"

const maxResponseSize = 8 << 20

var errTransport = errors.New("backend transport failure")

// Result is the outcome of a write action.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func failed(message string) Result {
	return Result{Success: false, Message: message}
}

// Client talks to the remote action endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	retry      retry.Config
	clock      clockwork.Clock
	newKey     func() string
	logger     *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for every attempt.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock sets the clock used for waits between attempts.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithRetry replaces the retry policy built from configuration.
func WithRetry(cfg retry.Config) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithIdempotencyKeys sets the generator for write idempotency keys.
func WithIdempotencyKeys(gen func() string) Option {
	return func(c *Client) {
		c.newKey = gen
	}
}

// New creates a Client for the endpoint in cfg.
func New(cfg config.BackendConfig, logger *zap.SugaredLogger, opts ...Option) *Client {
	policy := retry.DefaultConfig()
	if cfg.MaxAttempts > 0 {
		policy.MaxAttempts = cfg.MaxAttempts
	}
	policy.InitialDelay = cfg.RetryDelay

	c := &Client{
		url:        strings.TrimSpace(cfg.URL),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retry:      policy,
		clock:      clockwork.NewRealClock(),
		newKey:     uuid.NewString,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop().Sugar()
	}
	return c
}

// request is the JSON body of an action call.
type request map[string]any

// response is a decoded JSON object returned by the endpoint.
type response map[string]jsoniter.RawMessage

func (r response) success() bool {
	var ok flexBool
	r.field("success", &ok)
	return bool(ok)
}

func (r response) message() string {
	var msg flexString
	r.field("message", &msg)
	return string(msg)
}

// field decodes key into v and reports whether it was present and decodable.
func (r response) field(key string, v any) bool {
	raw, ok := r[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// write sends a mutating action. The idempotency key is minted once and
// reused by every retry of this call.
func (c *Client) write(ctx context.Context, req request) Result {
	req["idempotencyKey"] = c.newKey()
	resp, err := c.call(ctx, req)
	if err != nil {
		return failed(FallbackMessage)
	}
	return Result{Success: resp.success(), Message: resp.message()}
}

// call performs one logical action with retries and returns the decoded body.
func (c *Client) call(ctx context.Context, req request) (response, error) {
	action, _ := req["action"].(string)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", action, err)
	}

	policy := c.retry
	if policy.Clock == nil {
		policy.Clock = c.clock
	}
	policy.OnRetry = func(attempt int, err error) {
		c.logger.Warnw("Retrying backend action",
			"action", action,
			"attempt", attempt,
			"attempts_left", policy.MaxAttempts-attempt,
			"error", err,
		)
	}

	resp, err := retry.DoWithResult(ctx, policy, func() (response, error) {
		return c.post(ctx, body)
	})
	if err != nil {
		c.logger.Errorw("Backend action failed",
			"action", action,
			"attempts", policy.MaxAttempts,
			"error", err,
		)
		return nil, err
	}
	return resp, nil
}

// post performs a single attempt. Any network error, non-2xx status or
// body that is not a JSON object is a transport failure.
func (c *Client) post(ctx context.Context, body []byte) (response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", errTransport, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status=%d body=%s", errTransport, resp.StatusCode, abbreviate(raw))
	}

	var decoded response
	if err := json.Unmarshal(raw, &decoded); err != nil || decoded == nil {
		return nil, fmt.Errorf("%w: non-JSON response body=%s", errTransport, abbreviate(raw))
	}
	return decoded, nil
}

func abbreviate(raw []byte) string {
	const limit = 256
	s := strings.TrimSpace(string(raw))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

// HealthCheck sends a single unretried ping and reports whether the
// endpoint answered with a JSON object. The action is unknown to the
// endpoint, so a domain failure still counts as reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	body, err := json.Marshal(request{"action": "ping"})
	if err != nil {
		return err
	}
	_, err = c.post(ctx, body)
	return err
}
