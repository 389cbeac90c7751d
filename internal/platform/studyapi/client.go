package studyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/phrazzld/studyaid/internal/config"
	"github.com/phrazzld/studyaid/internal/platform/logger"
	"github.com/phrazzld/studyaid/internal/redact"
)

const (
	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes = 4 << 20

	// RequestIDHeader carries the per-call correlation id.
	RequestIDHeader = "X-Request-ID"

	snippetRunes = 200
)

var (
	// ErrInvalidBaseURL is returned by NewClient for an unusable base URL.
	ErrInvalidBaseURL = errors.New("invalid study service base URL")

	// ErrUnhealthy is returned by Ping when the service answers but does not
	// report itself healthy.
	ErrUnhealthy = errors.New("study service unhealthy")

	errBodyTooLarge  = fmt.Errorf("response body exceeds %d bytes", MaxBodyBytes)
	errMissingResult = errors.New(`response has no "result" field`)
)

// Client is an HTTP client for the study service. It is safe for concurrent
// use and holds no per-call state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client for the configured service. The transport is a
// pooled cleanhttp client with the configured timeout and no retry policy.
func NewClient(cfg config.ServiceConfig, log *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, redact.String(cfg.BaseURL))
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = cfg.Timeout

	return &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		httpClient: httpClient,
		logger:     logger.OrDiscard(log).With("component", "studyapi_client"),
	}, nil
}

// reply is a fully read response.
type reply struct {
	requestID string
	status    int
	body      []byte
	duration  time.Duration
}

func (r *reply) ok() bool {
	return r.status >= 200 && r.status < 300
}

// transportError marks a failure where no complete response was received.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// do performs one exchange. A *transportError means no complete response
// was received; errBodyTooLarge means one arrived but was cut off. The
// returned reply is never nil.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*reply, error) {
	rep := &reply{requestID: newRequestID()}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return rep, &transportError{err: fmt.Errorf("failed to encode request: %w", err)}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return rep, &transportError{err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, rep.requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		rep.duration = time.Since(start)
		return rep, &transportError{err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rep.status = resp.StatusCode
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	rep.duration = time.Since(start)
	if err != nil {
		return rep, &transportError{err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if len(data) > MaxBodyBytes {
		return rep, errBodyTooLarge
	}
	rep.body = data
	return rep, nil
}

// serviceDetail extracts the {"detail": ...} message the service attaches to
// failure responses, falling back to the status text. The result is redacted.
func serviceDetail(rep *reply) error {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	msg := http.StatusText(rep.status)
	if err := json.Unmarshal(rep.body, &payload); err == nil && len(payload.Detail) > 0 {
		var text string
		if json.Unmarshal(payload.Detail, &text) == nil {
			msg = text
		} else {
			msg = string(payload.Detail)
		}
	} else if len(bytes.TrimSpace(rep.body)) > 0 {
		msg = string(rep.body)
	}
	return errors.New(redact.Snippet(msg, snippetRunes))
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
