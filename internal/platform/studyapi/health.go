package studyapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/studyaid/internal/store"
)

// Ping checks GET /health. It returns a store.ErrUnavailable error when the
// service cannot be reached and ErrUnhealthy when it answers without
// {"ok": true}.
func (c *Client) Ping(ctx context.Context) error {
	rep, err := c.do(ctx, http.MethodGet, "/health", nil)

	var tErr *transportError
	if errors.As(err, &tErr) {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, tErr.err)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	if !rep.ok() {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, rep.status)
	}

	var health struct {
		OK bool `json:"ok"`
	}
	if err := json.Unmarshal(rep.body, &health); err != nil || !health.OK {
		return fmt.Errorf("%w: unexpected body", ErrUnhealthy)
	}

	c.logger.DebugContext(ctx, "study service healthy",
		"request_id", rep.requestID,
		"duration_ms", rep.duration.Milliseconds())
	return nil
}
