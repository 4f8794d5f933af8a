package upstream

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/statframes/internal/metrics"
)

// Upstream names used in logs and metrics.
const (
	NameAirstack = "airstack"
	NameProfile  = "profile"
	NameStats    = "stats"
)

// maxBodyBytes bounds how much of an upstream body is read into memory.
const maxBodyBytes = 1 << 20

// NewHTTPClient returns the client shared by every upstream caller.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// do sends req and returns the body of a 2xx response. Every call is counted in
// the upstream metrics, whatever its outcome.
func do(ctx context.Context, client *http.Client, name string, req *http.Request) ([]byte, error) {
	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.ObserveUpstream(name, outcome, time.Since(start))
	}()

	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = "status"
		return nil, &StatusError{Upstream: name, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s read body: %w", name, err)
	}

	outcome = "ok"
	slog.DebugContext(ctx, "upstream request completed",
		"upstream", name,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return body, nil
}
