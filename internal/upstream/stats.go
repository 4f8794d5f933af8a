package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nfrund/statframes/internal/domain"
	"github.com/tidwall/gjson"
)

// FIDPlaceholder is substituted with the fid in stats endpoint templates.
const FIDPlaceholder = "{fid}"

// StatsClient reads flat counter objects from third-party stats endpoints.
type StatsClient struct {
	httpClient *http.Client
}

// NewStatsClient creates a StatsClient.
func NewStatsClient(httpClient *http.Client) *StatsClient {
	return &StatsClient{httpClient: httpClient}
}

// FetchStats implements domain.StatsFetcher. Only string and number members of
// the top-level object are kept; anything else is ignored.
func (c *StatsClient) FetchStats(ctx context.Context, endpoint, fid string) (domain.Stats, error) {
	reqURL := ExpandEndpoint(endpoint, fid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build stats request: %w", err)
	}

	body, err := do(ctx, c.httpClient, NameStats, req)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("stats %s: %w", reqURL, domain.ErrMalformed)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("stats %s: not an object: %w", reqURL, domain.ErrMalformed)
	}

	stats := make(domain.Stats)
	root.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.String:
			stats[key.String()] = value.Str
		case gjson.Number:
			stats[key.String()] = value.Raw
		}
		return true
	})
	return stats, nil
}

// ExpandEndpoint substitutes the fid into an endpoint template.
func ExpandEndpoint(endpoint, fid string) string {
	return strings.ReplaceAll(endpoint, FIDPlaceholder, url.PathEscape(fid))
}
