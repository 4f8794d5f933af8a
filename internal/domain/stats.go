package domain

import "context"

// Stats is a flat set of named counters reported by a stats endpoint.
// Values keep the textual form the upstream used ("1200", "0.5").
type Stats map[string]string

// Get returns the counter or "" when it is missing. It is safe on a nil Stats.
func (s Stats) Get(key string) string {
	if s == nil {
		return ""
	}
	return s[key]
}

// Merge returns a new Stats holding s overlaid with other.
func (s Stats) Merge(other Stats) Stats {
	out := make(Stats, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// StatsFetcher fetches the counters exposed by one stats endpoint for a fid.
// endpoint is a URL template that may contain a {fid} placeholder.
type StatsFetcher interface {
	FetchStats(ctx context.Context, endpoint, fid string) (Stats, error)
}
