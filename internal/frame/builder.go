package frame

import (
	"context"
	"time"

	"github.com/nfrund/statframes/internal/domain"
	"github.com/nfrund/statframes/internal/middleware"
	"github.com/sourcegraph/conc"
)

// Builder turns a resolved fid into a View by fetching the profile and every
// stats endpoint of the variant concurrently.
type Builder struct {
	profiles domain.ProfileFetcher
	stats    domain.StatsFetcher
	now      func() time.Time
}

// NewBuilder creates a Builder over the given upstream fetchers.
func NewBuilder(profiles domain.ProfileFetcher, stats domain.StatsFetcher) *Builder {
	return &Builder{
		profiles: profiles,
		stats:    stats,
		now:      time.Now,
	}
}

// WithClock returns a copy of b that reads the current instant from now.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	cp := *b
	cp.now = now
	return &cp
}

// ShouldFetch reports whether fid needs fetching given a previously fetched
// profile, which may be nil.
func ShouldFetch(fid string, prev *domain.Profile) bool {
	return fid != "" && (prev == nil || prev.FID != fid)
}

// Build assembles the View for fid. It never fails: each fetch error is
// logged and leaves its half of the view at the defaults. When prev already
// holds fid's profile nothing is fetched and prev is reused.
func (b *Builder) Build(ctx context.Context, variant Variant, fid string, prev *domain.Profile) View {
	now := b.now().UTC()
	view := View{
		Variant: variant,
		FID:     fid,
		Profile: domain.EmptyProfile(),
		Stats:   domain.Stats{},
		Now:     now,
		Reset:   variant.Reset.Countdown(now),
	}

	if !ShouldFetch(fid, prev) {
		if fid != "" && prev != nil {
			view.Profile = *prev
			view.ProfileOK = true
		}
		return view
	}

	logger := middleware.FromContext(ctx).With("fid", fid, "variant", variant.Name)

	var (
		wg         conc.WaitGroup
		profile    domain.Profile
		profileErr error
		stats      = make([]domain.Stats, len(variant.Endpoints))
		statsErrs  = make([]error, len(variant.Endpoints))
	)

	wg.Go(func() {
		profile, profileErr = b.profiles.FetchProfile(ctx, fid)
	})
	for i, endpoint := range variant.Endpoints {
		wg.Go(func() {
			stats[i], statsErrs[i] = b.stats.FetchStats(ctx, endpoint, fid)
		})
	}
	wg.Wait()

	if profileErr != nil {
		logger.Warn("Error fetching profile", "error", profileErr)
	} else {
		view.Profile = profile
		view.ProfileOK = true
	}

	merged := domain.Stats{}
	for i, err := range statsErrs {
		if err != nil {
			logger.Warn("Error fetching stats", "endpoint", variant.Endpoints[i], "error", err)
			view.StatsFailed++
			continue
		}
		merged = merged.Merge(stats[i])
	}
	view.Stats = merged

	logger.Debug("Frame data fetched",
		"profile_ok", view.ProfileOK,
		"stats_failed", view.StatsFailed,
		"state", view.State(),
	)
	return view
}
