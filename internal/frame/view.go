package frame

import (
	"time"

	"github.com/nfrund/statframes/internal/domain"
)

// TemplateState selects which image a frame shows.
type TemplateState string

const (
	// StatePlaceholder is the splash image shown without a fid or profile.
	StatePlaceholder TemplateState = "placeholder"
	// StatePopulated is the score image shown once the profile is resolved.
	StatePopulated TemplateState = "populated"
)

// View is the immutable result of one request's fetch step. Every field is
// safe to render: a failed fetch leaves placeholders, never nils.
type View struct {
	Variant Variant
	FID     string

	Profile   domain.Profile
	ProfileOK bool

	// Stats merges the counters of every endpoint that answered.
	Stats domain.Stats
	// StatsFailed counts endpoints whose fetch failed.
	StatsFailed int

	Now   time.Time
	Reset Countdown
}

// TileValue is a tile with its computed display string.
type TileValue struct {
	Label string
	Value string
}

// State applies the template policy: Populated iff a fid was resolved and
// its profile was fetched. Stats failures only zero the counters.
func (v View) State() TemplateState {
	if v.FID != "" && v.ProfileOK {
		return StatePopulated
	}
	return StatePlaceholder
}

// Degraded reports whether any fetch failed.
func (v View) Degraded() bool {
	return v.FID != "" && (!v.ProfileOK || v.StatsFailed > 0)
}

// Tiles computes the display values of the variant's tiles.
func (v View) Tiles() []TileValue {
	out := make([]TileValue, 0, len(v.Variant.Tiles))
	for _, t := range v.Variant.Tiles {
		out = append(out, TileValue{Label: t.Label, Value: t.Value(v.Stats)})
	}
	return out
}

// Counter returns a raw counter formatted as a grouped integer.
func (v View) Counter(key string) string {
	return FormatInt(v.Stats.Get(key))
}

// Rank returns the user's rank or "-" when the upstream did not report one.
func (v View) Rank() string {
	if r := v.Stats.Get("rank"); r != "" {
		return r
	}
	return "-"
}

// ResetText renders the countdown in the variant's granularity.
func (v View) ResetText() string {
	return v.Variant.Reset.Format(v.Reset)
}

// Stamp renders the footer timestamp.
func (v View) Stamp() string {
	return UTCStamp(v.Now)
}
