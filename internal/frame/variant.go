package frame

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nfrund/statframes/internal/domain"
)

// TileKind selects how a tile derives its value from the stats counters.
type TileKind string

const (
	// TileCounter shows Stats[Key] as a grouped integer.
	TileCounter TileKind = "counter"
	// TileRatio shows Stats[Left] / Stats[Right] with two decimals.
	TileRatio TileKind = "ratio"
	// TileDifference shows Stats[Left] - Stats[Right] with two decimals.
	TileDifference TileKind = "difference"
)

// Tile is one labelled number on the score image.
type Tile struct {
	Label  string   `yaml:"label"`
	Kind   TileKind `yaml:"kind"`
	Key    string   `yaml:"key,omitempty"`
	Left   string   `yaml:"left,omitempty"`
	Right  string   `yaml:"right,omitempty"`
	Suffix string   `yaml:"suffix,omitempty"`
}

// Value computes the display string of the tile for the given stats.
func (t Tile) Value(stats domain.Stats) string {
	var v string
	switch t.Kind {
	case TileRatio:
		v = Ratio(stats.Get(t.Left), stats.Get(t.Right))
	case TileDifference:
		v = Difference(stats.Get(t.Left), stats.Get(t.Right))
	default:
		v = FormatInt(stats.Get(t.Key))
	}
	return v + t.Suffix
}

// ResetKind selects the countdown shown on the score image.
type ResetKind string

const (
	ResetWeekly   ResetKind = "weekly"
	ResetMidnight ResetKind = "midnight"
)

// ResetRule describes when the upstream allowance resets.
type ResetRule struct {
	Kind    ResetKind    `yaml:"kind"`
	Weekday time.Weekday `yaml:"weekday"`
	Hour    int          `yaml:"hour"`
}

// Countdown computes the time left until the next reset.
func (r ResetRule) Countdown(now time.Time) Countdown {
	if r.Kind == ResetWeekly {
		return UntilWeekly(now, r.Weekday, r.Hour)
	}
	return UntilMidnight(now)
}

// Format renders the countdown in the granularity of the rule.
func (r ResetRule) Format(c Countdown) string {
	if r.Kind == ResetWeekly {
		return c.Long()
	}
	return c.Short()
}

// MaxTiles is the number of stat tiles the score image has room for.
const MaxTiles = 6

// Variant configures one deployment of the frame: its look, its copy, the
// stats endpoints it queries and the tiles it shows.
type Variant struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Tagline     string `yaml:"tagline"`
	Heading     string `yaml:"heading"`
	Credit      string `yaml:"credit"`
	SplashImage string `yaml:"splash_image"`
	Background  string `yaml:"background"`
	Foreground  string `yaml:"foreground"`
	Accent      string `yaml:"accent"`

	// ShareText is the compose text of the Share button. ShareURL is the
	// frame URL embedded in the cast; it defaults to the variant's own route.
	ShareText string `yaml:"share_text"`
	ShareURL  string `yaml:"share_url,omitempty"`

	CheckLabel string `yaml:"check_label"`
	StatsLabel string `yaml:"stats_label"`
	ShareLabel string `yaml:"share_label"`

	// Endpoints are stats URL templates; {fid} is replaced by the user's fid.
	Endpoints []string  `yaml:"endpoints"`
	Tiles     []Tile    `yaml:"tiles"`
	Reset     ResetRule `yaml:"reset"`
}

// withDefaults fills the optional copy and colours.
func (v Variant) withDefaults() Variant {
	if v.Title == "" {
		v.Title = v.Name
	}
	if v.Heading == "" {
		v.Heading = strings.ToUpper(v.Title) + " STATS"
	}
	if v.Background == "" {
		v.Background = "#B4D4FF"
	}
	if v.Foreground == "" {
		v.Foreground = "#1E40AF"
	}
	if v.Accent == "" {
		v.Accent = "#FF2D00"
	}
	if v.CheckLabel == "" {
		v.CheckLabel = "Check Status"
	}
	if v.StatsLabel == "" {
		v.StatsLabel = "My Stats"
	}
	if v.ShareLabel == "" {
		v.ShareLabel = "Share"
	}
	if v.Reset.Kind == "" {
		v.Reset.Kind = ResetMidnight
	}
	return v
}

// Validate reports configuration mistakes that would break rendering.
func (v Variant) Validate() error {
	var errs []error
	if v.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if strings.ContainsAny(v.Name, "/?#") {
		errs = append(errs, fmt.Errorf("name %q must be a single path segment", v.Name))
	}
	if v.Name == "preview" || v.Name == "image" {
		errs = append(errs, fmt.Errorf("name %q is reserved", v.Name))
	}
	if v.Reset.Kind != ResetWeekly && v.Reset.Kind != ResetMidnight {
		errs = append(errs, fmt.Errorf("unknown reset kind %q", v.Reset.Kind))
	}
	if v.Reset.Hour < 0 || v.Reset.Hour > 23 {
		errs = append(errs, fmt.Errorf("reset hour %d out of range", v.Reset.Hour))
	}
	if len(v.Tiles) > MaxTiles {
		errs = append(errs, fmt.Errorf("at most %d tiles fit the image, got %d", MaxTiles, len(v.Tiles)))
	}
	for i, t := range v.Tiles {
		switch t.Kind {
		case TileCounter:
			if t.Key == "" {
				errs = append(errs, fmt.Errorf("tile %d: counter needs a key", i))
			}
		case TileRatio, TileDifference:
			if t.Left == "" || t.Right == "" {
				errs = append(errs, fmt.Errorf("tile %d: %s needs left and right", i, t.Kind))
			}
		default:
			errs = append(errs, fmt.Errorf("tile %d: unknown kind %q", i, t.Kind))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("variant %q: %w", v.Name, err)
	}
	return nil
}

// Masks is the built-in variant for the Masks tipping token.
func Masks() Variant {
	return Variant{
		Name:        "masks",
		Title:       "Masks Stats",
		Tagline:     "Check Your Masks Stats",
		Heading:     "🎭 MASKS STATS 🎭",
		Credit:      "Frame created by @blacknoys",
		SplashImage: "https://clipart.info/images/ccovers/1484942358ios-emoji-performing-arts.png",
		ShareText:   "Check your Masks stats here 🎭! if you like this frame, share and follow @blacknoys",
		Endpoints: []string{
			"https://app.masks.wtf/api/balance?fid={fid}",
			"https://app.masks.wtf/api/rank?fid={fid}",
			"https://app.masks.wtf/api/masksPerTip",
		},
		Tiles: []Tile{
			{Label: "Weekly Allowance", Kind: TileCounter, Key: "weeklyAllowance"},
			{Label: "Remaining Allowance", Kind: TileCounter, Key: "remainingAllowance"},
			{Label: "Points", Kind: TileCounter, Key: "masks"},
			{Label: "Tips of the Week", Kind: TileCounter, Key: "masksPerTip"},
			{Label: "Remaining Tipped", Kind: TileRatio, Left: "remainingAllowance", Right: "masksPerTip", Suffix: "x"},
			{Label: "Tipped", Kind: TileDifference, Left: "weeklyAllowance", Right: "remainingAllowance"},
		},
		Reset: ResetRule{Kind: ResetWeekly, Weekday: time.Monday, Hour: 10},
	}.withDefaults()
}
