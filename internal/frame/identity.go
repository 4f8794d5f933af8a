package frame

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// FIDParam is the query parameter carrying a fid in frame URLs.
const FIDParam = "userfid"

var validate = validator.New()

// State is the frame state carried between requests.
type State struct {
	LastFID string `json:"lastFid,omitempty"`
}

// Encode serializes the state for fc:frame:state.
func (s State) Encode() string {
	if s.LastFID == "" {
		return ""
	}
	b, _ := json.Marshal(s)
	return string(b)
}

// DecodeState parses a frame state string. Anything unreadable is an empty state.
func DecodeState(raw string) State {
	var s State
	if raw == "" {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		slog.Debug("Ignoring unreadable frame state", "error", err)
		return State{}
	}
	return s
}

// Inputs are the places a request can carry the user's fid.
type Inputs struct {
	// RequesterFID comes from the frame message envelope; 0 when absent.
	RequesterFID uint64
	// URL is the request URL, possibly carrying ?userfid=.
	URL string
	// State is the raw frame state echoed back by the client.
	State string
	// SessionFID is the lastFid remembered in the cookie session.
	SessionFID string
}

// ValidFID reports whether s is a usable fid: a non-empty string of digits.
func ValidFID(s string) bool {
	return validate.Var(s, "required,number") == nil
}

// ResolveFID picks the fid in precedence order: requester, URL query, frame
// state, session. Invalid candidates are skipped. "" means no fid.
func ResolveFID(in Inputs) string {
	if in.RequesterFID != 0 {
		fid := strconv.FormatUint(in.RequesterFID, 10)
		slog.Debug("Using requester FID", "fid", fid)
		return fid
	}
	if fid := ExtractFID(in.URL); ValidFID(fid) {
		slog.Debug("Using FID from URL", "fid", fid)
		return fid
	}
	if fid := DecodeState(in.State).LastFID; ValidFID(fid) {
		slog.Debug("Using FID from frame state", "fid", fid)
		return fid
	}
	if ValidFID(in.SessionFID) {
		slog.Debug("Using FID from session", "fid", in.SessionFID)
		return in.SessionFID
	}
	return ""
}

// ExtractFID reads the userfid query parameter of rawURL. A malformed URL
// yields "".
func ExtractFID(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		slog.Debug("Error parsing URL", "url", rawURL, "error", err)
		return ""
	}
	return u.Query().Get(FIDParam)
}
