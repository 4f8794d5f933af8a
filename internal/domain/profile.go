package domain

import "context"

// Placeholder values used whenever the profile service omits a field.
const (
	UnknownName   = "Unknown"
	UnknownHandle = "unknown"
	UnknownFID    = "N/A"
)

// Profile is the social profile of a Farcaster user, already degraded to
// placeholder values so it can be rendered without nil checks.
type Profile struct {
	FID         string `json:"fid"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
	AvatarURL   string `json:"avatarUrl"`
}

// EmptyProfile returns a Profile made only of placeholders.
func EmptyProfile() Profile {
	return Profile{
		FID:         UnknownFID,
		DisplayName: UnknownName,
		Handle:      UnknownHandle,
	}
}

// ProfileFetcher looks up the profile of a single fid.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, fid string) (Profile, error)
}
