package frame

import (
	"net/url"
	"strings"

	"github.com/nfrund/statframes/internal/farcaster"
)

// composeURL is the Warpcast cast composer.
const composeURL = "https://warpcast.com/~/compose"

// FrameURL is the frame route of a variant, optionally pinned to a fid.
func FrameURL(appURL, variant, fid string) string {
	u := appURL + "/frames/" + url.PathEscape(variant)
	if fid != "" {
		u += "?" + FIDParam + "=" + url.QueryEscape(fid)
	}
	return u
}

// ShareURL builds the composer link of the Share button. The embedded frame
// carries the fid so viewers land on the sharer's stats.
func ShareURL(v Variant, appURL, fid string) string {
	embed := v.ShareURL
	if embed == "" {
		embed = appURL + "/frames/" + url.PathEscape(v.Name)
	}
	if fid != "" {
		embed = withFID(embed, fid)
	}
	text := strings.ReplaceAll(url.QueryEscape(v.ShareText), "+", "%20")
	return composeURL + "?text=" + text + "&embeds[]=" + url.QueryEscape(embed)
}

// withFID sets the fid parameter on raw, keeping any query it already has.
func withFID(raw, fid string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set(FIDParam, fid)
	u.RawQuery = q.Encode()
	return u.String()
}

// Buttons returns the button set for the view's template state.
func Buttons(v View, appURL string) []farcaster.Button {
	label := v.Variant.CheckLabel
	if v.State() == StatePopulated {
		label = v.Variant.StatsLabel
	}
	return []farcaster.Button{
		{Label: label, Action: farcaster.ActionPost, Target: FrameURL(appURL, v.Variant.Name, v.FID)},
		{Label: v.Variant.ShareLabel, Action: farcaster.ActionLink, Target: ShareURL(v.Variant, appURL, v.FID)},
	}
}

// Respond assembles the frame response for a view whose image has already
// been rendered to image (a URL or data URI).
func Respond(v View, appURL, image string) farcaster.Frame {
	return farcaster.Frame{
		Title:       v.Variant.Title,
		Image:       image,
		AspectRatio: farcaster.AspectWide,
		PostURL:     FrameURL(appURL, v.Variant.Name, ""),
		State:       State{LastFID: v.FID}.Encode(),
		Buttons:     Buttons(v, appURL),
	}
}
