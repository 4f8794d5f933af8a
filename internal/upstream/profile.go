package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/nfrund/statframes/internal/domain"
	"github.com/tidwall/gjson"
)

// HeaderInternal carries the InternalToken on calls the server makes to itself.
const HeaderInternal = "X-Statframes-Internal"

// InternalToken identifies the server's own requests to its routes, so that
// per-client limits meant for outside callers do not apply to them.
type InternalToken string

// NewInternalToken returns a random token, valid for the life of the process.
func NewInternalToken() InternalToken {
	return InternalToken(uuid.NewString())
}

// ProfileClient reads profiles from the application's own /api/farscore route.
type ProfileClient struct {
	httpClient *http.Client
	baseURL    string
	token      InternalToken
}

// NewProfileClient creates a ProfileClient rooted at the application URL.
// An empty token sends plain requests.
func NewProfileClient(httpClient *http.Client, appURL string, token InternalToken) *ProfileClient {
	return &ProfileClient{
		httpClient: httpClient,
		baseURL:    appURL,
		token:      token,
	}
}

// FetchProfile implements domain.ProfileFetcher.
func (c *ProfileClient) FetchProfile(ctx context.Context, fid string) (domain.Profile, error) {
	reqURL := c.baseURL + "/api/farscore?userId=" + url.QueryEscape(fid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("build profile request: %w", err)
	}
	if c.token != "" {
		req.Header.Set(HeaderInternal, string(c.token))
	}

	body, err := do(ctx, c.httpClient, NameProfile, req)
	if err != nil {
		return domain.Profile{}, err
	}
	if !gjson.ValidBytes(body) {
		return domain.Profile{}, fmt.Errorf("profile: %w", domain.ErrMalformed)
	}

	social := gjson.GetBytes(body, "userData.Socials.Social.0")
	if !social.Exists() || !social.IsObject() {
		return domain.Profile{}, fmt.Errorf("profile for fid %s: %w", fid, domain.ErrNotFound)
	}
	return ProfileFromSocial(social), nil
}

// ProfileFromSocial maps one Airstack Social record, degrading every missing
// field to its placeholder.
func ProfileFromSocial(social gjson.Result) domain.Profile {
	name := social.Get("profileName").String()
	display := social.Get("profileDisplayName").String()

	p := domain.EmptyProfile()
	if id := social.Get("userId").String(); id != "" {
		p.FID = id
	}
	switch {
	case display != "":
		p.DisplayName = display
	case name != "":
		p.DisplayName = name
	}
	if name != "" {
		p.Handle = name
	}
	p.AvatarURL = firstNonEmpty(
		social.Get("profileImageContentValue.image.extraSmall").String(),
		social.Get("profileImage").String(),
	)
	return p
}

// IsNotFound reports whether err means the profile does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
