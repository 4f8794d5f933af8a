package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// socialsQuery selects the Farcaster social record of one user id.
const socialsQuery = `
query GetUserSocial($userId: String!) {
  Socials(
    input: {filter: {userId: {_eq: $userId}}, blockchain: ethereum}
  ) {
    Social {
      userId
      profileName
      profileDisplayName
      profileImage
      profileImageContentValue {
        image {
          extraSmall
        }
      }
    }
  }
}
`

// AirstackClient queries the Airstack GraphQL API.
type AirstackClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewAirstackClient creates an AirstackClient for the given endpoint and key.
func NewAirstackClient(httpClient *http.Client, endpoint, apiKey string) *AirstackClient {
	return &AirstackClient{
		httpClient: httpClient,
		endpoint:   endpoint,
		apiKey:     apiKey,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// QuerySocials returns the raw `data` object of the Socials query for userID.
// GraphQL-level errors are returned as errors even on HTTP 200.
func (c *AirstackClient) QuerySocials(ctx context.Context, userID string) (json.RawMessage, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query:     socialsQuery,
		Variables: map[string]any{"userId": userID},
	})
	if err != nil {
		return nil, fmt.Errorf("encode airstack query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build airstack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	body, err := do(ctx, c.httpClient, NameAirstack, req)
	if err != nil {
		return nil, err
	}

	if msg := gjson.GetBytes(body, "errors.0.message"); msg.Exists() {
		return nil, &QueryError{Message: msg.String()}
	}

	data := gjson.GetBytes(body, "data")
	if !data.Exists() || !data.IsObject() {
		return nil, fmt.Errorf("airstack: %w", errMissingData)
	}
	return json.RawMessage(data.Raw), nil
}
