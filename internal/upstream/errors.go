package upstream

import (
	"fmt"

	"github.com/nfrund/statframes/internal/domain"
)

var errMissingData = fmt.Errorf("response has no data: %w", domain.ErrMalformed)

// StatusError reports a non-success HTTP status from an upstream service.
type StatusError struct {
	Upstream   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected HTTP status %d", e.Upstream, e.StatusCode)
}

// QueryError is a GraphQL error reported in the body of a successful response.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string {
	return "airstack: " + e.Message
}
