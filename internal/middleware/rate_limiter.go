package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimiter limits requests per client IP to perSecond, with a burst of the
// same size. It guards the routes that call paid upstream APIs. Requests for
// which skip returns true are not counted; a nil skip counts everything.
func RateLimiter(perSecond float64, skip middleware.Skipper) echo.MiddlewareFunc {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	if skip == nil {
		skip = middleware.DefaultSkipper
	}
	config := middleware.RateLimiterConfig{
		Skipper: skip,
		// NewRateLimiterMemoryStore is a simple in-memory store suitable for single-instance deployments.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(perSecond),
			Burst: burst,
		}),

		// We identify clients by their real IP address.
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many requests. Please try again later."})
		},
	}
	return middleware.RateLimiterWithConfig(config)
}

// SkipWithToken matches requests whose header carries token. An empty token
// matches nothing.
func SkipWithToken(header, token string) middleware.Skipper {
	return func(c echo.Context) bool {
		if token == "" {
			return false
		}
		got := c.Request().Header.Get(header)
		return subtle.ConstantTimeCompare([]byte(got), []byte(token)) == 1
	}
}
