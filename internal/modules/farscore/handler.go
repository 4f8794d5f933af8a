package farscore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/statframes/internal/handlers"
	"github.com/nfrund/statframes/internal/middleware"
	"github.com/nfrund/statframes/internal/upstream"
)

// SocialsQuerier runs the Airstack Socials query for one user id.
type SocialsQuerier interface {
	QuerySocials(ctx context.Context, userID string) (json.RawMessage, error)
}

// Response is the body of a successful lookup.
type Response struct {
	UserData json.RawMessage `json:"userData"`
}

// Handler proxies profile lookups to Airstack so the API key stays server side.
type Handler struct {
	airstack SocialsQuerier
}

// NewHandler creates a new farscore Handler.
func NewHandler(airstack SocialsQuerier) *Handler {
	return &Handler{airstack: airstack}
}

// Get handles GET /api/farscore?userId=.
func (h *Handler) Get(c echo.Context) error {
	var req handlers.FarscoreRequest
	if err := c.Bind(&req); err != nil || req.UserID == "" {
		return handlers.JSONError(c, http.StatusBadRequest, "userId parameter is required")
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx).With("user_id", req.UserID)

	data, err := h.airstack.QuerySocials(ctx, req.UserID)
	if err != nil {
		var qerr *upstream.QueryError
		if errors.As(err, &qerr) {
			logger.Error("Airstack API error", "error", qerr.Message)
			return handlers.JSONError(c, http.StatusInternalServerError, qerr.Message)
		}
		logger.Error("Unexpected error querying Airstack", "error", err)
		return handlers.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}

	logger.Debug("Profile lookup served")
	return c.JSON(http.StatusOK, Response{UserData: data})
}
