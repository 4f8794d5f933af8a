package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/statframes/internal/frame"
	"github.com/nfrund/statframes/internal/view"
	"github.com/nfrund/statframes/web/src/templates/layouts"
	"github.com/nfrund/statframes/web/src/templates/pages"
)

// HomeHandler handles requests for the landing page.
type HomeHandler struct {
	catalog *frame.Catalog
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(catalog *frame.Catalog) *HomeHandler {
	return &HomeHandler{catalog: catalog}
}

// HomeGet renders the landing page with the preview form.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	content := pages.HomeContent(h.catalog.Names(), h.catalog.Default().Name)
	page := view.Component(layouts.Base("", nil, content))

	// The name parameter is ignored by the universal renderer.
	return c.Render(http.StatusOK, "", page)
}
