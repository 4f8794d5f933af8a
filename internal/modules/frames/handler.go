package frames

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/statframes/internal/farcaster"
	"github.com/nfrund/statframes/internal/frame"
	"github.com/nfrund/statframes/internal/handlers"
	"github.com/nfrund/statframes/internal/middleware"
	"github.com/nfrund/statframes/internal/modules/frames/events"
	"github.com/nfrund/statframes/internal/pubsub"
	"github.com/nfrund/statframes/internal/rendering"
	frametmpl "github.com/nfrund/statframes/web/src/templates/frames"
	"github.com/nfrund/statframes/web/src/templates/pages"
)

var errUnknownVariant = errors.New("unknown frame variant")

// Handler serves the frame routes of every catalog variant.
type Handler struct {
	catalog   *frame.Catalog
	builder   *frame.Builder
	renderer  rendering.Renderer
	publisher pubsub.Publisher
	appURL    string
}

// NewHandler creates a frames Handler. appURL is the public base URL used
// in post and share targets.
func NewHandler(catalog *frame.Catalog, builder *frame.Builder, renderer rendering.Renderer, publisher pubsub.Publisher, appURL string) *Handler {
	return &Handler{
		catalog:   catalog,
		builder:   builder,
		renderer:  renderer,
		publisher: publisher,
		appURL:    appURL,
	}
}

// Mount registers the frame routes on g. Static segments take precedence
// over :variant, which is why "preview" and "image" are reserved names.
func (h *Handler) Mount(g *echo.Group) {
	g.GET("/frames", h.Frame)
	g.POST("/frames", h.Frame)
	g.GET("/frames/preview", h.Preview)
	g.GET("/frames/image", h.Image)
	g.GET("/frames/:variant", h.Frame)
	g.POST("/frames/:variant", h.Frame)
	g.GET("/frames/:variant/image", h.Image)
}

// variant resolves the :variant path parameter, or the default variant when
// the route has none.
func (h *Handler) variant(name string) (frame.Variant, error) {
	if name == "" {
		return h.catalog.Default(), nil
	}
	v, ok := h.catalog.Get(name)
	if !ok {
		return frame.Variant{}, errUnknownVariant
	}
	return v, nil
}

// Frame handles GET and POST on the frame routes. Upstream failures never
// change the status: the caller always gets a 200 frame, degraded if need be.
func (h *Handler) Frame(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	variant, err := h.variant(c.Param("variant"))
	if err != nil {
		return handlers.JSONError(c, http.StatusNotFound, err.Error())
	}

	var msg *farcaster.Message
	if c.Request().Method == http.MethodPost {
		msg, err = farcaster.ParseMessage(c.Request().Body)
		if err != nil {
			logger.Warn("Ignoring unreadable frame message", "error", err)
		}
	}

	fid := frame.ResolveFID(frame.Inputs{
		RequesterFID: msg.RequesterFID(),
		URL:          c.Request().URL.String(),
		State:        msg.State(),
		SessionFID:   middleware.SessionFID(c),
	})

	view := h.builder.Build(ctx, variant, fid, nil)
	image, err := h.renderer.RenderComponent(ctx, frametmpl.Image(view))
	if err != nil {
		return err
	}

	f := frame.Respond(view, h.appURL, frametmpl.DataURI(image))
	if err := f.Validate(); err != nil {
		logger.Error("Frame does not satisfy the protocol", "variant", variant.Name, "error", err)
	}

	if fid != "" {
		if err := middleware.RememberFID(c, fid); err != nil {
			logger.Warn("Failed to remember fid", "error", err)
		}
	}
	h.publishRendered(c, view)

	return h.renderer.RenderPage(c, http.StatusOK, farcaster.Page(f))
}

// Preview renders the htmx preview fragment of the landing page.
func (h *Handler) Preview(c echo.Context) error {
	var req handlers.PreviewRequest
	if err := c.Bind(&req); err != nil {
		return h.renderer.RenderPage(c, http.StatusOK, pages.PreviewError("Invalid request."))
	}
	if err := c.Validate(&req); err != nil {
		return h.renderer.RenderPage(c, http.StatusOK, pages.PreviewError("Enter a numeric fid."))
	}

	variant, err := h.variant(req.Variant)
	if err != nil {
		return h.renderer.RenderPage(c, http.StatusOK, pages.PreviewError("Unknown variant "+req.Variant+"."))
	}

	ctx := c.Request().Context()
	view := h.builder.Build(ctx, variant, req.FID, nil)
	image, err := h.renderer.RenderComponent(ctx, frametmpl.Image(view))
	if err != nil {
		return err
	}
	h.publishRendered(c, view)

	return h.renderer.RenderPage(c, http.StatusOK, pages.Preview(pages.PreviewData{
		FID:      req.FID,
		Variant:  variant.Name,
		Frame:    frame.Respond(view, h.appURL, frametmpl.DataURI(image)),
		Degraded: view.Degraded(),
	}))
}

// Image returns the bare SVG image for ?userfid=, or the splash without one.
func (h *Handler) Image(c echo.Context) error {
	variant, err := h.variant(c.Param("variant"))
	if err != nil {
		return handlers.JSONError(c, http.StatusNotFound, err.Error())
	}

	fid := c.QueryParam(frame.FIDParam)
	if !frame.ValidFID(fid) {
		fid = ""
	}

	ctx := c.Request().Context()
	view := h.builder.Build(ctx, variant, fid, nil)
	image, err := h.renderer.RenderComponent(ctx, frametmpl.Image(view))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "max-age=0")
	return c.Blob(http.StatusOK, frametmpl.ContentType, image)
}

func (h *Handler) publishRendered(c echo.Context, view frame.View) {
	ctx := c.Request().Context()
	err := pubsub.Publish(ctx, h.publisher, events.TopicRendered, events.Rendered{
		Variant:  view.Variant.Name,
		FID:      view.FID,
		State:    string(view.State()),
		Degraded: view.Degraded(),
	}, map[string]string{
		pubsub.MetaRequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
	if err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish frame event", "error", err)
	}
}
