package pages

import (
	"github.com/nfrund/statframes/internal/farcaster"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PreviewData is what the preview fragment shows of one rendered frame.
type PreviewData struct {
	FID      string
	Variant  string
	Frame    farcaster.Frame
	Degraded bool
}

// Preview renders a frame the way a client would: its image and buttons.
func Preview(p PreviewData) g.Node {
	return h.Div(
		h.H2(g.Textf("%s for fid %s", p.Frame.Title, p.FID)),
		g.If(p.Degraded,
			h.P(h.Class("degraded"), g.Text("Some stats could not be fetched, showing what is available.")),
		),
		h.Img(h.Src(p.Frame.Image), h.Alt(p.Frame.Title)),
		h.Ul(
			g.Map(p.Frame.Buttons, func(b farcaster.Button) g.Node {
				if b.Action == farcaster.ActionLink {
					return h.Li(h.A(h.Href(b.Target), h.Target("_blank"), g.Text(b.Label)))
				}
				return h.Li(g.Text(b.Label))
			}),
		),
		h.P(h.Code(g.Text(p.Frame.PostURL))),
	)
}

// PreviewError replaces the preview when the request could not be served.
func PreviewError(msg string) g.Node {
	return h.Div(h.Class("error"), h.P(g.Text(msg)))
}
