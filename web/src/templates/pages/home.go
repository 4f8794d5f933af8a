package pages

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// HomeContent is the landing page: a short description and a form that
// previews any variant for a fid without a Farcaster client.
func HomeContent(variants []string, selected string) g.Node {
	return g.Group{
		h.H1(g.Text("Stat Frames")),
		h.P(g.Text("Farcaster frames that show a user's token stats. Paste a frame URL into a cast, or preview one below.")),
		h.Form(
			hx.Get("/frames/preview"),
			hx.Target("#preview"),
			hx.Indicator("#loading"),
			h.Input(
				h.Type("text"),
				h.Name("userfid"),
				h.Placeholder("fid, e.g. 3"),
				h.Required(),
				g.Attr("inputmode", "numeric"),
			),
			h.Select(
				h.Name("variant"),
				g.Map(variants, func(name string) g.Node {
					return h.Option(h.Value(name), g.If(name == selected, h.Selected()), g.Text(name))
				}),
			),
			h.Button(h.Type("submit"), g.Text("Preview")),
			h.Span(h.ID("loading"), h.Class("htmx-indicator"), g.Text("Loading...")),
		),
		h.Div(h.ID("preview"), h.Class("preview")),
	}
}
