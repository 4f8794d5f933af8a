package layouts

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// htmxSrc is the htmx build the landing page loads.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base is the document shell shared by the HTML pages. head is appended to
// the default head elements.
func Base(title string, head []g.Node, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
				h.Script(h.Src(htmxSrc), h.Defer()),
				g.Group(head),
			),
			h.Body(
				h.Main(body...),
			),
		),
	)
}
