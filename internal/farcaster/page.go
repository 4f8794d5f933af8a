package farcaster

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Page renders the frame as an HTML document whose meta tags describe it.
func Page(f Frame) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text(f.Title)),
				h.Meta(g.Attr("property", "og:title"), h.Content(f.Title)),
				h.Meta(g.Attr("property", "og:image"), h.Content(f.Image)),
				g.Group(Meta(f)),
			),
			h.Body(h.H1(g.Text(f.Title))),
		),
	)
}

// Meta returns the fc:frame meta tags of f in protocol order.
func Meta(f Frame) []g.Node {
	aspect := f.AspectRatio
	if aspect == "" {
		aspect = AspectWide
	}

	nodes := []g.Node{
		meta("fc:frame", Version),
		meta("fc:frame:image", f.Image),
		meta("fc:frame:image:aspect_ratio", aspect),
	}
	if f.PostURL != "" {
		nodes = append(nodes, meta("fc:frame:post_url", f.PostURL))
	}
	if f.State != "" {
		nodes = append(nodes, meta("fc:frame:state", f.State))
	}

	for i, b := range f.Buttons {
		prefix := "fc:frame:button:" + strconv.Itoa(i+1)
		nodes = append(nodes, meta(prefix, b.Label))
		if b.Action != "" {
			nodes = append(nodes, meta(prefix+":action", string(b.Action)))
		}
		if b.Target != "" {
			nodes = append(nodes, meta(prefix+":target", b.Target))
		}
	}
	return nodes
}

func meta(property, content string) g.Node {
	return h.Meta(g.Attr("property", property), h.Content(content))
}
