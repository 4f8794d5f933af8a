package frames

import (
	"strconv"

	g "maragu.dev/gomponents"
)

// Image dimensions for the 1.91:1 frame aspect ratio.
const (
	Width  = 1146
	Height = 600
)

func svg(children ...g.Node) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("xmlns:xlink", "http://www.w3.org/1999/xlink"),
		g.Attr("width", itoa(Width)),
		g.Attr("height", itoa(Height)),
		g.Attr("viewBox", "0 0 "+itoa(Width)+" "+itoa(Height)),
		g.Attr("font-family", "Baloo 2, Verdana, sans-serif"),
		g.Group(children),
	)
}

func rect(x, y, w, h int, attrs ...g.Node) g.Node {
	return g.El("rect",
		g.Attr("x", itoa(x)), g.Attr("y", itoa(y)),
		g.Attr("width", itoa(w)), g.Attr("height", itoa(h)),
		g.Group(attrs),
	)
}

// text draws a single line; anchor is start, middle or end.
func text(x, y, size int, anchor, fill, content string, attrs ...g.Node) g.Node {
	return g.El("text",
		g.Attr("x", itoa(x)), g.Attr("y", itoa(y)),
		g.Attr("font-size", itoa(size)),
		g.Attr("text-anchor", anchor),
		g.Attr("fill", fill),
		g.Group(attrs),
		g.Text(content),
	)
}

func image(href string, x, y, w, h int, attrs ...g.Node) g.Node {
	return g.El("image",
		g.Attr("href", href),
		g.Attr("x", itoa(x)), g.Attr("y", itoa(y)),
		g.Attr("width", itoa(w)), g.Attr("height", itoa(h)),
		g.Group(attrs),
	)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
