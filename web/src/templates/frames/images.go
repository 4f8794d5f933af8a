// Package frames renders the frame images as SVG documents.
package frames

import (
	"bytes"
	"encoding/base64"

	"github.com/nfrund/statframes/internal/frame"
	g "maragu.dev/gomponents"
)

// ContentType is the media type of the rendered images.
const ContentType = "image/svg+xml"

// Image selects the image for the view's template state.
func Image(v frame.View) g.Node {
	if v.State() == frame.StatePopulated {
		return Score(v)
	}
	return Splash(v.Variant)
}

// Splash is the placeholder image shown before a fid is resolved.
func Splash(variant frame.Variant) g.Node {
	return svg(
		rect(0, 0, Width, Height, g.Attr("fill", variant.Background)),
		g.If(variant.SplashImage != "",
			image(variant.SplashImage, Width/2-72, 110, 144, 144),
		),
		text(Width/2, 340, 64, "middle", variant.Foreground, variant.Tagline),
		text(Width/2, 460, 48, "middle", variant.Foreground, variant.Credit),
	)
}

// Score is the populated image with the user's profile and stats.
func Score(v frame.View) g.Node {
	variant := v.Variant
	return svg(
		g.El("defs",
			g.El("clipPath", g.Attr("id", "avatar"),
				g.El("circle", g.Attr("cx", "80"), g.Attr("cy", "80"), g.Attr("r", "40")),
			),
		),
		rect(0, 0, Width, Height, g.Attr("fill", variant.Background)),

		g.If(v.Profile.AvatarURL != "",
			image(v.Profile.AvatarURL, 40, 40, 80, 80, g.Attr("clip-path", "url(#avatar)")),
		),
		text(136, 78, 40, "start", variant.Foreground, v.Profile.DisplayName),
		text(136, 112, 24, "start", variant.Foreground, "@"+v.Profile.Handle),
		text(Width-40, 72, 26, "end", variant.Foreground, "FID: "+v.FID),
		text(Width-40, 108, 26, "end", variant.Foreground, "Rank: "+v.Rank()),

		text(Width/2, 172, 36, "middle", variant.Foreground, variant.Heading, g.Attr("font-weight", "bold")),
		tiles(v),

		rect(40, 430, Width-80, 92, g.Attr("rx", "12"), g.Attr("fill", "#FFFFFF"), g.Attr("fill-opacity", "0.9")),
		text(Width/2, 466, 28, "middle", variant.Foreground, "Reset Time"),
		text(Width/2, 506, 32, "middle", "#000000", v.ResetText()),

		text(40, 570, 22, "start", variant.Foreground, v.Stamp()),
		text(Width-40, 570, 22, "end", variant.Foreground, variant.Credit),
	)
}

const (
	tileCols   = 3
	tileGap    = 20
	tileTop    = 196
	tileHeight = 100
	tileWidth  = (Width - 80 - (tileCols-1)*tileGap) / tileCols
)

func tiles(v frame.View) g.Node {
	values := v.Tiles()
	nodes := make([]g.Node, 0, len(values))
	for i, t := range values {
		x := 40 + (i%tileCols)*(tileWidth+tileGap)
		y := tileTop + (i/tileCols)*(tileHeight+tileGap/2)
		nodes = append(nodes, g.El("g",
			rect(x, y, tileWidth, tileHeight,
				g.Attr("rx", "12"),
				g.Attr("fill", "#FFFFFF"),
				g.Attr("fill-opacity", "0.9"),
				g.Attr("stroke", v.Variant.Foreground),
				g.Attr("stroke-width", "4"),
			),
			text(x+tileWidth/2, y+38, 26, "middle", v.Variant.Foreground, t.Label),
			text(x+tileWidth/2, y+80, 36, "middle", v.Variant.Accent, t.Value),
		))
	}
	return g.Group(nodes)
}

// Render writes the image of v as an SVG document.
func Render(v frame.View) ([]byte, error) {
	var buf bytes.Buffer
	if err := Image(v).Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURI encodes a rendered image for fc:frame:image.
func DataURI(svg []byte) string {
	return "data:" + ContentType + ";base64," + base64.StdEncoding.EncodeToString(svg)
}
