package layouts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Preview - Stat Frames", CalculateTitle("Preview"))
	assert.Equal(t, "Stat Frames", CalculateTitle(""))
}

func TestBase(t *testing.T) {
	var buf bytes.Buffer
	err := Base("Home", []g.Node{h.Meta(h.Name("extra"))}, h.P(g.Text("hello"))).Render(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "<title>Home - Stat Frames</title>")
	assert.Contains(t, out, `<meta name="extra">`)
	assert.Contains(t, out, "<main><p>hello</p></main>")
}
