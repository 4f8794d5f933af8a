package frames

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/nfrund/statframes/internal/domain"
	"github.com/nfrund/statframes/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testView() frame.View {
	v := frame.Masks()
	now := time.Date(2024, 3, 6, 12, 30, 0, 0, time.UTC)
	return frame.View{
		Variant:   v,
		FID:       "3",
		Profile:   domain.Profile{FID: "3", DisplayName: "Dan <Romero>", Handle: "dwr", AvatarURL: "https://img.example/dwr.png"},
		ProfileOK: true,
		Stats:     domain.Stats{"masks": "1234567", "rank": "7"},
		Now:       now,
		Reset:     v.Reset.Countdown(now),
	}
}

func TestImageSelectsTemplate(t *testing.T) {
	t.Run("populated view renders the score", func(t *testing.T) {
		out, err := Render(testView())
		require.NoError(t, err)

		svg := string(out)
		assert.True(t, strings.HasPrefix(svg, "<svg"))
		assert.Contains(t, svg, "Dan &lt;Romero&gt;")
		assert.Contains(t, svg, "@dwr")
		assert.Contains(t, svg, "FID: 3")
		assert.Contains(t, svg, "Rank: 7")
		assert.Contains(t, svg, "1,234,567")
		assert.Contains(t, svg, "Reset Time")
		assert.Contains(t, svg, "06-03-2024, 12:30:00 UTC")
	})

	t.Run("placeholder view renders the splash", func(t *testing.T) {
		v := testView()
		v.ProfileOK = false

		out, err := Render(v)
		require.NoError(t, err)

		svg := string(out)
		assert.Contains(t, svg, v.Variant.Tagline)
		assert.NotContains(t, svg, "Reset Time")
	})
}

func TestDataURI(t *testing.T) {
	uri := DataURI([]byte("<svg/>"))

	require.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(raw))
}
