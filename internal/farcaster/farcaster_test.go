package farcaster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	t.Run("decodes the untrusted data", func(t *testing.T) {
		body := `{"untrustedData":{"fid":2,"url":"https://frames.example/frames","buttonIndex":1,
			"state":"{\"lastFid\":\"9\"}","castId":{"fid":226,"hash":"0xa48d"}},
			"trustedData":{"messageBytes":"d2b1"}}`

		msg, err := ParseMessage(strings.NewReader(body))
		require.NoError(t, err)
		assert.Equal(t, uint64(2), msg.RequesterFID())
		assert.Equal(t, `{"lastFid":"9"}`, msg.State())
		assert.Equal(t, 1, msg.UntrustedData.ButtonIndex)
		assert.Equal(t, uint64(226), msg.UntrustedData.CastID.FID)
		assert.Equal(t, "d2b1", msg.TrustedData.MessageBytes)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseMessage(strings.NewReader("not json"))
		assert.Error(t, err)
	})

	t.Run("nil message is empty", func(t *testing.T) {
		var msg *Message
		assert.Zero(t, msg.RequesterFID())
		assert.Empty(t, msg.State())
	})
}

func TestFrameValidate(t *testing.T) {
	valid := Frame{
		Image:   "https://img",
		Buttons: []Button{{Label: "Go", Action: ActionPost}},
	}
	require.NoError(t, valid.Validate())

	noImage := valid
	noImage.Image = ""
	assert.ErrorIs(t, noImage.Validate(), ErrNoImage)

	tooMany := valid
	tooMany.Buttons = make([]Button, MaxButtons+1)
	assert.ErrorIs(t, tooMany.Validate(), ErrTooManyButtons)

	bigState := valid
	bigState.State = strings.Repeat("x", maxStateBytes+1)
	assert.ErrorIs(t, bigState.Validate(), ErrStateTooLarge)

	linkless := valid
	linkless.Buttons = []Button{{Label: "Share", Action: ActionLink}}
	assert.Error(t, linkless.Validate())
}

func TestPage(t *testing.T) {
	f := Frame{
		Title:   "Masks",
		Image:   "https://frames.example/img.svg",
		PostURL: "https://frames.example/frames/masks",
		State:   `{"lastFid":"3"}`,
		Buttons: []Button{
			{Label: "My Stats", Action: ActionPost, Target: "https://frames.example/frames/masks?userfid=3"},
			{Label: "Share", Action: ActionLink, Target: "https://warpcast.com/~/compose"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Page(f).Render(&buf))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, `<meta property="fc:frame" content="vNext">`)
	assert.Contains(t, html, `<meta property="fc:frame:image" content="https://frames.example/img.svg">`)
	assert.Contains(t, html, `<meta property="fc:frame:image:aspect_ratio" content="1.91:1">`)
	assert.Contains(t, html, `<meta property="fc:frame:post_url" content="https://frames.example/frames/masks">`)
	assert.Contains(t, html, `<meta property="fc:frame:state" content="{&#34;lastFid&#34;:&#34;3&#34;}">`)
	assert.Contains(t, html, `<meta property="fc:frame:button:1" content="My Stats">`)
	assert.Contains(t, html, `<meta property="fc:frame:button:2:action" content="link">`)
	assert.Contains(t, html, `<meta property="fc:frame:button:2:target" content="https://warpcast.com/~/compose">`)
}
