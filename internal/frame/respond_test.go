package frame

import (
	"testing"

	"github.com/nfrund/statframes/internal/domain"
	"github.com/nfrund/statframes/internal/farcaster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appURL = "https://frames.example"

func TestRespond(t *testing.T) {
	t.Run("populated view", func(t *testing.T) {
		view := View{Variant: Masks(), FID: "3", Profile: domain.Profile{FID: "3"}, ProfileOK: true}

		f := Respond(view, appURL, "data:image/svg+xml;base64,AAAA")

		require.NoError(t, f.Validate())
		assert.Equal(t, "https://frames.example/frames/masks", f.PostURL)
		assert.Equal(t, `{"lastFid":"3"}`, f.State)
		require.Len(t, f.Buttons, 2)
		assert.Equal(t, farcaster.Button{
			Label:  "My Stats",
			Action: farcaster.ActionPost,
			Target: "https://frames.example/frames/masks?userfid=3",
		}, f.Buttons[0])
		assert.Equal(t, farcaster.ActionLink, f.Buttons[1].Action)
		assert.Equal(t, "Share", f.Buttons[1].Label)
	})

	t.Run("placeholder view", func(t *testing.T) {
		view := View{Variant: Masks()}

		f := Respond(view, appURL, "https://frames.example/frames/masks/image")

		assert.Equal(t, "Check Status", f.Buttons[0].Label)
		assert.Equal(t, "https://frames.example/frames/masks", f.Buttons[0].Target)
		assert.Empty(t, f.State)
	})
}

func TestShareURL(t *testing.T) {
	v := Variant{Name: "masks", ShareText: "Check your stats & share"}

	assert.Equal(t,
		"https://warpcast.com/~/compose?text=Check%20your%20stats%20%26%20share&embeds[]=https%3A%2F%2Fframes.example%2Fframes%2Fmasks%3Fuserfid%3D3",
		ShareURL(v, appURL, "3"))

	v.ShareURL = "https://masksframe.vercel.app/frames"
	assert.Equal(t,
		"https://warpcast.com/~/compose?text=Check%20your%20stats%20%26%20share&embeds[]=https%3A%2F%2Fmasksframe.vercel.app%2Fframes",
		ShareURL(v, appURL, ""))

	v.ShareURL = "https://masksframe.vercel.app/frames?ref=cast&userfid=1"
	assert.Equal(t,
		"https://warpcast.com/~/compose?text=Check%20your%20stats%20%26%20share&embeds[]=https%3A%2F%2Fmasksframe.vercel.app%2Fframes%3Fref%3Dcast%26userfid%3D3",
		ShareURL(v, appURL, "3"))
}
