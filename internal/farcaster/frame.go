// Package farcaster holds the Farcaster Frame protocol types: the frame
// signature packet a client POSTs, and the frame description rendered back
// as HTML meta tags.
package farcaster

import (
	"errors"
	"fmt"
)

// Version is the frame protocol version advertised in fc:frame.
const Version = "vNext"

// MaxButtons is the number of buttons a frame may carry.
const MaxButtons = 4

// maxStateBytes is the protocol limit on fc:frame:state.
const maxStateBytes = 4096

// Aspect ratios accepted for fc:frame:image:aspect_ratio.
const (
	AspectWide   = "1.91:1"
	AspectSquare = "1:1"
)

// ButtonAction is the action a client performs when a button is pressed.
type ButtonAction string

const (
	ActionPost ButtonAction = "post"
	ActionLink ButtonAction = "link"
)

// Button is one frame action button.
type Button struct {
	Label  string
	Action ButtonAction
	Target string
}

// Frame is the complete response of a frame endpoint.
type Frame struct {
	Title       string
	Image       string
	AspectRatio string
	PostURL     string
	State       string
	Buttons     []Button
}

var (
	ErrNoImage        = errors.New("frame has no image")
	ErrTooManyButtons = fmt.Errorf("frame has more than %d buttons", MaxButtons)
	ErrStateTooLarge  = fmt.Errorf("frame state exceeds %d bytes", maxStateBytes)
)

// Validate checks the protocol limits a client enforces.
func (f Frame) Validate() error {
	if f.Image == "" {
		return ErrNoImage
	}
	if len(f.Buttons) > MaxButtons {
		return ErrTooManyButtons
	}
	if len(f.State) > maxStateBytes {
		return ErrStateTooLarge
	}
	for i, b := range f.Buttons {
		if b.Label == "" {
			return fmt.Errorf("button %d has no label", i+1)
		}
		if b.Action == ActionLink && b.Target == "" {
			return fmt.Errorf("link button %d has no target", i+1)
		}
	}
	return nil
}
