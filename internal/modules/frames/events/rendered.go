// Package events defines the messages the frames module publishes.
package events

import "github.com/nfrund/statframes/internal/pubsub"

// Rendered describes one frame response.
type Rendered struct {
	Variant  string `json:"variant"`
	FID      string `json:"fid,omitempty"`
	State    string `json:"state"`
	Degraded bool   `json:"degraded"`
}

// TopicRendered is published after every frame response.
var TopicRendered = pubsub.NewEvent[Rendered]("frames.rendered")
