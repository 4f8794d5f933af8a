package farcaster

import (
	"encoding/json"
	"fmt"
	"io"
)

// Message is the frame signature packet a Farcaster client POSTs when a
// button is pressed. Only the untrusted half is decoded; the identifier it
// carries is trusted as supplied by the calling platform.
type Message struct {
	UntrustedData UntrustedData `json:"untrustedData"`
	TrustedData   TrustedData   `json:"trustedData"`
}

// UntrustedData is the readable copy of the signed frame action.
type UntrustedData struct {
	FID         uint64  `json:"fid"`
	URL         string  `json:"url"`
	MessageHash string  `json:"messageHash"`
	Timestamp   int64   `json:"timestamp"`
	Network     int     `json:"network"`
	ButtonIndex int     `json:"buttonIndex"`
	InputText   string  `json:"inputText,omitempty"`
	State       string  `json:"state,omitempty"`
	CastID      *CastID `json:"castId,omitempty"`
}

// CastID identifies the cast the frame was embedded in.
type CastID struct {
	FID  uint64 `json:"fid"`
	Hash string `json:"hash"`
}

// TrustedData carries the hex-encoded signed message bytes.
type TrustedData struct {
	MessageBytes string `json:"messageBytes"`
}

// maxMessageBytes bounds the size of a decoded packet.
const maxMessageBytes = 64 << 10

// ParseMessage decodes a frame signature packet.
func ParseMessage(r io.Reader) (*Message, error) {
	var msg Message
	if err := json.NewDecoder(io.LimitReader(r, maxMessageBytes)).Decode(&msg); err != nil {
		return nil, fmt.Errorf("decode frame message: %w", err)
	}
	return &msg, nil
}

// RequesterFID returns the fid of the user who pressed the button, or 0.
func (m *Message) RequesterFID() uint64 {
	if m == nil {
		return 0
	}
	return m.UntrustedData.FID
}

// State returns the frame state echoed back by the client.
func (m *Message) State() string {
	if m == nil {
		return ""
	}
	return m.UntrustedData.State
}
