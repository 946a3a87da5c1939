package client

import (
	"encoding/json"
	"fmt"
)

// ClientMessage represents all possible client-to-server messages.
// Exactly one field is set.
type ClientMessage struct {
	Eval    *Eval    `json:"Eval,omitempty"`
	SetKind *SetKind `json:"SetKind,omitempty"`
}

// Eval asks the server to evaluate one expression, e.g. "add 1 2 3 4"
type Eval struct {
	RequestID uint32 `json:"request_id"`
	Expr      string `json:"expr"`
}

// SetKind switches the component kind of the session
type SetKind struct {
	RequestID uint32 `json:"request_id"`
	Kind      string `json:"kind"`
}

// RequestID returns the request ID of whichever message is set
func (cm *ClientMessage) RequestID() uint32 {
	switch {
	case cm.Eval != nil:
		return cm.Eval.RequestID
	case cm.SetKind != nil:
		return cm.SetKind.RequestID
	}
	return 0
}

// ParseClientMessage parses a raw JSON message into a ClientMessage
func ParseClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client message: %w", err)
	}

	set := 0
	if msg.Eval != nil {
		set++
	}
	if msg.SetKind != nil {
		set++
	}
	if set != 1 {
		return &msg, fmt.Errorf("client message must have exactly one variant, got %d", set)
	}

	return &msg, nil
}
