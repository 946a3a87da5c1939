package client

import (
	"encoding/json"
	"fmt"
)

// ServerMessageType represents the type of server message
type ServerMessageType int

const (
	ServerMessageTypeSessionStarted ServerMessageType = iota
	ServerMessageTypeEvalResult
	ServerMessageTypeKindChanged
	ServerMessageTypeEvalError
)

var serverMessageTags = map[ServerMessageType]string{
	ServerMessageTypeSessionStarted: "SessionStarted",
	ServerMessageTypeEvalResult:     "EvalResult",
	ServerMessageTypeKindChanged:    "KindChanged",
	ServerMessageTypeEvalError:      "EvalError",
}

// String returns the wire tag of the message type
func (t ServerMessageType) String() string {
	if tag, ok := serverMessageTags[t]; ok {
		return tag
	}
	return fmt.Sprintf("ServerMessageType(%d)", int(t))
}

// CodeProtocol is the EvalError code for a frame the server could not decode
const CodeProtocol = "protocol"

// ServerMessage represents all possible server-to-client messages.
// On the wire it is an object with a single key, the type tag.
type ServerMessage struct {
	Type    ServerMessageType `json:"-"`
	Payload any               `json:"-"`
}

// Type-safe getters for each message type
func (sm *ServerMessage) AsSessionStarted() (*SessionStarted, bool) {
	if sm.Type == ServerMessageTypeSessionStarted {
		return sm.Payload.(*SessionStarted), true
	}
	return nil, false
}

func (sm *ServerMessage) AsEvalResult() (*EvalResult, bool) {
	if sm.Type == ServerMessageTypeEvalResult {
		return sm.Payload.(*EvalResult), true
	}
	return nil, false
}

func (sm *ServerMessage) AsKindChanged() (*KindChanged, bool) {
	if sm.Type == ServerMessageTypeKindChanged {
		return sm.Payload.(*KindChanged), true
	}
	return nil, false
}

func (sm *ServerMessage) AsEvalError() (*EvalError, bool) {
	if sm.Type == ServerMessageTypeEvalError {
		return sm.Payload.(*EvalError), true
	}
	return nil, false
}

// RequestID returns the request the message answers, or 0 for SessionStarted
func (sm *ServerMessage) RequestID() uint32 {
	switch p := sm.Payload.(type) {
	case *EvalResult:
		return p.RequestID
	case *KindChanged:
		return p.RequestID
	case *EvalError:
		return p.RequestID
	}
	return 0
}

// SessionStarted is sent once, right after the WebSocket upgrade
type SessionStarted struct {
	SessionID string `json:"session_id"`
	Kind      string `json:"kind"`
}

// EvalResult carries the textual result of an Eval
type EvalResult struct {
	RequestID uint32 `json:"request_id"`
	Result    string `json:"result"`
}

// KindChanged acknowledges a SetKind
type KindChanged struct {
	RequestID uint32 `json:"request_id"`
	Kind      string `json:"kind"`
}

// EvalError reports a failed request
type EvalError struct {
	RequestID uint32 `json:"request_id"`
	Code      string `json:"code"`
	Error     string `json:"error"`
}

// Constructors used by the server side

// NewSessionStarted creates a SessionStarted message
func NewSessionStarted(sessionID, kind string) ServerMessage {
	return ServerMessage{
		Type:    ServerMessageTypeSessionStarted,
		Payload: &SessionStarted{SessionID: sessionID, Kind: kind},
	}
}

// NewEvalResult creates an EvalResult message
func NewEvalResult(requestID uint32, result string) ServerMessage {
	return ServerMessage{
		Type:    ServerMessageTypeEvalResult,
		Payload: &EvalResult{RequestID: requestID, Result: result},
	}
}

// NewKindChanged creates a KindChanged message
func NewKindChanged(requestID uint32, kind string) ServerMessage {
	return ServerMessage{
		Type:    ServerMessageTypeKindChanged,
		Payload: &KindChanged{RequestID: requestID, Kind: kind},
	}
}

// NewEvalError creates an EvalError message
func NewEvalError(requestID uint32, code string, err error) ServerMessage {
	return ServerMessage{
		Type:    ServerMessageTypeEvalError,
		Payload: &EvalError{RequestID: requestID, Code: code, Error: err.Error()},
	}
}

// MarshalJSON encodes the message as {"<Type>": payload}
func (sm ServerMessage) MarshalJSON() ([]byte, error) {
	tag, ok := serverMessageTags[sm.Type]
	if !ok {
		return nil, fmt.Errorf("unknown message type: %d", int(sm.Type))
	}
	return json.Marshal(map[string]any{tag: sm.Payload})
}

// ParseServerMessage parses a raw JSON message into a ServerMessage
func ParseServerMessage(data []byte) (*ServerMessage, error) {
	var taggedMsg map[string]json.RawMessage
	if err := json.Unmarshal(data, &taggedMsg); err != nil {
		return nil, fmt.Errorf("failed to parse server message: %w", err)
	}
	if len(taggedMsg) != 1 {
		return nil, fmt.Errorf("server message must have exactly one key, got %d", len(taggedMsg))
	}

	for msgType, payload := range taggedMsg {
		switch msgType {
		case "SessionStarted":
			var v SessionStarted
			if err := json.Unmarshal(payload, &v); err != nil {
				return nil, fmt.Errorf("failed to unmarshal SessionStarted: %w", err)
			}
			return &ServerMessage{
				Type:    ServerMessageTypeSessionStarted,
				Payload: &v,
			}, nil
		case "EvalResult":
			var v EvalResult
			if err := json.Unmarshal(payload, &v); err != nil {
				return nil, fmt.Errorf("failed to unmarshal EvalResult: %w", err)
			}
			return &ServerMessage{
				Type:    ServerMessageTypeEvalResult,
				Payload: &v,
			}, nil
		case "KindChanged":
			var v KindChanged
			if err := json.Unmarshal(payload, &v); err != nil {
				return nil, fmt.Errorf("failed to unmarshal KindChanged: %w", err)
			}
			return &ServerMessage{
				Type:    ServerMessageTypeKindChanged,
				Payload: &v,
			}, nil
		case "EvalError":
			var v EvalError
			if err := json.Unmarshal(payload, &v); err != nil {
				return nil, fmt.Errorf("failed to unmarshal EvalError: %w", err)
			}
			return &ServerMessage{
				Type:    ServerMessageTypeEvalError,
				Payload: &v,
			}, nil
		default:
			return nil, fmt.Errorf("unknown message type: %s", msgType)
		}
	}

	return nil, fmt.Errorf("failed to parse server message")
}
