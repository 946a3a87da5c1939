package client

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Protocol is the WebSocket subprotocol spoken by the evaluation service
const Protocol = "v1.json.vector2"

const closeTimeout = 2 * time.Second

// WebSocketConnection is an evaluation session on the service
type WebSocketConnection struct {
	conn      *websocket.Conn
	client    *Client
	sessionID string
	kind      string
}

// RemoteError is a failed request as reported by the server
type RemoteError struct {
	RequestID uint32
	Code      string
	Message   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Connect opens an evaluation session. It waits for the server's
// SessionStarted message before returning.
func (c *Client) Connect() (*WebSocketConnection, error) {
	baseURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	// Determine WebSocket scheme based on HTTP scheme
	wsScheme := "ws"
	if baseURL.Scheme == "https" {
		wsScheme = "wss"
	}

	wsURL := url.URL{
		Scheme: wsScheme,
		Host:   baseURL.Host,
		Path:   "/v1/eval",
	}
	if kind := c.GetKind(); kind != "" {
		wsURL.RawQuery = url.Values{"kind": []string{kind}}.Encode()
	}

	httpClient := c.GetHTTPClient()
	dialer := websocket.Dialer{
		HandshakeTimeout: 45 * time.Second,
		Subprotocols:     []string{Protocol},
		Jar:              httpClient.Jar,
	}
	if httpClient.Timeout > 0 {
		dialer.HandshakeTimeout = httpClient.Timeout
	}

	conn, resp, err := dialer.DialContext(c.GetContext(), wsURL.String(), http.Header{})
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("WebSocket handshake failed. Status: %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("error connecting to WebSocket: %w", err)
	}

	ws := &WebSocketConnection{conn: conn, client: c}

	msg, err := ws.ReceiveMessage()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error waiting for session start: %w", err)
	}
	started, ok := msg.AsSessionStarted()
	if !ok {
		conn.Close()
		return nil, fmt.Errorf("expected SessionStarted, got %s", msg.Type)
	}
	ws.sessionID = started.SessionID
	ws.kind = started.Kind

	return ws, nil
}

// SessionID returns the server-assigned session ID
func (ws *WebSocketConnection) SessionID() string {
	return ws.sessionID
}

// Kind returns the component kind of the session as last confirmed by the server
func (ws *WebSocketConnection) Kind() string {
	return ws.kind
}

// Close closes the WebSocket connection
func (ws *WebSocketConnection) Close() error {
	if ws.conn != nil {
		return ws.conn.Close()
	}
	return nil
}

// GracefulClose sends a normal closure frame and waits up to closeTimeout
// for the server to answer with its own before closing the connection.
func (ws *WebSocketConnection) GracefulClose() error {
	if ws.conn == nil {
		return nil
	}
	defer ws.conn.Close()

	deadline := time.Now().Add(closeTimeout)
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := ws.conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
		return fmt.Errorf("error sending close message: %w", err)
	}

	if err := ws.conn.SetReadDeadline(deadline); err != nil {
		return fmt.Errorf("error setting read deadline: %w", err)
	}
	for {
		if _, _, err := ws.conn.NextReader(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("error waiting for close reply: %w", err)
		}
	}
}

// SendEval sends an Eval request and returns its request ID
func (ws *WebSocketConnection) SendEval(expr string) (uint32, error) {
	requestID := uuid.New().ID()
	evalMsg := ClientMessage{
		Eval: &Eval{
			RequestID: requestID,
			Expr:      expr,
		},
	}
	return requestID, ws.SendMessage(evalMsg)
}

// SendSetKind sends a SetKind request and returns its request ID
func (ws *WebSocketConnection) SendSetKind(kind string) (uint32, error) {
	requestID := uuid.New().ID()
	kindMsg := ClientMessage{
		SetKind: &SetKind{
			RequestID: requestID,
			Kind:      kind,
		},
	}
	return requestID, ws.SendMessage(kindMsg)
}

// Eval evaluates expr on the server and waits for the answer. A server-side
// failure is returned as a *RemoteError. A "kind <k>" expression switches
// the session kind and returns the new kind.
func (ws *WebSocketConnection) Eval(expr string) (string, error) {
	requestID, err := ws.SendEval(expr)
	if err != nil {
		return "", err
	}

	msg, err := ws.await(requestID)
	if err != nil {
		return "", err
	}
	if res, ok := msg.AsEvalResult(); ok {
		return res.Result, nil
	}
	if changed, ok := msg.AsKindChanged(); ok {
		ws.kind = changed.Kind
		return changed.Kind, nil
	}
	return "", fmt.Errorf("unexpected reply to Eval: %s", msg.Type)
}

// SetKind switches the session to kind and waits for the acknowledgement
func (ws *WebSocketConnection) SetKind(kind string) error {
	requestID, err := ws.SendSetKind(kind)
	if err != nil {
		return err
	}

	msg, err := ws.await(requestID)
	if err != nil {
		return err
	}
	changed, ok := msg.AsKindChanged()
	if !ok {
		return fmt.Errorf("unexpected reply to SetKind: %s", msg.Type)
	}
	ws.kind = changed.Kind
	return nil
}

// await reads messages until one answers requestID, skipping any others
func (ws *WebSocketConnection) await(requestID uint32) (*ServerMessage, error) {
	for {
		msg, err := ws.ReceiveMessage()
		if err != nil {
			return nil, err
		}
		if msg.RequestID() != requestID {
			continue
		}
		if e, ok := msg.AsEvalError(); ok {
			return nil, &RemoteError{RequestID: e.RequestID, Code: e.Code, Message: e.Error}
		}
		return msg, nil
	}
}

// Basic websocket send and receive

// SendMessage sends a message through the WebSocket connection
func (ws *WebSocketConnection) SendMessage(message any) error {
	if ws.conn == nil {
		return fmt.Errorf("WebSocket connection not established")
	}
	return ws.conn.WriteJSON(message)
}

// ReceiveMessage receives and decodes the next server message
func (ws *WebSocketConnection) ReceiveMessage() (*ServerMessage, error) {
	if ws.conn == nil {
		return nil, fmt.Errorf("WebSocket connection not established")
	}

	_, data, err := ws.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("error reading message: %w", err)
	}

	return ParseServerMessage(data)
}
