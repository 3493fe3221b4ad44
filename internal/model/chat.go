package model

// ChatRequest is the inbound payload for POST /chat. Query may be empty
// when the client sends a structured event instead of natural language.
type ChatRequest struct {
	Query     string       `json:"query"`
	SessionID string       `json:"session_id,omitempty"`
	Event     *ClientEvent `json:"event,omitempty"`
}

// ClientEvent is a UI-originated event (rowSelect, formSubmit, ...).
type ClientEvent struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// ChatResponse is the outbound payload for POST /chat. Text carries either
// conversational prose or a serialized SurfaceMessage; Data is always null.
type ChatResponse struct {
	Text string `json:"text"`
	Data any    `json:"data"`
}
