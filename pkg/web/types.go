package web

// esDone is the terminating SSE event payload.
const esDone = "[DONE]"

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Prompt    string `json:"prompt"`
	Stream    bool   `json:"stream,omitempty"`
}

type ChatMessage struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}
