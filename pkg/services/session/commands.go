package session

import (
	"strings"
	"time"

	"github.com/AreebaxIrfan/translation-buddy/pkg/models/chat"
)

// command responses, fixed wording
const (
	MsgHistoryEmpty   = "No translation history available."
	MsgHistoryCleared = "Translation history cleared."
	MsgUnknownCommand = "Unknown command. Available: /history, /clear"
)

// command interprets a slash-prefixed input. Commands read the history as
// it stood when the turn began; the exchange itself is recorded afterwards,
// except for /clear where the reset is the turn's final word.
func (s *Session) command(input string, receivedAt time.Time) string {
	switch strings.ToLower(input) {
	case "/history":
		response := renderHistory(s.entries)
		s.record(input, response, receivedAt)
		return response
	case "/clear":
		s.entries = chat.HistoryEntries{}
		s.persist()
		logger().Infow("history cleared", "session", s.id)
		return MsgHistoryCleared
	default:
		response := MsgUnknownCommand
		s.record(input, response, receivedAt)
		return response
	}
}

// renderHistory lists the entries oldest first, or the fixed empty notice.
func renderHistory(entries chat.HistoryEntries) string {
	if len(entries) == 0 {
		return MsgHistoryEmpty
	}
	return strings.Join(entries.Lines(), "\n")
}
