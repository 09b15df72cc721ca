package chat

import (
	"fmt"
	"time"
)

// roles of a history entry
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TimeLayout is the timestamp form written into the history file.
const TimeLayout = "2006-01-02 15:04:05"

type HistoryEntry struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type HistoryEntries []HistoryEntry

// NewHistoryEntry stamps a role-tagged entry with the local time.
func NewHistoryEntry(role, content string, at time.Time) HistoryEntry {
	return HistoryEntry{
		Role:      role,
		Content:   content,
		Timestamp: at.Format(TimeLayout),
	}
}

// Line renders the entry for the chat surface.
func (z HistoryEntry) Line() string {
	return fmt.Sprintf("%s [%s]: %s", z.Timestamp, z.Role, z.Content)
}

// Tail returns the most recent n entries, order preserved.
func (z HistoryEntries) Tail(n int) HistoryEntries {
	if n < 0 {
		n = 0
	}
	if len(z) <= n {
		return z
	}
	return z[len(z)-n:]
}

// Lines renders all entries oldest first.
func (z HistoryEntries) Lines() []string {
	out := make([]string, len(z))
	for i, entry := range z {
		out[i] = entry.Line()
	}
	return out
}
