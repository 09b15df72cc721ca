package stores

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/AreebaxIrfan/translation-buddy/pkg/models/chat"
	"github.com/AreebaxIrfan/translation-buddy/pkg/settings"
)

// HistoryStore persists a chat history as one flat JSON file.
type HistoryStore interface {
	// Load returns the persisted entries, empty when the file is missing
	// or unreadable.
	Load() chat.HistoryEntries
	// Save overwrites the file with the full entry list.
	Save(entries chat.HistoryEntries) error
}

func NewHistoryFile(path string) HistoryStore {
	return &historyFile{path: path}
}

type historyFile struct {
	path string
}

func (s *historyFile) Load() chat.HistoryEntries {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger().Infow("load history fail", "file", s.path, "err", err)
		}
		return chat.HistoryEntries{}
	}
	var entries chat.HistoryEntries
	if err = json.Unmarshal(b, &entries); err != nil {
		logger().Infow("parse history fail", "file", s.path, "err", err)
		return chat.HistoryEntries{}
	}
	return entries
}

func (s *historyFile) Save(entries chat.HistoryEntries) error {
	if entries == nil {
		entries = chat.HistoryEntries{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// the file doubles as a human-readable record, keep it unescaped
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	logger().Debugw("history saved", "file", s.path, "count", len(entries))
	return nil
}

var (
	histOnce sync.Once
	histSgt  HistoryStore
)

// SgtHistory starts and returns the process-wide history store.
func SgtHistory() HistoryStore {
	histOnce.Do(func() {
		histSgt = NewHistoryFile(settings.Current.HistoryFile)
	})
	return histSgt
}
