// Package session drives one chat conversation: the start-up checks, the
// per-message turn pipeline and the slash commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AreebaxIrfan/translation-buddy/pkg/models/chat"
	"github.com/AreebaxIrfan/translation-buddy/pkg/services/stores"
	"github.com/AreebaxIrfan/translation-buddy/pkg/services/translate"
)

// State is the session lifecycle position.
type State uint8

const (
	StateUninitialized State = iota
	StateReady
	StateProcessing
	StateFailed
)

func (z State) String() string {
	switch z {
	case StateReady:
		return "ready"
	case StateProcessing:
		return "processing"
	case StateFailed:
		return "failed"
	}
	return "uninitialized"
}

// A session retains at most this many entries between turns.
const historyMaxLength = 10

const welcomeText = "Welcome to Translation Buddy! Type English or Urdu text, " +
	"and I'll translate it to the other language. Use '/history' to view past " +
	"translations or '/clear' to reset history."

// Config carries the session collaborators. Zero fields fall back to the
// process defaults.
type Config struct {
	ID      string
	Prober  translate.Prober
	History stores.HistoryStore
	NewPair func() (*translate.Pair, error)
	Welcome string
	Checks  []Check
}

// Session is one conversation. All methods are safe for concurrent use;
// turns on the same session are serialized.
type Session struct {
	mu    sync.Mutex
	id    string
	state State

	prober  translate.Prober
	hist    stores.HistoryStore
	newPair func() (*translate.Pair, error)
	welcome string
	checks  []Check

	pair    *translate.Pair
	entries chat.HistoryEntries

	now func() time.Time
}

// New builds an uninitialized session. Call Start before the first turn.
func New(cfg Config) *Session {
	s := &Session{
		id:      cfg.ID,
		prober:  cfg.Prober,
		hist:    cfg.History,
		newPair: cfg.NewPair,
		welcome: cfg.Welcome,
		checks:  cfg.Checks,
		now:     time.Now,
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.prober == nil {
		s.prober = translate.NewProber()
	}
	if s.hist == nil {
		s.hist = stores.SgtHistory()
	}
	if s.newPair == nil {
		s.newPair = translate.NewPair
	}
	if s.welcome == "" {
		s.welcome = welcomeText
	}
	if s.checks == nil {
		s.checks = Preflight(s.prober)
	}
	return s
}

func (s *Session) ID() string { return s.id }

// State returns the current lifecycle position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// History returns a copy of the retained entries.
func (s *Session) History() chat.HistoryEntries {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(chat.HistoryEntries, len(s.entries))
	copy(out, s.entries)
	return out
}

// Start runs the pre-flight checks, builds the translators and loads the
// persisted history. The returned message is the welcome text, or the
// diagnostic of the first failed check; with a non-nil error the session
// is failed for good.
func (s *Session) Start(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized {
		return "", fmt.Errorf("session %s already started", s.id)
	}

	for _, c := range s.checks {
		if err := c.Run(ctx); err != nil {
			s.state = StateFailed
			logger().Infow("session start fail", "id", s.id, "check", c.Name, "err", err)
			return c.Diag, fmt.Errorf("%s check: %w", c.Name, err)
		}
	}

	pair, err := s.newPair()
	if err == nil && !pair.Ready() {
		err = errors.New("translator pair not ready")
	}
	if err != nil {
		s.state = StateFailed
		logger().Infow("session start fail", "id", s.id, "check", "translators", "err", err)
		return MsgTranslatorsInit, fmt.Errorf("init translators: %w", err)
	}
	s.pair = pair
	s.entries = s.hist.Load()
	s.state = StateReady
	logger().Infow("session ready", "id", s.id, "history", len(s.entries))
	return s.welcome, nil
}

// Turn processes one inbound message and returns the response to deliver.
func (s *Session) Turn(ctx context.Context, input string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		logger().Infow("turn on unready session", "id", s.id, "state", s.state)
		return translate.MsgNotInitialized
	}

	s.state = StateProcessing
	defer func() { s.state = StateReady }()

	input = strings.TrimSpace(input)
	receivedAt := s.now()
	logger().Infow("received user input", "session", s.id, "input", input)

	if strings.HasPrefix(input, "/") {
		return s.command(input, receivedAt)
	}

	response := translate.Dispatch(ctx, s.pair, s.prober, input)
	s.record(input, response, receivedAt)
	return response
}

// record appends the turn's exchange, trims to the retention cap and
// persists the result.
func (s *Session) record(input, response string, receivedAt time.Time) {
	s.entries = append(s.entries,
		chat.NewHistoryEntry(chat.RoleUser, input, receivedAt),
		chat.NewHistoryEntry(chat.RoleAssistant, response, s.now()),
	)
	s.entries = s.entries.Tail(historyMaxLength)
	s.persist()
}

func (s *Session) persist() {
	if err := s.hist.Save(s.entries); err != nil {
		logger().Infow("save history fail", "session", s.id, "err", err)
	}
}
