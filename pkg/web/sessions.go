package web

import (
	"context"
	"sync"

	"github.com/AreebaxIrfan/translation-buddy/pkg/services/session"
)

// sessionRegistry tracks the live sessions by id.
type sessionRegistry struct {
	mu sync.RWMutex
	m  map[string]*session.Session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{m: make(map[string]*session.Session)}
}

func (r *sessionRegistry) get(id string) (*session.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.m[id]
	return sess, ok
}

func (r *sessionRegistry) put(sess *session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[sess.ID()] = sess
}

func (r *sessionRegistry) drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, id)
}

// startSession builds and starts a fresh session. When a pre-flight check
// fails the diagnostic comes back as the message and the session is
// discarded instead of registered.
func (s *server) startSession(ctx context.Context, id string) (*session.Session, string) {
	sess := session.New(session.Config{
		ID:      id,
		Prober:  s.prober,
		History: s.hist,
		NewPair: s.newPair,
		Welcome: s.welcomeContent(),
	})
	msg, err := sess.Start(ctx)
	if err != nil {
		return nil, msg
	}
	s.sessions.put(sess)
	return sess, msg
}

func (s *server) welcomeContent() string {
	if s.preset.Welcome != nil {
		return s.preset.Welcome.Content
	}
	return ""
}
