package web

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jpillora/eventsource"
	"github.com/marcsv/go-binder/binder"
	"github.com/spf13/cast"

	"github.com/AreebaxIrfan/translation-buddy/pkg/models/chat"
)

// getWelcome starts a fresh session and returns its greeting. When a
// pre-flight check fails the body carries the diagnostic and no session id.
func (s *server) getWelcome(w http.ResponseWriter, r *http.Request) {
	msg := new(chat.Message)
	sess, text := s.startSession(r.Context(), "")
	msg.Content = text
	if sess != nil {
		msg.ID = sess.ID()
	}
	apiOk(w, r, msg)
}

// postChat runs one turn against the session named in the request. An
// unknown or empty session id starts a new session first.
func (s *server) postChat(w http.ResponseWriter, r *http.Request) {
	var param ChatRequest
	if err := binder.BindBody(r, &param); err != nil {
		apiFail(w, r, 400, err)
		return
	}
	isSSE := param.Stream || strings.HasSuffix(r.URL.Path, "-sse")

	sess, ok := s.sessions.get(param.SessionID)
	if !ok {
		var diag string
		if sess, diag = s.startSession(r.Context(), param.SessionID); sess == nil {
			s.respondChat(w, r, isSSE, &ChatMessage{Text: diag})
			return
		}
	}

	logger().Infow("chat", "sid", sess.ID(), "prompt", param.Prompt, "ip", r.RemoteAddr)
	answer := sess.Turn(r.Context(), param.Prompt)
	w.Header().Add("Session-ID", sess.ID())
	s.respondChat(w, r, isSSE, &ChatMessage{ID: sess.ID(), Text: answer})
}

func (s *server) respondChat(w http.ResponseWriter, r *http.Request, isSSE bool, cm *ChatMessage) {
	if !isSSE {
		render.JSON(w, r, cm)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported!", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Content-Type", "text/event-stream")
	if writeEvent(w, "1", cm) {
		_ = writeEvent(w, "2", esDone)
	}
	flusher.Flush()
}

// getHistory returns the retained entries of a live session, newest last.
func (s *server) getHistory(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	sess, ok := s.sessions.get(sid)
	if !ok {
		apiFail(w, r, 404, "session not found")
		return
	}
	data := sess.History()
	if limit := cast.ToInt(r.URL.Query().Get("limit")); limit > 0 {
		data = data.Tail(limit)
	}
	apiOk(w, r, data, len(data))
}

// writeEvent write and auto flush
func writeEvent(w io.Writer, id string, m any) bool {
	var b []byte
	var err error
	if s, ok := m.(string); ok {
		b = []byte(s)
	} else {
		b, err = json.Marshal(m)
		if err != nil {
			logger().Infow("json marshal fail", "m", m, "err", err)
			return false
		}
	}

	if err = eventsource.WriteEvent(w, eventsource.Event{
		ID:   id,
		Data: b,
	}); err != nil {
		logger().Infow("eventsource write fail", "err", err)
		return false
	}

	return true
}
