package web

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the chat page is served from this process, skip origin games
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatSocket runs one whole chat session over a websocket connection. The
// first frame out is the welcome or the start-up diagnostic; afterwards
// every inbound text frame is a turn and gets exactly one reply frame.
func (s *server) chatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger().Infow("ws upgrade fail", "err", err)
		return
	}
	defer conn.Close()

	sess, msg := s.startSession(r.Context(), "")
	if err = conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		logger().Infow("ws write fail", "err", err)
		return
	}
	if sess == nil {
		// pre-flight failed, the diagnostic was the last word
		return
	}
	defer s.sessions.drop(sess.ID())
	logger().Infow("ws session open", "sid", sess.ID(), "ip", r.RemoteAddr)

	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger().Infow("ws read fail", "sid", sess.ID(), "err", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		answer := sess.Turn(r.Context(), string(data))
		if err = conn.WriteMessage(websocket.TextMessage, []byte(answer)); err != nil {
			logger().Infow("ws write fail", "sid", sess.ID(), "err", err)
			return
		}
	}
}
