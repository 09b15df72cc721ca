package web

import (
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreebaxIrfan/translation-buddy/pkg/services/translate"
)

func TestChatSocket(t *testing.T) {
	ts := newTestServer(t, true)

	conn, res, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
	require.NoError(t, err)
	if res != nil {
		res.Body.Close()
	}
	defer conn.Close()

	_, welcome, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(welcome), "Welcome to Translation Buddy!")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("Hello")))
	_, answer, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "Translation to Urdu: ہیلو", string(answer))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("/history")))
	_, listing, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(listing), "[user]: Hello")
	assert.Contains(t, string(listing), "[assistant]: Translation to Urdu: ہیلو")
}

func TestChatSocketOffline(t *testing.T) {
	ts := newTestServer(t, false)

	conn, res, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
	require.NoError(t, err)
	if res != nil {
		res.Body.Close()
	}
	defer conn.Close()

	_, diag, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, translate.MsgNoConnection, string(diag))

	// the server closes after delivering the diagnostic
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}
