package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreebaxIrfan/translation-buddy/pkg/models/chat"
	"github.com/AreebaxIrfan/translation-buddy/pkg/services/stores"
	"github.com/AreebaxIrfan/translation-buddy/pkg/services/translate"
)

type translatorFunc func(ctx context.Context, text string) (string, error)

func (fn translatorFunc) Translate(ctx context.Context, text string) (string, error) {
	return fn(ctx, text)
}

type onlineProber bool

func (p onlineProber) Online(ctx context.Context) bool { return bool(p) }

func newTestServer(t *testing.T, online bool) *httptest.Server {
	t.Helper()
	pair := &translate.Pair{
		EnToUr: translatorFunc(func(ctx context.Context, text string) (string, error) {
			return "ہیلو", nil
		}),
		UrToEn: translatorFunc(func(ctx context.Context, text string) (string, error) {
			return "Hello", nil
		}),
	}
	svc := New(Config{
		Addr:    "127.0.0.1:0",
		Prober:  onlineProber(online),
		History: stores.NewHistoryFile(filepath.Join(t.TempDir(), "translation_history.json")),
		NewPair: func() (*translate.Pair, error) { return pair, nil },
	})
	ts := httptest.NewServer(svc.(*server).ar)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return res
}

func TestHandlerPing(t *testing.T) {
	ts := newTestServer(t, true)
	res, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	assert.Equal(t, "Pong\n", string(b))
}

func TestWelcomeChatHistory(t *testing.T) {
	ts := newTestServer(t, true)

	res, err := http.Get(ts.URL + "/api/welcome")
	require.NoError(t, err)
	var wr struct {
		Data chat.Message `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&wr))
	res.Body.Close()
	require.NotEmpty(t, wr.Data.ID)
	assert.Contains(t, wr.Data.Content, "Welcome to Translation Buddy!")

	res = postJSON(t, ts.URL+"/api/chat", ChatRequest{SessionID: wr.Data.ID, Prompt: "Hello"})
	var cm ChatMessage
	require.NoError(t, json.NewDecoder(res.Body).Decode(&cm))
	res.Body.Close()
	assert.Equal(t, wr.Data.ID, cm.ID)
	assert.Equal(t, wr.Data.ID, res.Header.Get("Session-ID"))
	assert.Equal(t, "Translation to Urdu: ہیلو", cm.Text)

	res, err = http.Get(ts.URL + "/api/history/" + wr.Data.ID)
	require.NoError(t, err)
	var hr struct {
		Data  chat.HistoryEntries `json:"data"`
		Count int                 `json:"count"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&hr))
	res.Body.Close()
	assert.Equal(t, 2, hr.Count)
	require.Len(t, hr.Data, 2)
	assert.Equal(t, chat.RoleUser, hr.Data[0].Role)
	assert.Equal(t, "Hello", hr.Data[0].Content)

	res, err = http.Get(ts.URL + "/api/history/" + wr.Data.ID + "?limit=1")
	require.NoError(t, err)
	hr.Data = nil
	require.NoError(t, json.NewDecoder(res.Body).Decode(&hr))
	res.Body.Close()
	require.Len(t, hr.Data, 1)
	assert.Equal(t, chat.RoleAssistant, hr.Data[0].Role)
}

func TestChatStartsSession(t *testing.T) {
	ts := newTestServer(t, true)

	res := postJSON(t, ts.URL+"/api/chat", ChatRequest{Prompt: "سلام"})
	var cm ChatMessage
	require.NoError(t, json.NewDecoder(res.Body).Decode(&cm))
	res.Body.Close()
	assert.NotEmpty(t, cm.ID)
	assert.Equal(t, "Translation to English: Hello", cm.Text)
}

func TestChatOffline(t *testing.T) {
	ts := newTestServer(t, false)

	res := postJSON(t, ts.URL+"/api/chat", ChatRequest{Prompt: "Hello"})
	var cm ChatMessage
	require.NoError(t, json.NewDecoder(res.Body).Decode(&cm))
	res.Body.Close()
	assert.Empty(t, cm.ID, "failed pre-flight must not hand out a session")
	assert.Equal(t, translate.MsgNoConnection, cm.Text)
}

func TestChatSSE(t *testing.T) {
	ts := newTestServer(t, true)

	res := postJSON(t, ts.URL+"/api/chat-sse", ChatRequest{Prompt: "Hello"})
	defer res.Body.Close()
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	body := string(b)
	assert.Contains(t, body, "Translation to Urdu")
	assert.Contains(t, body, esDone)
}

func TestHistoryNotFound(t *testing.T) {
	ts := newTestServer(t, true)

	res, err := http.Get(ts.URL + "/api/history/nope")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}
