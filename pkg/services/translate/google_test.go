package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreebaxIrfan/translation-buddy/pkg/services/langdetect"
)

func TestGoogleTranslator(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("sl"))
		assert.Equal(t, "ur", r.URL.Query().Get("tl"))
		assert.Equal(t, "Hello", r.URL.Query().Get("q"))
		fmt.Fprint(w, `<html><body><div class="result-container">ہیلو</div></body></html>`)
	}))
	defer ts.Close()

	tr := newGoogleTranslator(ts.URL, langdetect.English, langdetect.Urdu)
	out, err := tr.Translate(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "ہیلو", out)
}

func TestGoogleTranslatorBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	tr := newGoogleTranslator(ts.URL, langdetect.English, langdetect.Urdu)
	_, err := tr.Translate(context.Background(), "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGoogleTranslatorEmptyResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>nothing here</p></body></html>`)
	}))
	defer ts.Close()

	tr := newGoogleTranslator(ts.URL, langdetect.English, langdetect.Urdu)
	_, err := tr.Translate(context.Background(), "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty translation result")
}
