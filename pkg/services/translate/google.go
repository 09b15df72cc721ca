package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/AreebaxIrfan/translation-buddy/pkg/services/langdetect"
)

const googleTimeout = time.Second * 20

// googleTranslator calls the public translate.google.com mobile endpoint
// and pulls the translation out of the returned page.
type googleTranslator struct {
	endpoint string
	source   string
	target   string
	hc       *http.Client
}

func newGoogleTranslator(endpoint string, source, target langdetect.Language) *googleTranslator {
	return &googleTranslator{
		endpoint: endpoint,
		source:   source.Code(),
		target:   target.Code(),
		hc: &http.Client{
			Timeout:   googleTimeout,
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		},
	}
}

func (g *googleTranslator) Translate(ctx context.Context, text string) (string, error) {
	u, err := url.Parse(g.endpoint)
	if err != nil {
		return "", fmt.Errorf("bad endpoint: %w", err)
	}
	q := u.Query()
	q.Set("sl", g.source)
	q.Set("tl", g.target)
	q.Set("q", text)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	res, err := g.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("call endpoint: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("endpoint status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return "", fmt.Errorf("parse result page: %w", err)
	}
	out := strings.TrimSpace(doc.Find("div.result-container").First().Text())
	if out == "" {
		return "", errors.New("empty translation result")
	}
	return out, nil
}
