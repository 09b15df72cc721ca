// Package translate holds the two fixed-direction translation handles of a
// chat session and the dispatch pipeline between them.
package translate

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/AreebaxIrfan/translation-buddy/pkg/services/langdetect"
	"github.com/AreebaxIrfan/translation-buddy/pkg/settings"
)

// supported translation providers
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
)

// Fixed chat-surface messages. Wording is part of the bot's contract, keep
// them verbatim.
const (
	MsgNotInitialized  = "Error: Translators not initialized."
	MsgNoConnection    = "Error: No internet connection. Please check your network."
	MsgInvalidInput    = "Error: Please provide valid English or Urdu text."
	MsgUnknownLanguage = "Error: Unable to detect language. Use clear English or Urdu text."
)

// Translator is a single fixed-direction translation handle.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Pair holds both directions of a session.
type Pair struct {
	EnToUr Translator
	UrToEn Translator
}

// Ready reports whether both directions are usable.
func (p *Pair) Ready() bool {
	return p != nil && p.EnToUr != nil && p.UrToEn != nil
}

// NewPair builds both directions for the configured provider.
func NewPair() (*Pair, error) {
	cfg := settings.Current
	switch cfg.Provider {
	case ProviderGoogle:
		return &Pair{
			EnToUr: withBreaker("google-en-ur", newGoogleTranslator(cfg.GoogleEndpoint, langdetect.English, langdetect.Urdu)),
			UrToEn: withBreaker("google-ur-en", newGoogleTranslator(cfg.GoogleEndpoint, langdetect.Urdu, langdetect.English)),
		}, nil
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("openai api key is empty")
		}
		oc := newOpenAIClient()
		return &Pair{
			EnToUr: withBreaker("openai-en-ur", newOpenAITranslator(oc, cfg.OpenAIModel, langdetect.English, langdetect.Urdu)),
			UrToEn: withBreaker("openai-ur-en", newOpenAITranslator(oc, cfg.OpenAIModel, langdetect.Urdu, langdetect.English)),
		}, nil
	}
	return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
}

// CheckProvider verifies the configured provider is constructible without
// touching the network.
func CheckProvider() error {
	cfg := settings.Current
	switch cfg.Provider {
	case ProviderGoogle:
		if _, err := url.ParseRequestURI(cfg.GoogleEndpoint); err != nil {
			return fmt.Errorf("bad google endpoint: %w", err)
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return errors.New("openai api key is empty")
		}
	default:
		return fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	return nil
}

// Dispatch runs one text through the pipeline and returns the chat-surface
// message for both success and failure. The checks run in a fixed order:
// readiness, connectivity, validation, detection, then the translation call.
func Dispatch(ctx context.Context, pair *Pair, prober Prober, text string) string {
	if !pair.Ready() {
		logger().Infow("translate skipped", "reason", "uninitialized")
		return MsgNotInitialized
	}
	if !prober.Online(ctx) {
		logger().Infow("translate skipped", "reason", "offline")
		return MsgNoConnection
	}
	if !langdetect.Validate(text) {
		logger().Infow("translate skipped", "reason", "invalid input", "text", text)
		return MsgInvalidInput
	}

	source := langdetect.Detect(text)
	if source == langdetect.Unknown {
		logger().Infow("translate skipped", "reason", "unknown language", "text", text)
		return MsgUnknownLanguage
	}

	tr, target := pair.EnToUr, langdetect.Urdu
	if source == langdetect.Urdu {
		tr, target = pair.UrToEn, langdetect.English
	}

	out, err := tr.Translate(ctx, text)
	if err != nil {
		logger().Infow("translate fail", "source", source.Code(), "err", err)
		return fmt.Sprintf("Error: Unable to translate. Check your internet connection. (%s)", err)
	}
	logger().Infow("translated", "source", source.Code(), "target", target.Code(), "chars", len(text))
	return fmt.Sprintf("Translation to %s: %s", target.Name(), out)
}
