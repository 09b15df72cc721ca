package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/AreebaxIrfan/translation-buddy/pkg/services/langdetect"
	"github.com/AreebaxIrfan/translation-buddy/pkg/settings"
)

const (
	openaiTimeout = time.Second * 30

	openaiMaxTokens   = 256
	openaiTemperature = 0.3
)

func newOpenAIClient() *openai.Client {
	occ := openai.DefaultConfig(settings.Current.OpenAIAPIKey)
	occ.HTTPClient = &http.Client{
		Timeout:   openaiTimeout,
		Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
	}
	return openai.NewClientWithConfig(occ)
}

// openaiTranslator asks a chat model for a bare translation.
type openaiTranslator struct {
	oc     *openai.Client
	model  string
	source string
	target string
}

func newOpenAITranslator(oc *openai.Client, model string, source, target langdetect.Language) *openaiTranslator {
	return &openaiTranslator{
		oc:     oc,
		model:  model,
		source: source.Name(),
		target: target.Name(),
	}
}

func (t *openaiTranslator) Translate(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Translate the following %s text to %s. Respond with only the translation, nothing else.\n\n%s",
		t.source, t.target, text)
	res, err := t.oc.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   openaiMaxTokens,
		Temperature: openaiTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", errors.New("no translation returned")
	}
	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}
