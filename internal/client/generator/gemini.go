// Package generator drafts slides from a free-text prompt using the Gemini
// generative language API.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/dmitrijs2005/deckkeeper/internal/deck"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"
)

var ErrNoAPIKey = errors.New("generator api key is not configured")

// Generator turns a prompt into draft slides. Implementations either return
// every slide or an error, never a partial result.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]deck.Slide, error)
}

type GeminiGenerator struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewGeminiGenerator(apiKey, model, baseURL string, timeout time.Duration) *GeminiGenerator {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &GeminiGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

const promptTemplate = `
Crie uma série de slides educacionais sobre o seguinte tema: "%s"

Responda em JSON com a seguinte estrutura:
{
  "slides": [
    {
      "layout": "standard|timeline|dark-orbit|chart|quote",
      "chapter": "Nome da seção",
      "title": "Título do slide",
      "text": ["parágrafo 1", "parágrafo 2", ...],
      "highlight": "citação opcional"
    }
  ]
}

Crie entre 5 e 10 slides. Cada slide deve ter:
- chapter: uma seção ou tema (ex: "Introdução", "Ponto 1", "Conclusão")
- title: título descritivo
- text: array de parágrafos (máx 3-4 por slide)
- highlight: opcional, uma citação ou frase importante
- layout: escolha variedade entre os 5 tipos disponíveis

IMPORTANTE: Responda APENAS com o JSON, sem markdown, sem comentários.
`

// BuildPrompt wraps the user's topic in the slide-shape instructions.
func BuildPrompt(topic string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(topic))
}

type part struct {
	Text string `json:"text"`
}

type contentBlock struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateRequest struct {
	Contents         []contentBlock   `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      contentBlock `json:"content"`
		FinishReason string       `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// rejectedKey reports an invalid key. The API answers those with 400
// INVALID_ARGUMENT and the reason API_KEY_INVALID in the error details.
func rejectedKey(status string, raw []byte) bool {
	switch status {
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return true
	case "INVALID_ARGUMENT":
		return bytes.Contains(raw, []byte("API_KEY_INVALID"))
	}
	return false
}

func (g *GeminiGenerator) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
}

// Generate asks the model for slides about prompt and parses the reply
// strictly with deck.ParseDrafts.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) ([]deck.Slide, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: describe the topic of the slides to generate", common.ErrValidation)
	}
	if g.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []contentBlock{{Role: "user", Parts: []part{{Text: BuildPrompt(prompt)}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrGeneratorUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrGeneratorUnavailable, err)
	}

	var out generateResponse
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		switch {
		case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden,
			out.Error != nil && rejectedKey(out.Error.Status, raw):
			return nil, fmt.Errorf("%w: %s", common.ErrGeneratorRejected, msg)
		case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= http.StatusInternalServerError:
			return nil, fmt.Errorf("%w: %s", common.ErrGeneratorUnavailable, msg)
		default:
			return nil, fmt.Errorf("generator returned %d: %s", resp.StatusCode, msg)
		}
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: malformed generator response: %v", common.ErrValidation, decodeErr)
	}
	if len(out.Candidates) == 0 {
		return nil, fmt.Errorf("%w: generator returned no candidates", common.ErrValidation)
	}

	var text strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	return deck.ParseDrafts(text.String())
}
