package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/gnemet/slidesage/internal/config"
)

// geminiGenerator targets Google's Gemini models. The client is created per
// call since it needs the call context.
type geminiGenerator struct {
	settings config.ProviderSettings
}

func newGeminiGenerator(settings config.ProviderSettings) (*geminiGenerator, error) {
	if settings.Key == "" {
		return nil, fmt.Errorf("gemini key is required")
	}
	return &geminiGenerator{settings: settings}, nil
}

func (g *geminiGenerator) Name() string { return "gemini" }

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.settings.Key))
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.settings.Model)
	model.SetTemperature(float32(g.settings.Temperature))
	model.SetTopP(float32(g.settings.TopP))
	if g.settings.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(g.settings.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("response contained no text parts")
	}
	return b.String(), nil
}
