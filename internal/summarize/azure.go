package summarize

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/gnemet/slidesage/internal/config"
)

const azureSystemMessage = "You are an expert data analyst and report summarizer."

// azureGenerator targets a chat-completion deployment on Azure OpenAI. The
// first choice's message content is returned untouched.
type azureGenerator struct {
	client   *openai.Client
	settings config.ProviderSettings
}

func newAzureGenerator(settings config.ProviderSettings) (*azureGenerator, error) {
	if settings.Key == "" || settings.Endpoint == "" {
		return nil, fmt.Errorf("azure key and endpoint are required")
	}
	cfg := openai.DefaultAzureConfig(settings.Key, settings.Endpoint)
	return &azureGenerator{
		client:   openai.NewClientWithConfig(cfg),
		settings: settings,
	}, nil
}

func (g *azureGenerator) Name() string { return "azure" }

func (g *azureGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.settings.Deployment,
		Temperature: float32(g.settings.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: azureSystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
