package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/gnemet/slidesage/internal/config"
)

// titanGenerator targets Amazon Titan text models on the Bedrock runtime.
// The model may return several completions; they all come back, joined by
// blank lines when there is more than one.
type titanGenerator struct {
	client   *bedrockruntime.Client
	settings config.ProviderSettings
}

type titanRequest struct {
	InputText            string                `json:"inputText"`
	TextGenerationConfig titanGenerationConfig `json:"textGenerationConfig"`
}

type titanGenerationConfig struct {
	MaxTokenCount int      `json:"maxTokenCount"`
	StopSequences []string `json:"stopSequences"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"topP"`
}

type titanResponse struct {
	Results []struct {
		TokenCount       int    `json:"tokenCount"`
		OutputText       string `json:"outputText"`
		CompletionReason string `json:"completionReason"`
	} `json:"results"`
}

func newTitanGenerator(ctx context.Context, settings config.ProviderSettings) (*titanGenerator, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(settings.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &titanGenerator{
		client:   bedrockruntime.NewFromConfig(awsCfg),
		settings: settings,
	}, nil
}

func (g *titanGenerator) Name() string { return "titan" }

func (g *titanGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	stop := g.settings.StopSequences
	if stop == nil {
		stop = []string{}
	}

	body, err := json.Marshal(titanRequest{
		InputText: prompt,
		TextGenerationConfig: titanGenerationConfig{
			MaxTokenCount: g.settings.MaxTokens,
			StopSequences: stop,
			Temperature:   g.settings.Temperature,
			TopP:          g.settings.TopP,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	out, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.settings.Model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("invoke model: %w", err)
	}

	var resp titanResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(resp.Results) == 0 {
		return "", fmt.Errorf("model returned no results")
	}

	texts := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		texts = append(texts, r.OutputText)
	}
	return strings.Join(texts, "\n\n"), nil
}
