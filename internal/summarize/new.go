package summarize

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gnemet/slidesage/internal/config"
	"github.com/gnemet/slidesage/internal/prompt"
)

// New builds a Service from configuration: the presentation storage root,
// the prompt template, and the active provider backend.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (Service, error) {
	name, settings, err := cfg.AI.Active()
	if err != nil {
		return nil, err
	}

	gen, err := newGenerator(ctx, name, settings)
	if err != nil {
		return nil, fmt.Errorf("initialize provider %s: %w", name, err)
	}

	tpl := prompt.ReportSummary
	if cfg.AI.Template == "deliverability" {
		tpl = prompt.DeliverabilityInsights
	}

	return &service{
		root:     cfg.Application.Storage.Presentations,
		tpl:      tpl,
		maxChars: cfg.AI.MaxPromptChars,
		gen:      gen,
		log:      log,
	}, nil
}

func newGenerator(ctx context.Context, name string, settings config.ProviderSettings) (Generator, error) {
	driver := settings.Driver
	if driver == "" {
		driver = name
	}

	switch driver {
	case "titan":
		return newTitanGenerator(ctx, settings)
	case "azure":
		return newAzureGenerator(settings)
	case "gemini":
		return newGeminiGenerator(settings)
	default:
		return nil, fmt.Errorf("unsupported AI driver %q", driver)
	}
}
