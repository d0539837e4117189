package summarize

import "context"

// Service turns a report id into a natural-language summary of the
// presentation stored for that report.
type Service interface {
	Summarize(ctx context.Context, reportID string) (string, error)
}

// Generator sends a finished prompt to a hosted text-generation model and
// returns the generated text.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
