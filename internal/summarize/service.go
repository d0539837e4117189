package summarize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gnemet/slidesage/internal/extract"
	"github.com/gnemet/slidesage/internal/pptx"
	"github.com/gnemet/slidesage/internal/prompt"
)

type service struct {
	root     string
	tpl      prompt.Template
	maxChars int // prompt character budget; 0 disables chunking
	gen      Generator
	log      *zap.Logger
}

// Summarize locates the presentation for reportID, extracts its slide
// records, builds the prompt and asks the configured provider for a
// summary. Each stage fails with its own error kind; the provider is never
// contacted when extraction yields nothing.
func (s *service) Summarize(ctx context.Context, reportID string) (string, error) {
	path, err := s.locate(reportID)
	if err != nil {
		s.log.Error("presentation lookup failed", zap.String("report_id", reportID), zap.Error(err))
		return "", err
	}

	pres, err := pptx.Open(path)
	if err != nil {
		s.log.Error("presentation parse failed", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("parse presentation: %w", err)
	}

	records := extract.Records(pres)
	if len(records) == 0 {
		s.log.Error("presentation yielded no content", zap.String("path", path))
		return "", fmt.Errorf("%w: %s", ErrEmptyPresentation, reportID)
	}
	s.log.Info("extracted presentation",
		zap.String("report_id", reportID),
		zap.Int("slides", len(records)))

	p := prompt.Build(records, s.tpl)
	s.log.Info("built prompt",
		zap.Int("chars", len(p)),
		zap.String("preview", preview(p, 100)))

	if s.maxChars > 0 && len(p) > s.maxChars {
		return s.summarizeChunked(ctx, records, reportID)
	}

	summary, err := s.gen.Generate(ctx, p)
	if err != nil {
		perr := &ProviderError{Provider: s.gen.Name(), Err: err}
		s.log.Error("summary generation failed", zap.String("report_id", reportID), zap.Error(perr))
		return "", perr
	}

	s.log.Info("generated summary",
		zap.String("report_id", reportID),
		zap.Int("chars", len(summary)))
	return summary, nil
}

// summarizeChunked handles decks whose prompt exceeds the character budget:
// the records are re-serialized into bounded chunks (titles and table rows
// only), each chunk is summarized on its own call wrapped in the template's
// instructions, and the partial summaries join into one text. A failure on
// any chunk is terminal.
func (s *service) summarizeChunked(ctx context.Context, records []extract.SlideRecord, reportID string) (string, error) {
	chunks := prompt.Split(records, s.maxChars)
	s.log.Info("prompt over budget, summarizing in chunks",
		zap.String("report_id", reportID),
		zap.Int("chunks", len(chunks)))

	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		out, err := s.gen.Generate(ctx, s.tpl.Preamble+chunk+s.tpl.Postamble)
		if err != nil {
			perr := &ProviderError{Provider: s.gen.Name(), Err: err}
			s.log.Error("chunk summarization failed", zap.String("report_id", reportID), zap.Error(perr))
			return "", perr
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, "\n\n"), nil
}

// locate finds the first .pptx (directory-listing order) under
// <root>/<reportID>.
func (s *service) locate(reportID string) (string, error) {
	dir := filepath.Join(s.root, reportID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w for report id %s: %v", ErrNoPresentation, reportID, err)
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".pptx") {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("%w for report id %s", ErrNoPresentation, reportID)
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
