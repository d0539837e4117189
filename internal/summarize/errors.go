package summarize

import (
	"errors"
	"fmt"
)

// The failure modes of a summarization run are kept distinguishable so
// callers can decide between retrying, reporting a missing upload, or
// surfacing a provider outage.
var (
	// ErrNoPresentation means no .pptx file exists for the report id.
	ErrNoPresentation = errors.New("no presentation found")

	// ErrEmptyPresentation means the deck parsed fine but contained no
	// text or table content to summarize.
	ErrEmptyPresentation = errors.New("presentation has no extractable content")
)

// ProviderError wraps a failure from the hosted text-generation backend.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
