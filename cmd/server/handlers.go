package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/russross/blackfriday/v2"
	"go.uber.org/zap"

	"github.com/gnemet/slidesage/internal/summarize"
)

const htmlShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Summary %s</title></head>
<body>
%s</body>
</html>
`

// handleSummarize serves GET /summarize?report_id=R. The summary comes back
// as plain text, or rendered to HTML with format=html.
func handleSummarize(svc summarize.Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		reportID := r.URL.Query().Get("report_id")
		if reportID == "" {
			http.Error(w, "Missing report_id", http.StatusBadRequest)
			return
		}

		summary, err := svc.Summarize(r.Context(), reportID)
		if err != nil {
			writeError(w, logger, reportID, err)
			return
		}

		if r.URL.Query().Get("format") == "html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			rendered := blackfriday.Run([]byte(summary))
			fmt.Fprintf(w, htmlShell, reportID, rendered)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, summary)
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, reportID string, err error) {
	var perr *summarize.ProviderError
	switch {
	case errors.Is(err, summarize.ErrNoPresentation):
		http.Error(w, fmt.Sprintf("No presentation found for report %s", reportID), http.StatusNotFound)
	case errors.Is(err, summarize.ErrEmptyPresentation):
		http.Error(w, fmt.Sprintf("Presentation for report %s has no content", reportID), http.StatusUnprocessableEntity)
	case errors.As(err, &perr):
		http.Error(w, "Summary generation failed", http.StatusBadGateway)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
	logger.Error("summarize request failed", zap.String("report_id", reportID), zap.Error(err))
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}
