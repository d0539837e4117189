// Package prompt assembles extracted slide records into instruction-laden
// prompts for a text-generation model, and can split large decks into
// character-bounded chunks for models with tight input budgets.
package prompt

import (
	"strings"

	"github.com/gnemet/slidesage/internal/extract"
)

// DefaultMaxChars is the chunk budget used when the caller does not supply
// one. Characters are a cheap proxy for provider token limits.
const DefaultMaxChars = 3000

// Template parameterizes Build: the surrounding instructions and which
// parts of each record are serialized. One template per use case replaces
// maintaining near-duplicate generator functions.
type Template struct {
	Preamble       string
	TableIntro     string
	Postamble      string
	IncludeContent bool
	IncludeNotes   bool
}

// ReportSummary asks for a general presentation summary, including the
// free-text content of every slide.
var ReportSummary = Template{
	Preamble:       "You are a report summarizer. Please provide a detailed and easy-to-read summary of the following presentation:\n\n",
	TableIntro:     "Slide Tables:",
	IncludeContent: true,
	Postamble: "Summarize the key points from all slides in a coherent and natural-language manner. " +
		"Provide actionable insights and highlight important trends or patterns.",
}

// DeliverabilityInsights targets decks of email deliverability reporting;
// it serializes titles and tables only.
var DeliverabilityInsights = Template{
	Preamble:   "Analyze the following email deliverability data and provide a detailed, natural-language summary:\n\n",
	TableIntro: "Here is the tabular data:",
	Postamble: "Based on the data provided, generate a detailed and easy-to-read summary. " +
		"Explain deliverability performance, engagement metrics, and patterns in natural " +
		"language without repeating the tabular data verbatim.",
}

// Build serializes the records between the template's preamble and
// postamble. Output is deterministic: identical input yields byte-identical
// prompts.
func Build(records []extract.SlideRecord, tpl Template) string {
	var b strings.Builder
	b.WriteString(tpl.Preamble)

	for _, rec := range records {
		b.WriteString("Slide Title: " + rec.Title + "\n")
		if tpl.IncludeContent && rec.Content != "" {
			b.WriteString("Slide Content: " + rec.Content + "\n")
		}
		if tpl.IncludeNotes && len(rec.Notes) > 0 {
			b.WriteString("Slide Notes: " + strings.Join(rec.Notes, " ") + "\n")
		}
		if len(rec.Tables) > 0 {
			b.WriteString(tpl.TableIntro + "\n")
			for _, t := range rec.Tables {
				b.WriteString("Headers: " + joinRow(t.Header) + "\n")
				b.WriteString("Rows:\n" + joinRows(t.Body) + "\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(tpl.Postamble)
	return b.String()
}

// Split serializes each record to "Slide Title: ...\n" plus one
// comma-joined line per table row and accumulates entries into chunks of at
// most maxChars characters. An entry never straddles two chunks; a single
// entry larger than the budget goes whole into its own oversized chunk
// rather than being split mid-entry.
func Split(records []extract.SlideRecord, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var chunks []string
	current := ""

	for _, rec := range records {
		entry := serializeEntry(rec)
		if len(current)+len(entry) > maxChars && current != "" {
			chunks = append(chunks, current)
			current = entry
		} else {
			current += entry
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}

	return chunks
}

func serializeEntry(rec extract.SlideRecord) string {
	var b strings.Builder
	b.WriteString("Slide Title: " + rec.Title + "\n")
	for _, t := range rec.Tables {
		b.WriteString(joinRow(t.Header) + "\n")
		for _, row := range t.Body {
			b.WriteString(joinRow(row) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func joinRow(row extract.Row) string {
	return strings.Join(row, ", ")
}

func joinRows(rows []extract.Row) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = joinRow(row)
	}
	return strings.Join(lines, "\n")
}
