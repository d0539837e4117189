// Package extract walks a parsed presentation and turns its shapes into
// plain data: tables with an explicit header/body split, a flat textual
// rendering of the whole deck, and per-slide records ready for prompt
// building.
package extract

import (
	"fmt"
	"strings"

	"github.com/gnemet/slidesage/internal/pptx"
)

// UntitledSlide is the title used for slides that carry tables but no
// text frame at all.
const UntitledSlide = "Untitled Slide"

// Row is an ordered sequence of cell text values. Order is significant and
// empty strings are permitted.
type Row []string

// Table is an extracted table with the header split off from the data rows,
// so consumers never have to re-apply a "first row is the header" rule.
type Table struct {
	Header Row
	Body   []Row
}

// SlideRecord is the structured content of one slide.
type SlideRecord struct {
	Title   string
	Content string
	Notes   []string
	Tables  []Table
}

// Tables extracts every table on the slide, in shape order. The first raw
// row becomes the header and the rest the body; a header-only table yields
// an empty body, while a table shape with no rows at all produces no entry.
func Tables(slide pptx.Slide) []Table {
	var tables []Table
	for _, shape := range slide.Shapes {
		if !shape.HasTable() {
			continue
		}
		grid := shape.Grid()
		if len(grid) == 0 {
			continue
		}
		t := Table{Header: Row(grid[0])}
		for _, raw := range grid[1:] {
			t.Body = append(t.Body, Row(raw))
		}
		tables = append(tables, t)
	}
	return tables
}

// Content renders the whole presentation as one formatted string. Each
// slide contributing any text or table becomes a block of
//
//	Slide N:
//	<text frame lines>
//	<tabular layout of each table>
//
// joined by blank lines. N is the slide's 1-based position in the deck, so
// numbering stays aligned with the source even when empty slides between
// contributing ones are omitted.
func Content(pres *pptx.Presentation) string {
	var blocks []string
	for _, slide := range pres.Slides {
		var lines []string
		for _, shape := range slide.Shapes {
			if shape.HasTextFrame() {
				lines = append(lines, shape.Text())
			}
		}
		for _, table := range Tables(slide) {
			lines = append(lines, renderTable(table)...)
		}
		if len(lines) > 0 {
			blocks = append(blocks, fmt.Sprintf("Slide %d:\n%s", slide.Index, strings.Join(lines, "\n")))
		}
	}
	return strings.Join(blocks, "\n\n")
}

// Records builds one SlideRecord per slide that has any text or table
// content; slides with neither are skipped. The first text frame becomes
// the title (or UntitledSlide when the slide has only tables) and the
// remaining text frames join into the content string.
func Records(pres *pptx.Presentation) []SlideRecord {
	var records []SlideRecord
	for _, slide := range pres.Slides {
		var texts []string
		for _, shape := range slide.Shapes {
			if shape.HasTextFrame() {
				texts = append(texts, shape.Text())
			}
		}
		tables := Tables(slide)
		if len(texts) == 0 && len(tables) == 0 {
			continue
		}

		rec := SlideRecord{
			Title:  UntitledSlide,
			Notes:  slide.Notes,
			Tables: tables,
		}
		if len(texts) > 0 {
			rec.Title = texts[0]
		}
		if len(texts) > 1 {
			rec.Content = strings.Join(texts[1:], " ")
		}
		records = append(records, rec)
	}
	return records
}

// renderTable lays the header and body out in aligned columns, padding each
// cell to the widest value in its column.
func renderTable(t Table) []string {
	widths := make([]int, len(t.Header))
	measure := func(row Row) {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	measure(t.Header)
	for _, row := range t.Body {
		measure(row)
	}

	format := func(row Row) string {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		return strings.TrimRight(strings.Join(cells, "  "), " ")
	}

	lines := []string{format(t.Header)}
	for _, row := range t.Body {
		lines = append(lines, format(row))
	}
	return lines
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
