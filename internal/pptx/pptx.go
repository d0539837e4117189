// Package pptx reads PowerPoint (.pptx) files into a small document model:
// ordered slides holding ordered shapes, where a shape is either a text frame
// or a table. The format is a zip archive of XML parts; slides live under
// ppt/slides/slideN.xml and speaker notes under ppt/notesSlides/notesSlideN.xml.
package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Presentation is a parsed slide deck.
type Presentation struct {
	Path   string
	Slides []Slide
}

// Slide holds the shapes of one slide in document order. Index is 1-based
// and follows the slide's position in the deck, so callers can report
// "Slide N" numbering that matches what a viewer shows.
type Slide struct {
	Index  int
	Shapes []Shape
	Notes  []string
}

// ShapeKind discriminates the two shape types the model carries.
type ShapeKind int

const (
	ShapeText ShapeKind = iota
	ShapeTable
)

// Shape is a single visual element on a slide. Only text frames and tables
// are modeled; pictures, charts and other shapes are dropped at parse time.
type Shape struct {
	kind ShapeKind
	text string
	grid [][]string
}

// NewTextShape builds a text-frame shape. Mainly useful for constructing
// fixtures without a zip archive.
func NewTextShape(text string) Shape {
	return Shape{kind: ShapeText, text: strings.TrimSpace(text)}
}

// NewTableShape builds a table shape from raw rows of cell text.
func NewTableShape(grid [][]string) Shape {
	return Shape{kind: ShapeTable, grid: grid}
}

// HasTextFrame reports whether the shape carries a readable text frame.
func (s Shape) HasTextFrame() bool { return s.kind == ShapeText }

// HasTable reports whether the shape is a table.
func (s Shape) HasTable() bool { return s.kind == ShapeTable }

// Text returns the shape's trimmed text. Empty for table shapes.
func (s Shape) Text() string { return s.text }

// Grid returns the table's raw rows of trimmed cell text, in source order.
// Nil for text shapes.
func (s Shape) Grid() [][]string { return s.grid }

// Open reads and parses the presentation at path.
func Open(path string) (*Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presentation: %w", err)
	}
	pres, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	pres.Path = path
	return pres, nil
}

// Parse parses raw .pptx bytes.
func Parse(data []byte) (*Presentation, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	// Collect slide parts keyed by their file number, e.g.
	// ppt/slides/slide12.xml -> 12. Zip entry order is not reliable.
	slideFiles := make(map[int]*zip.File)
	notesFiles := make(map[int]*zip.File)
	var nums []int

	for _, f := range zr.File {
		if n, ok := partNumber(f.Name, "ppt/slides/slide"); ok {
			slideFiles[n] = f
			nums = append(nums, n)
		}
		if n, ok := partNumber(f.Name, "ppt/notesSlides/notesSlide"); ok {
			notesFiles[n] = f
		}
	}
	sort.Ints(nums)

	pres := &Presentation{}
	for i, n := range nums {
		rc, err := slideFiles[n].Open()
		if err != nil {
			return nil, fmt.Errorf("open slide %d: %w", n, err)
		}
		shapes, err := parseSlideXML(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("parse slide %d: %w", n, err)
		}

		slide := Slide{Index: i + 1, Shapes: shapes}
		if nf, ok := notesFiles[n]; ok {
			if nrc, err := nf.Open(); err == nil {
				slide.Notes = parseNotesXML(nrc)
				nrc.Close()
			}
		}
		pres.Slides = append(pres.Slides, slide)
	}

	return pres, nil
}

func partNumber(name, prefix string) (int, bool) {
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".xml") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".xml"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseSlideXML walks one slide part with a token decoder and collects text
// shapes (<p:sp> with a <p:txBody>) and tables (<a:tbl> inside a graphic
// frame) in document order. Runs within a paragraph concatenate directly;
// paragraphs separate with a newline.
func parseSlideXML(r io.Reader) ([]Shape, error) {
	dec := xml.NewDecoder(r)

	var shapes []Shape
	var shapeText *strings.Builder
	hasTxBody := false

	var grid [][]string
	var row []string
	var cell *strings.Builder
	inTable := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "sp":
				shapeText = &strings.Builder{}
				hasTxBody = false

			case "txBody":
				if shapeText != nil && !inTable {
					hasTxBody = true
				}

			case "tbl":
				inTable = true
				grid = nil

			case "tr":
				if inTable {
					row = []string{}
				}

			case "tc":
				if inTable {
					cell = &strings.Builder{}
				}

			case "t":
				var text string
				if err := dec.DecodeElement(&text, &el); err != nil {
					return nil, err
				}
				switch {
				case cell != nil:
					cell.WriteString(text)
				case shapeText != nil && hasTxBody:
					shapeText.WriteString(text)
				}
			}

		case xml.EndElement:
			switch el.Name.Local {
			case "p":
				// Paragraph boundary inside a text frame or cell.
				if cell != nil {
					cell.WriteString("\n")
				} else if shapeText != nil && hasTxBody {
					shapeText.WriteString("\n")
				}

			case "tc":
				if cell != nil {
					row = append(row, strings.TrimSpace(cell.String()))
					cell = nil
				}

			case "tr":
				if inTable && row != nil {
					grid = append(grid, row)
					row = nil
				}

			case "tbl":
				if inTable {
					shapes = append(shapes, Shape{kind: ShapeTable, grid: grid})
					grid = nil
					inTable = false
				}

			case "sp":
				if shapeText != nil && hasTxBody {
					shapes = append(shapes, Shape{kind: ShapeText, text: strings.TrimSpace(shapeText.String())})
				}
				shapeText = nil
				hasTxBody = false
			}
		}
	}

	return shapes, nil
}

// parseNotesXML gathers the non-empty text runs of a notes part.
func parseNotesXML(r io.Reader) []string {
	dec := xml.NewDecoder(r)
	var notes []string
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if el, ok := tok.(xml.StartElement); ok && el.Name.Local == "t" {
			var t string
			if err := dec.DecodeElement(&t, &el); err == nil {
				if trimmed := strings.TrimSpace(t); trimmed != "" {
					notes = append(notes, trimmed)
				}
			}
		}
	}
	return notes
}
