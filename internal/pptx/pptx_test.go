package pptx

import (
	"archive/zip"
	"bytes"
	"testing"
)

const slideHeader = `<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree>`
const slideFooter = `</p:spTree></p:cSld></p:sld>`

func textShapeXML(runs ...string) string {
	body := ""
	for _, r := range runs {
		body += `<a:r><a:t>` + r + `</a:t></a:r>`
	}
	return `<p:sp><p:nvSpPr></p:nvSpPr><p:txBody><a:p>` + body + `</a:p></p:txBody></p:sp>`
}

func tableShapeXML(rows [][]string) string {
	s := `<p:graphicFrame><a:graphic><a:graphicData><a:tbl>`
	for _, row := range rows {
		s += `<a:tr>`
		for _, cell := range row {
			s += `<a:tc><a:txBody><a:p><a:r><a:t>` + cell + `</a:t></a:r></a:p></a:txBody></a:tc>`
		}
		s += `</a:tr>`
	}
	return s + `</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`
}

func buildArchive(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

func TestParseInvalidData(t *testing.T) {
	if _, err := Parse([]byte("not a zip file")); err == nil {
		t.Fatal("expected error for invalid data")
	}
}

func TestParseDeck(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"ppt/slides/slide1.xml": slideHeader +
			textShapeXML("Q3 Report") +
			textShapeXML("Intro ", "line") +
			tableShapeXML([][]string{
				{"Region", "Revenue"},
				{"EMEA", "120"},
				{"APAC", "80"},
			}) +
			slideFooter,
		"ppt/slides/slide2.xml": slideHeader + slideFooter,
		"ppt/notesSlides/notesSlide1.xml": `<p:notes xmlns:a="a" xmlns:p="p"><p:sp><p:txBody>` +
			`<a:p><a:r><a:t>Remember the audience</a:t></a:r></a:p></p:txBody></p:sp></p:notes>`,
	})

	pres, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(pres.Slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(pres.Slides))
	}
	if pres.Slides[0].Index != 1 || pres.Slides[1].Index != 2 {
		t.Errorf("slide indexes = %d, %d; want 1, 2", pres.Slides[0].Index, pres.Slides[1].Index)
	}

	shapes := pres.Slides[0].Shapes
	if len(shapes) != 3 {
		t.Fatalf("slide 1 has %d shapes, want 3", len(shapes))
	}
	if !shapes[0].HasTextFrame() || shapes[0].HasTable() {
		t.Error("shape 0 should be a text frame")
	}
	if shapes[0].Text() != "Q3 Report" {
		t.Errorf("shape 0 text = %q", shapes[0].Text())
	}
	if shapes[1].Text() != "Intro line" {
		t.Errorf("runs should concatenate, got %q", shapes[1].Text())
	}
	if !shapes[2].HasTable() || shapes[2].HasTextFrame() {
		t.Error("shape 2 should be a table")
	}

	grid := shapes[2].Grid()
	if len(grid) != 3 {
		t.Fatalf("table has %d rows, want 3", len(grid))
	}
	if grid[0][0] != "Region" || grid[0][1] != "Revenue" {
		t.Errorf("header row = %v", grid[0])
	}
	if grid[1][0] != "EMEA" || grid[2][1] != "80" {
		t.Errorf("data rows = %v", grid[1:])
	}

	if len(pres.Slides[0].Notes) != 1 || pres.Slides[0].Notes[0] != "Remember the audience" {
		t.Errorf("slide 1 notes = %v", pres.Slides[0].Notes)
	}

	if len(pres.Slides[1].Shapes) != 0 {
		t.Errorf("slide 2 should have no shapes, got %d", len(pres.Slides[1].Shapes))
	}
}

func TestParseSlideOrderIsNumeric(t *testing.T) {
	// Zip entry order is alphabetical (slide10 before slide2); parsing
	// must still order slides by their file number.
	data := buildArchive(t, map[string]string{
		"ppt/slides/slide1.xml":  slideHeader + textShapeXML("first") + slideFooter,
		"ppt/slides/slide10.xml": slideHeader + textShapeXML("tenth") + slideFooter,
		"ppt/slides/slide2.xml":  slideHeader + textShapeXML("second") + slideFooter,
	})

	pres, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(pres.Slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(pres.Slides))
	}

	want := []string{"first", "second", "tenth"}
	for i, w := range want {
		if got := pres.Slides[i].Shapes[0].Text(); got != w {
			t.Errorf("slide %d text = %q, want %q", i+1, got, w)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("testdata/does-not-exist.pptx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
