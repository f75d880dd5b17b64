package canvas_test

import (
	"strings"
	"testing"

	"github.com/jclemens/inkplot/internal/canvas"
)

func TestNewValidatesDimensions(t *testing.T) {
	if _, err := canvas.New(0, 5); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := canvas.New(5, -1); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestNewStartsBlank(t *testing.T) {
	cv, err := canvas.New(4, 3)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for _, line := range cv.Render(canvas.Plain{}) {
		if line != "    " {
			t.Errorf("blank canvas row = %q, want 4 spaces", line)
		}
	}
}

func TestSetLastWriterWins(t *testing.T) {
	cv, _ := canvas.New(3, 3)
	if err := cv.Set(1, 1, 'a', canvas.TagNone); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := cv.Set(1, 1, 'b', canvas.Series(2)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	cell := cv.At(1, 1)
	if cell.Glyph != 'b' {
		t.Errorf("glyph = %q, want b", cell.Glyph)
	}
	if cell.Tag.SeriesIndex() != 2 {
		t.Errorf("series index = %d, want 2", cell.Tag.SeriesIndex())
	}
}

func TestSetRejectsOutOfRange(t *testing.T) {
	cv, _ := canvas.New(3, 3)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if err := cv.Set(rc[0], rc[1], 'x', canvas.TagNone); err == nil {
			t.Errorf("Set(%d,%d) should fail on 3x3 canvas", rc[0], rc[1])
		}
	}
}

func TestPlainRender(t *testing.T) {
	cv, _ := canvas.New(3, 2)
	cv.Set(0, 0, '●', canvas.Series(0))
	cv.Set(1, 2, '─', canvas.TagAxis)
	lines := cv.Render(canvas.Plain{})
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "●  " {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != "  ─" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestPlainSprintPassesThrough(t *testing.T) {
	if got := (canvas.Plain{}).Sprint(canvas.Series(3), "hello"); got != "hello" {
		t.Errorf("Plain.Sprint = %q, want hello", got)
	}
}

func TestANSIKeepsGlyphs(t *testing.T) {
	// Whether escapes are emitted depends on the terminal profile; the
	// glyphs themselves must survive either way.
	cv, _ := canvas.New(4, 1)
	cv.Set(0, 1, '●', canvas.Series(0))
	cv.Set(0, 2, '●', canvas.Series(1))
	line := cv.Render(canvas.ANSI{})[0]
	if strings.Count(line, "●") != 2 {
		t.Errorf("ANSI render lost glyphs: %q", line)
	}
	if got := (canvas.ANSI{}).Sprint(canvas.TagLabel, "2024"); !strings.Contains(got, "2024") {
		t.Errorf("ANSI.Sprint lost text: %q", got)
	}
}

func TestSeriesTagRoundTrip(t *testing.T) {
	for i := 0; i < canvas.PaletteSize()+2; i++ {
		if got := canvas.Series(i).SeriesIndex(); got != i {
			t.Errorf("Series(%d).SeriesIndex() = %d", i, got)
		}
	}
	if canvas.TagAxis.SeriesIndex() != -1 {
		t.Error("TagAxis should not be a series tag")
	}
	if canvas.TagNone.SeriesIndex() != -1 {
		t.Error("TagNone should not be a series tag")
	}
}
