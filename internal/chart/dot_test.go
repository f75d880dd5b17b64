package chart_test

import (
	"strings"
	"testing"

	"github.com/jclemens/inkplot/internal/chart"
	"github.com/jclemens/inkplot/internal/record"
)

// xy builds records from alternating (x, y) pairs. x may be a float64 or
// a date string.
func xy(pairs ...interface{}) []record.Record {
	var out []record.Record
	for i := 0; i < len(pairs)-1; i += 2 {
		out = append(out, record.Record{
			"x": pairs[i],
			"y": pairs[i+1].(float64),
		})
	}
	return out
}

func chartLines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestDotBasic(t *testing.T) {
	records := xy(0.0, 1.0, 1.0, 2.0, 2.0, 3.0)
	out, err := chart.BuildDot(records, "x", "y", chart.Options{Width: 30, Height: 8})
	if err != nil {
		t.Fatalf("BuildDot returned error: %v", err)
	}
	lines := chartLines(out)
	// height rows + tick row + label row
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d:\n%s", len(lines), out)
	}
	if got := strings.Count(out, "●"); got != 3 {
		t.Errorf("expected 3 dots, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "└") {
		t.Error("output missing frame corner")
	}
	if !strings.Contains(out, "┤") {
		t.Error("output missing Y tick glyphs")
	}
}

func TestDotDateAxisLabels(t *testing.T) {
	records := xy(
		"2020-01-01", 1.0,
		"2020-05-01", 2.0,
		"2020-09-01", 3.0,
		"2020-12-31", 4.0,
	)
	out, err := chart.BuildDot(records, "x", "y", chart.Options{Width: 60, Height: 10})
	if err != nil {
		t.Fatalf("BuildDot returned error: %v", err)
	}
	lines := chartLines(out)
	labelRow := lines[len(lines)-1]

	// Y gutter (1 col for "4") + 1 tick column, then the min date flush left
	if idx := strings.Index(labelRow, "2020-01-01"); idx != 2 {
		t.Errorf("min date not left-aligned under plot (index %d): %q", idx, labelRow)
	}
	if !strings.HasSuffix(labelRow, "2020-12-31") {
		t.Errorf("max date not right-aligned: %q", labelRow)
	}
}

func TestDotYAxisLabels(t *testing.T) {
	records := xy(0.0, 0.0, 1.0, 1500.0)
	out, err := chart.BuildDot(records, "x", "y", chart.Options{Width: 20, Height: 5})
	if err != nil {
		t.Fatalf("BuildDot returned error: %v", err)
	}
	lines := chartLines(out)
	if !strings.HasPrefix(lines[0], "1,500") {
		t.Errorf("top row should carry the formatted max: %q", lines[0])
	}
	if !strings.HasPrefix(strings.TrimLeft(lines[4], " "), "0┤") {
		t.Errorf("bottom row should carry the min: %q", lines[4])
	}
}

func TestDotLabelOverlapFails(t *testing.T) {
	records := xy("2020-01-01", 1.0, "2020-12-31", 2.0)
	_, err := chart.BuildDot(records, "x", "y", chart.Options{Width: 12, Height: 5})
	if err == nil {
		t.Fatal("expected overlap error for two 10-char labels in 12 columns")
	}
	if !strings.Contains(err.Error(), "overlap") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestDotRejectsMixedXTypes(t *testing.T) {
	records := xy(1.0, 1.0, "2020-06-01", 2.0)
	_, err := chart.BuildDot(records, "x", "y", chart.Options{})
	if err == nil {
		t.Fatal("expected error for mixed number/date X values")
	}
	if !strings.Contains(err.Error(), "mixes") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestDotSinglePoint(t *testing.T) {
	out, err := chart.BuildDot(xy(5.0, 5.0), "x", "y", chart.Options{Width: 21, Height: 7})
	if err != nil {
		t.Fatalf("single point should render via the midpoint path: %v", err)
	}
	if got := strings.Count(out, "●"); got != 1 {
		t.Errorf("expected 1 dot, got %d", got)
	}
	// Degenerate domain maps to the middle of the canvas
	lines := chartLines(out)
	if !strings.Contains(lines[3], "●") {
		t.Errorf("dot should sit on the middle row:\n%s", out)
	}
}

func TestDotTitleAndLegend(t *testing.T) {
	records := []record.Record{
		{"x": 0.0, "y": 1.0, "party": "Labour"},
		{"x": 1.0, "y": 2.0, "party": "Tory"},
		{"x": 2.0, "y": 3.0, "party": "Labour"},
	}
	out, err := chart.BuildDot(records, "x", "y", chart.Options{
		Width: 30, Height: 6, Title: "Polling", ColorBy: "party",
	})
	if err != nil {
		t.Fatalf("BuildDot returned error: %v", err)
	}
	lines := chartLines(out)
	if lines[0] != "Polling" {
		t.Errorf("first line should be the title: %q", lines[0])
	}
	if !strings.Contains(lines[1], "● Labour") || !strings.Contains(lines[1], "● Tory") {
		t.Errorf("legend should list both series: %q", lines[1])
	}
	// Legend order follows first appearance
	if strings.Index(lines[1], "Labour") > strings.Index(lines[1], "Tory") {
		t.Errorf("legend order should be first-seen: %q", lines[1])
	}
}

func TestDotIdempotent(t *testing.T) {
	records := xy("2021-01-01", 3.0, "2021-06-01", 9.0, "2021-12-31", 6.0)
	opts := chart.Options{Width: 40, Height: 10}
	a, err := chart.BuildDot(records, "x", "y", opts)
	if err != nil {
		t.Fatalf("BuildDot returned error: %v", err)
	}
	b, _ := chart.BuildDot(records, "x", "y", opts)
	if a != b {
		t.Error("identical inputs should produce byte-identical output")
	}
}
