package transform_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jclemens/inkplot/internal/record"
	"github.com/jclemens/inkplot/internal/transform"
)

func boroughs() []record.Record {
	return []record.Record{
		{"borough": "Hackney", "count": 12.0, "date": "2024-01-10"},
		{"borough": "Camden", "count": 7.0, "date": "2024-02-15"},
		{"borough": "Hackney", "count": 9.0, "date": "2024-03-20"},
	}
}

func TestWhere(t *testing.T) {
	out, err := transform.Where(boroughs(), "borough=Hackney")
	if err != nil {
		t.Fatalf("Where returned error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}
	for _, r := range out {
		if r["borough"] != "Hackney" {
			t.Errorf("unexpected record: %v", r)
		}
	}
}

func TestWhereMatchesRenderedNumbers(t *testing.T) {
	out, err := transform.Where(boroughs(), "count=7")
	if err != nil {
		t.Fatalf("Where returned error: %v", err)
	}
	if len(out) != 1 || out[0]["borough"] != "Camden" {
		t.Errorf("got %v", out)
	}
}

func TestWhereRejectsBadClause(t *testing.T) {
	for _, clause := range []string{"borough", "=value", ""} {
		if _, err := transform.Where(boroughs(), clause); err == nil {
			t.Errorf("clause %q should be rejected", clause)
		}
	}
}

func TestBetween(t *testing.T) {
	after := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	out, err := transform.Between(boroughs(), "date", after, before)
	if err != nil {
		t.Fatalf("Between returned error: %v", err)
	}
	if len(out) != 1 || out[0]["borough"] != "Camden" {
		t.Errorf("got %v", out)
	}
}

func TestBetweenOpenEnds(t *testing.T) {
	out, err := transform.Between(boroughs(), "date", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("Between returned error: %v", err)
	}
	if len(out) != 3 {
		t.Errorf("open-ended range should keep everything, got %d", len(out))
	}

	after := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	out, err = transform.Between(boroughs(), "date", after, time.Time{})
	if err != nil {
		t.Fatalf("Between returned error: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("after-only range should keep 2, got %d", len(out))
	}
}

func TestBetweenFailsOnUnparseableDate(t *testing.T) {
	records := append(boroughs(), record.Record{"borough": "Brent", "date": "sometime"})
	_, err := transform.Between(records, "date", time.Time{}, time.Time{})
	if err == nil {
		t.Fatal("expected error for unparseable date")
	}
	if !strings.Contains(err.Error(), "record 3") {
		t.Errorf("error should name the record: %v", err)
	}
}

func TestSortByNumeric(t *testing.T) {
	out := transform.SortBy(boroughs(), "count", false)
	if out[0]["count"] != 7.0 || out[2]["count"] != 12.0 {
		t.Errorf("ascending numeric sort wrong: %v", out)
	}
	desc := transform.SortBy(boroughs(), "count", true)
	if desc[0]["count"] != 12.0 {
		t.Errorf("descending numeric sort wrong: %v", desc)
	}
}

func TestSortByLexical(t *testing.T) {
	out := transform.SortBy(boroughs(), "borough", false)
	if out[0]["borough"] != "Camden" {
		t.Errorf("lexical sort wrong: %v", out)
	}
	// Stable: the two Hackney rows keep their input order.
	if out[1]["count"] != 12.0 || out[2]["count"] != 9.0 {
		t.Errorf("equal keys should keep input order: %v", out)
	}
}

func TestSortByDoesNotMutateInput(t *testing.T) {
	records := boroughs()
	transform.SortBy(records, "count", false)
	if records[0]["borough"] != "Hackney" {
		t.Errorf("input slice was reordered: %v", records)
	}
}

func TestHead(t *testing.T) {
	records := boroughs()
	if got := transform.Head(records, 2); len(got) != 2 {
		t.Errorf("Head(2) = %d records", len(got))
	}
	if got := transform.Head(records, 0); len(got) != 3 {
		t.Errorf("Head(0) should keep everything, got %d", len(got))
	}
	if got := transform.Head(records, 10); len(got) != 3 {
		t.Errorf("Head(10) should keep everything, got %d", len(got))
	}
}
