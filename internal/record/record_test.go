package record_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jclemens/inkplot/internal/record"
)

func TestNumber(t *testing.T) {
	r := record.Record{"v": 3.5}
	got, err := record.Number(r, "v")
	if err != nil {
		t.Fatalf("Number returned error: %v", err)
	}
	if got != 3.5 {
		t.Errorf("got %v, want 3.5", got)
	}
}

func TestNumberErrors(t *testing.T) {
	cases := []struct {
		name string
		rec  record.Record
		want string
	}{
		{"missing", record.Record{}, "missing"},
		{"null", record.Record{"v": nil}, "null"},
		{"string", record.Record{"v": "ten"}, "non-numeric"},
		{"bool", record.Record{"v": true}, "non-numeric"},
	}
	for _, c := range cases {
		_, err := record.Number(c.rec, "v")
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), `"v"`) {
			t.Errorf("%s: error should name the field: %v", c.name, err)
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q should mention %q", c.name, err, c.want)
		}
	}
}

func TestTime(t *testing.T) {
	r := record.Record{"d": "2024-03-09"}
	got, err := record.Time(r, "d")
	if err != nil {
		t.Fatalf("Time returned error: %v", err)
	}
	want := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimeRejectsNonDates(t *testing.T) {
	if _, err := record.Time(record.Record{"d": "soon"}, "d"); err == nil {
		t.Error("expected error for unparseable date")
	}
	if _, err := record.Time(record.Record{"d": 5.0}, "d"); err == nil {
		t.Error("expected error for numeric date field")
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		rec  record.Record
		want string
	}{
		{record.Record{"f": "Hackney"}, "Hackney"},
		{record.Record{"f": 12.0}, "12"},
		{record.Record{"f": true}, "true"},
		{record.Record{"f": nil}, ""},
		{record.Record{}, ""},
	}
	for _, c := range cases {
		if got := record.Label(c.rec, "f"); got != c.want {
			t.Errorf("Label(%v) = %q, want %q", c.rec["f"], got, c.want)
		}
	}
}

func TestXKindNumbers(t *testing.T) {
	records := []record.Record{{"x": 1.0}, {"x": 2.0}}
	kind, err := record.XKind(records, "x")
	if err != nil {
		t.Fatalf("XKind returned error: %v", err)
	}
	if kind != record.KindNumber {
		t.Errorf("kind = %v, want number", kind)
	}
}

func TestXKindDates(t *testing.T) {
	records := []record.Record{{"x": "2024-01-01"}, {"x": "2024-02-01"}}
	kind, err := record.XKind(records, "x")
	if err != nil {
		t.Fatalf("XKind returned error: %v", err)
	}
	if kind != record.KindTime {
		t.Errorf("kind = %v, want time", kind)
	}
}

func TestXKindRejectsMixed(t *testing.T) {
	records := []record.Record{{"x": 1.0}, {"x": "2024-02-01"}}
	_, err := record.XKind(records, "x")
	if err == nil {
		t.Fatal("expected error for mixed number/date field")
	}
	if !strings.Contains(err.Error(), "mixes") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestXKindRejectsEmpty(t *testing.T) {
	if _, err := record.XKind(nil, "x"); err == nil {
		t.Fatal("expected error for empty record set")
	}
}

func TestXValuesTime(t *testing.T) {
	records := []record.Record{{"x": "1970-01-01"}, {"x": "1970-01-02"}}
	kind, vals, err := record.XValues(records, "x")
	if err != nil {
		t.Fatalf("XValues returned error: %v", err)
	}
	if kind != record.KindTime {
		t.Errorf("kind = %v, want time", kind)
	}
	if vals[0] != 0 || vals[1] != 86400 {
		t.Errorf("vals = %v, want [0 86400]", vals)
	}
}

func TestNumbersNamesRecord(t *testing.T) {
	records := []record.Record{{"v": 1.0}, {"v": "bad"}}
	_, err := record.Numbers(records, "v")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "record 1") {
		t.Errorf("error should name the record index: %v", err)
	}
}
