// Package transform implements stateless shaping operators that take a
// slice of Records and return a new slice. Each operator is a pure
// function; no side effects, no I/O.
package transform

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jclemens/inkplot/internal/record"
)

// ─── Equality Filter ──────────────────────────────────────────────────────────

// Where keeps records whose field renders equal to want.
// The clause format is "field=value".
func Where(records []record.Record, clause string) ([]record.Record, error) {
	field, want, ok := strings.Cut(clause, "=")
	if !ok || field == "" {
		return nil, fmt.Errorf("where: clause %q must be field=value", clause)
	}
	var out []record.Record
	for _, r := range records {
		if record.Label(r, field) == want {
			out = append(out, r)
		}
	}
	return out, nil
}

// ─── Date Range Filter ────────────────────────────────────────────────────────

// Between keeps records whose date field falls in [after, before].
// Zero bounds are open ends. Records where the field does not parse as a
// date fail the whole filter — a half-filtered dataset charts wrong.
func Between(records []record.Record, field string, after, before time.Time) ([]record.Record, error) {
	var out []record.Record
	for i, r := range records {
		t, err := record.Time(r, field)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if !after.IsZero() && t.Before(after) {
			continue
		}
		if !before.IsZero() && t.After(before) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// ─── Sort ─────────────────────────────────────────────────────────────────────

// SortBy orders records by field, ascending. Numeric fields sort
// numerically, everything else lexically by rendered label. The sort is
// stable so equal keys keep input order.
func SortBy(records []record.Record, field string, descending bool) []record.Record {
	out := make([]record.Record, len(records))
	copy(out, records)

	numeric := true
	for _, r := range out {
		if _, err := record.Number(r, field); err != nil {
			numeric = false
			break
		}
	}

	less := func(i, j int) bool {
		if numeric {
			a, _ := record.Number(out[i], field)
			b, _ := record.Number(out[j], field)
			return a < b
		}
		return record.Label(out[i], field) < record.Label(out[j], field)
	}
	if descending {
		orig := less
		less = func(i, j int) bool { return orig(j, i) }
	}
	sort.SliceStable(out, less)
	return out
}

// ─── Head ─────────────────────────────────────────────────────────────────────

// Head returns the first n records (all of them when n <= 0 or n exceeds
// the input length).
func Head(records []record.Record, n int) []record.Record {
	if n <= 0 || n >= len(records) {
		return records
	}
	return records[:n]
}
