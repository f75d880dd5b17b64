// Package record defines the canonical data types used throughout inkplot.
// A Record is one observation: an arbitrary mapping from field name to
// value as decoded from a JSONL line. All chart and transform packages
// consume slices of Records and extract typed fields through the helpers
// here, which produce descriptive validation errors naming the offending
// field and value.
package record

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/jclemens/inkplot/internal/util"
)

// Record is a single observation. Values are whatever encoding/json
// produced: string, float64, bool, or nil.
type Record map[string]any

// Kind classifies the values found in a field across a record set.
type Kind int

const (
	KindNumber Kind = iota
	KindTime
)

func (k Kind) String() string {
	if k == KindTime {
		return "time"
	}
	return "number"
}

// Number extracts field as a float64.
// Missing fields, nulls, NaN, and non-numeric values are validation errors.
func Number(r Record, field string) (float64, error) {
	v, ok := r[field]
	if !ok {
		return 0, fmt.Errorf("field %q missing from record", field)
	}
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, fmt.Errorf("field %q: value is NaN", field)
		}
		return n, nil
	case int:
		return float64(n), nil
	case nil:
		return 0, fmt.Errorf("field %q: value is null, expected a number", field)
	default:
		return 0, fmt.Errorf("field %q: non-numeric value %v (%T)", field, v, v)
	}
}

// Time extracts field as a time.Time. Accepts time.Time values directly
// and strings in YYYY-MM-DD or RFC3339 form.
func Time(r Record, field string) (time.Time, error) {
	v, ok := r[field]
	if !ok {
		return time.Time{}, fmt.Errorf("field %q missing from record", field)
	}
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		parsed, err := util.ParseDate(t)
		if err != nil {
			return time.Time{}, fmt.Errorf("field %q: %w", field, err)
		}
		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("field %q: value %v (%T) is not a date", field, v, v)
	}
}

// Label renders field as a display string. Missing fields and nulls
// render empty; numbers render without an exponent.
func Label(r Record, field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case time.Time:
		return util.FormatDate(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// XKind inspects field across all records and reports whether it holds
// numbers or dates. Mixing the two kinds is a validation error — charts
// scaled over a mixed axis would be silently wrong.
func XKind(records []Record, field string) (Kind, error) {
	if len(records) == 0 {
		return KindNumber, fmt.Errorf("field %q: no records to inspect", field)
	}
	kind := KindNumber
	for i, r := range records {
		var k Kind
		if _, err := Number(r, field); err == nil {
			k = KindNumber
		} else if _, terr := Time(r, field); terr == nil {
			k = KindTime
		} else {
			return 0, fmt.Errorf("field %q: value %v is neither number nor date", field, r[field])
		}
		if i == 0 {
			kind = k
			continue
		}
		if k != kind {
			return 0, fmt.Errorf("field %q mixes %s and %s values (record %d has %v)",
				field, kind, k, i, r[field])
		}
	}
	return kind, nil
}

// XValues returns the numeric representation of field for every record:
// the raw float64 for KindNumber, Unix seconds for KindTime. The kind is
// detected (and homogeneity enforced) via XKind.
func XValues(records []Record, field string) (Kind, []float64, error) {
	kind, err := XKind(records, field)
	if err != nil {
		return 0, nil, err
	}
	vals := make([]float64, len(records))
	for i, r := range records {
		switch kind {
		case KindTime:
			t, terr := Time(r, field)
			if terr != nil {
				return 0, nil, terr
			}
			vals[i] = float64(t.Unix())
		default:
			n, nerr := Number(r, field)
			if nerr != nil {
				return 0, nil, nerr
			}
			vals[i] = n
		}
	}
	return kind, vals, nil
}

// Numbers extracts field as a float64 for every record, failing on the
// first record where the field is missing or non-numeric.
func Numbers(records []Record, field string) ([]float64, error) {
	vals := make([]float64, len(records))
	for i, r := range records {
		n, err := Number(r, field)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		vals[i] = n
	}
	return vals, nil
}
