// Package format renders numbers and dates for chart labels and table
// cells: thousands separators, fixed decimals, sign display, and percent
// suffixes. All functions are pure.
package format

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Options controls number formatting.
type Options struct {
	// Decimals fixes the number of digits after the decimal point.
	// Negative means "as many as needed" (trailing zeros trimmed).
	Decimals int
	// Sign prefixes positive numbers with "+".
	Sign bool
	// Percent appends a "%" suffix.
	Percent bool
	// Separator is the thousands separator. Empty means ",".
	// Use NoSeparator to disable grouping entirely.
	Separator string
}

// NoSeparator disables thousands grouping when set as Options.Separator.
const NoSeparator = "\x00"

// Number formats v for display. NaN renders as ".".
func Number(v float64, opts Options) string {
	if math.IsNaN(v) {
		return "."
	}

	decimals := opts.Decimals
	if decimals < 0 {
		decimals = -1
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	sep := opts.Separator
	switch sep {
	case "":
		sep = ","
	case NoSeparator:
		sep = ""
	}
	if sep != "" {
		intPart = group(intPart, sep)
	}

	out := intPart + fracPart
	if neg {
		out = "-" + out
	} else if opts.Sign && v > 0 {
		out = "+" + out
	}
	if opts.Percent {
		out += "%"
	}
	return out
}

// Plain formats v with no grouping and no fixed decimals — the compact
// form used in error messages and raw value columns.
func Plain(v float64) string {
	return Number(v, Options{Decimals: -1, Separator: NoSeparator})
}

// group inserts sep every three digits from the right.
func group(digits, sep string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Date formats t as YYYY-MM-DD, the default X-axis date label.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// DateLayout formats t with a custom layout, falling back to Date when
// layout is empty.
func DateLayout(t time.Time, layout string) string {
	if layout == "" {
		return Date(t)
	}
	return t.Format(layout)
}
