// Package pipeline provides helpers for reading and writing Record
// streams via stdin/stdout in JSONL format — the canonical pipe format.
package pipeline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jclemens/inkplot/internal/record"
)

// maxLine is the scanner buffer cap — JSONL rows are small, but leave
// room for wide records.
const maxLine = 1024 * 1024

// ReadRecords reads JSONL from r and returns one Record per line.
// Blank lines and lines starting with "//" are skipped.
func ReadRecords(r io.Reader) ([]record.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLine), maxLine)

	var records []record.Record
	lineNum := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNum++
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var rec record.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", lineNum, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records read from input (is stdin empty?)")
	}
	return records, nil
}

// ParseLine decodes a single JSONL line into a Record. Blank lines and
// "//" comments return (nil, nil) so streaming callers can skip them.
func ParseLine(line string) (record.Record, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "//") {
		return nil, nil
	}
	var rec record.Record
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return rec, nil
}

// WriteJSONL writes records as JSONL to w, with object keys sorted for
// stable output.
func WriteJSONL(w io.Writer, records []record.Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		bw.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				bw.WriteByte(',')
			}
			kb, _ := json.Marshal(k)
			vb, err := json.Marshal(rec[k])
			if err != nil {
				return fmt.Errorf("encoding field %q: %w", k, err)
			}
			bw.Write(kb)
			bw.WriteByte(':')
			bw.Write(vb)
		}
		bw.WriteString("}\n")
	}
	return bw.Flush()
}

// IsTTY returns true if stdout is a terminal (not a pipe).
func IsTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
