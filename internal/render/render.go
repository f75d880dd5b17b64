// Package render converts record sets into human-readable or
// machine-parseable output. Each format is a separate function; the
// top-level Render dispatcher selects based on the format string.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/jclemens/inkplot/internal/pipeline"
	"github.com/jclemens/inkplot/internal/record"
)

// Format constants matching --format flag values.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatMD    = "md"
)

// Render writes records to w in the specified format.
func Render(w io.Writer, records []record.Record, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, records)
	case FormatJSONL:
		return pipeline.WriteJSONL(w, records)
	case FormatCSV:
		return renderDelimited(w, records, ',')
	case FormatTSV:
		return renderDelimited(w, records, '\t')
	case FormatMD:
		return renderMarkdown(w, records)
	case FormatTable, "":
		return renderTable(w, records)
	default:
		return fmt.Errorf("unknown format %q (want table|json|jsonl|csv|tsv|md)", format)
	}
}

// RenderTo writes to stdout by default; if path is non-empty, writes to
// the named file.
func RenderTo(path string, records []record.Record, format string) error {
	if path == "" {
		return Render(os.Stdout, records, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	return Render(f, records, format)
}

// columns returns the union of field names across records, sorted.
// Records are maps, so there is no input order to preserve; sorting keeps
// the column order deterministic.
func columns(records []record.Record) []string {
	var cols []string
	seen := map[string]bool{}
	for _, r := range records {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

func row(r record.Record, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = record.Label(r, c)
	}
	return out
}

// ─── Table ────────────────────────────────────────────────────────────────────

func renderTable(w io.Writer, records []record.Record) error {
	cols := columns(records)
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(cols)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)
	for _, r := range records {
		tw.Append(row(r, cols))
	}
	tw.Render()
	return nil
}

// ─── JSON ─────────────────────────────────────────────────────────────────────

func renderJSON(w io.Writer, records []record.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// ─── CSV / TSV ────────────────────────────────────────────────────────────────

func renderDelimited(w io.Writer, records []record.Record, sep rune) error {
	cols := columns(records)
	cw := csv.NewWriter(w)
	cw.Comma = sep
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(row(r, cols)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ─── Markdown ─────────────────────────────────────────────────────────────────

func renderMarkdown(w io.Writer, records []record.Record) error {
	cols := columns(records)
	fmt.Fprint(w, "|")
	for _, c := range cols {
		fmt.Fprintf(w, " %s |", mdEscape(c))
	}
	fmt.Fprint(w, "\n|")
	for range cols {
		fmt.Fprint(w, "----|")
	}
	fmt.Fprintln(w)
	for _, r := range records {
		fmt.Fprint(w, "|")
		for _, cell := range row(r, cols) {
			fmt.Fprintf(w, " %s |", mdEscape(cell))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func mdEscape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '|':
			out = append(out, '\\', '|')
		case '\n':
			out = append(out, ' ')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
