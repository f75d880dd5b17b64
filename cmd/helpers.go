package cmd

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/jclemens/inkplot/internal/app"
	"github.com/jclemens/inkplot/internal/pipeline"
	"github.com/jclemens/inkplot/internal/record"
	"github.com/jclemens/inkplot/internal/store"
)

// readInput returns the records a chart command should draw: the --from
// dataset when set, stdin JSONL otherwise.
func readInput(deps *app.Deps) ([]record.Record, error) {
	if globalFlags.From == "" {
		return pipeline.ReadRecords(os.Stdin)
	}
	s, err := openStore(deps)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	records, found, err := s.Get(globalFlags.From)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("dataset %q not found (see `inkplot store list`)", globalFlags.From)
	}
	return records, nil
}

// openStore opens the dataset store at the configured path.
func openStore(deps *app.Deps) (*store.Store, error) {
	if deps.Config.DBPath == "" {
		return nil, fmt.Errorf("no dataset store path configured (set --db or INKPLOT_DB_PATH)")
	}
	return store.Open(deps.Config.DBPath)
}

// clampWidth bounds a chart width to the terminal when stdout is a TTY,
// so wide defaults don't wrap on narrow terminals. margin reserves room
// for axis labels outside the plot area.
func clampWidth(width, margin int) int {
	if !pipeline.IsTTY() {
		return width
	}
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= margin {
		return width
	}
	if width > cols-margin {
		return cols - margin
	}
	return width
}

// outWriter resolves the --out flag: the named file, or stdout.
// The returned func closes the file when one was opened.
func outWriter() (*os.File, func(), error) {
	if globalFlags.Out == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(globalFlags.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// warn prints a non-fatal diagnostic to stderr unless --quiet is set.
func warn(deps *app.Deps, format string, args ...any) {
	if deps.Config.Quiet {
		return
	}
	fmt.Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

// footer prints the --verbose stats line.
func footer(deps *app.Deps, items int, started time.Time) {
	if !deps.Config.Verbose || deps.Config.Quiet {
		return
	}
	fmt.Fprintf(os.Stderr, "[%d records • %dms]\n", items, time.Since(started).Milliseconds())
}
