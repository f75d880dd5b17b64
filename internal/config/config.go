// Package config handles loading and resolving inkplot configuration.
// Resolution order (first non-empty value wins):
//  1. CLI flags
//  2. Environment variables (INKPLOT_DB_PATH, NO_COLOR)
//  3. config.json in the current working directory
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultConfigFile   = "config.json"
	DefaultFormat       = "table"
	DefaultBarWidth     = 40
	DefaultPlotWidth    = 60
	DefaultPlotHeight   = 20
	DefaultPanelsPerRow = 3
	EnvDBPath           = "INKPLOT_DB_PATH"
	EnvNoColor          = "NO_COLOR"
)

// File is the on-disk representation of config.json.
type File struct {
	DefaultFormat string `json:"default_format"`
	BarWidth      int    `json:"bar_width"`
	PlotWidth     int    `json:"plot_width"`
	PlotHeight    int    `json:"plot_height"`
	PanelsPerRow  int    `json:"panels_per_row"`
	NoColor       bool   `json:"no_color"`
	DBPath        string `json:"db_path"`
}

// Config is the fully-resolved runtime configuration.
// All callers use this struct; the File is only read during loading.
type Config struct {
	Format       string
	BarWidth     int
	PlotWidth    int
	PlotHeight   int
	PanelsPerRow int
	NoColor      bool
	DBPath       string
	ConfigPath   string // path of the config.json that was loaded (empty if none found)

	// Runtime overrides set from CLI flags after Load()
	Quiet   bool
	Verbose bool
}

// Load resolves configuration from file and environment. CLI flag
// overrides are applied by the cmd layer afterwards.
func Load() (*Config, error) {
	cfg := &Config{
		Format:       DefaultFormat,
		BarWidth:     DefaultBarWidth,
		PlotWidth:    DefaultPlotWidth,
		PlotHeight:   DefaultPlotHeight,
		PanelsPerRow: DefaultPanelsPerRow,
	}

	// Layer 1: config.json (lowest priority)
	if f, path, err := loadFile(); err == nil {
		applyFile(cfg, f, path)
	}

	// Layer 2: environment variables
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if os.Getenv(EnvNoColor) != "" {
		cfg.NoColor = true
	}

	// Set default DB path if still unset
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.DBPath = filepath.Join(home, ".inkplot", "inkplot.db")
		}
	}

	return cfg, nil
}

// loadFile attempts to read config.json from the current working directory.
func loadFile() (*File, string, error) {
	path, err := filepath.Abs(DefaultConfigFile)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("config.json not found at %s", path)
		}
		return nil, "", fmt.Errorf("reading config.json: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("parsing config.json: %w", err)
	}
	return &f, path, nil
}

// applyFile copies values from a parsed File into cfg,
// skipping any fields that are zero/empty.
func applyFile(cfg *Config, f *File, path string) {
	cfg.ConfigPath = path
	if f.DefaultFormat != "" {
		cfg.Format = f.DefaultFormat
	}
	if f.BarWidth > 0 {
		cfg.BarWidth = f.BarWidth
	}
	if f.PlotWidth > 0 {
		cfg.PlotWidth = f.PlotWidth
	}
	if f.PlotHeight > 0 {
		cfg.PlotHeight = f.PlotHeight
	}
	if f.PanelsPerRow > 0 {
		cfg.PanelsPerRow = f.PanelsPerRow
	}
	if f.NoColor {
		cfg.NoColor = true
	}
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}
}

// Template returns a File populated with the defaults, suitable for
// writing an initial config.json via `inkplot config init`.
func Template() File {
	return File{
		DefaultFormat: DefaultFormat,
		BarWidth:      DefaultBarWidth,
		PlotWidth:     DefaultPlotWidth,
		PlotHeight:    DefaultPlotHeight,
		PanelsPerRow:  DefaultPanelsPerRow,
	}
}

// WriteFile serialises a File to the given path.
func WriteFile(path string, f File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0600)
}
