// Package app wires together configuration and the chart renderer choice
// into a single Deps struct that commands receive at runtime.
package app

import (
	"github.com/jclemens/inkplot/internal/canvas"
	"github.com/jclemens/inkplot/internal/config"
	"github.com/jclemens/inkplot/internal/pipeline"
)

// Deps holds all runtime dependencies injected into command Run functions.
type Deps struct {
	Config   *config.Config
	Renderer canvas.Renderer
}

// New builds a Deps from resolved config. Color output is used only when
// stdout is a terminal and neither NO_COLOR nor --no-color is set.
func New(cfg *config.Config) *Deps {
	var r canvas.Renderer = canvas.Plain{}
	if !cfg.NoColor && pipeline.IsTTY() {
		r = canvas.ANSI{}
	}
	return &Deps{
		Config:   cfg,
		Renderer: r,
	}
}
