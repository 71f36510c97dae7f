package core

import (
	"time"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/core/hittest"
	"github.com/deviationtrack/canvaseditor/core/render"
	"github.com/deviationtrack/canvaseditor/core/snapshot"
	"github.com/sirupsen/logrus"
)

type Options struct {
	CanvasWidth  float64
	CanvasHeight float64
	HandleSize   float64
	MinBoxSize   float64 // resize floor, never below element.MinBoxSize
	ExportDelay  time.Duration
	RichText     string // seed

	NewRaster  render.NewRasterFn // raster for the snapshot canvas data
	OnSnapshot func(*snapshot.Snapshot)

	// Runs fn on the goroutine that owns the editor. Async image decodes and timed exports are delivered through it. If nil, images decode synchronously and exports are only emitted by Flush.
	Post func(fn func())

	Log *logrus.Entry
}

func DefaultOptions() *Options {
	return &Options{
		CanvasWidth:  800,
		CanvasHeight: 600,
		HandleSize:   hittest.HandleSize,
		MinBoxSize:   element.MinBoxSize,
		ExportDelay:  snapshot.DefaultDelay,
	}
}

func (opt *Options) normalize() {
	def := DefaultOptions()
	if opt.CanvasWidth <= 0 {
		opt.CanvasWidth = def.CanvasWidth
	}
	if opt.CanvasHeight <= 0 {
		opt.CanvasHeight = def.CanvasHeight
	}
	if opt.HandleSize <= 0 {
		opt.HandleSize = def.HandleSize
	}
	if opt.MinBoxSize < element.MinBoxSize {
		opt.MinBoxSize = element.MinBoxSize
	}
	if opt.ExportDelay <= 0 {
		opt.ExportDelay = def.ExportDelay
	}
	if opt.Log == nil {
		opt.Log = logrus.NewEntry(logrus.StandardLogger())
	}
}
