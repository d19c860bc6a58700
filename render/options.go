package render

import (
	"image/color"
	"log/slog"
)

// Option configures Draw.
type Option func(*options)

type options struct {
	width, height int
	supersample   int
	background    color.RGBA
	lineColor     color.RGBA
	lineWidth     float64
	label         bool
	labelColor    color.RGBA
	logger        *slog.Logger
}

// Defaults match the interactive viewer: lavender background, black 2px isolines.
func defaultOptions() options {
	return options{
		width:       512,
		height:      512,
		supersample: 1,
		background:  color.RGBA{R: 204, G: 204, B: 255, A: 255},
		lineColor:   color.RGBA{A: 255},
		lineWidth:   2,
		labelColor:  color.RGBA{A: 255},
	}
}

// WithSize sets the output image size in pixels.
func WithSize(w, h int) Option {
	return func(o *options) { o.width, o.height = w, h }
}

// WithSupersample draws at k times the output size and filters down.
func WithSupersample(k int) Option {
	return func(o *options) { o.supersample = k }
}

// WithBackground sets the clear color.
func WithBackground(c color.RGBA) Option {
	return func(o *options) { o.background = c }
}

// WithLineColor sets the isoline color.
func WithLineColor(c color.RGBA) Option {
	return func(o *options) { o.lineColor = c }
}

// WithLineWidth sets the isoline width in output pixels. Zero hides isolines.
func WithLineWidth(px float64) Option {
	return func(o *options) { o.lineWidth = px }
}

// WithLabel stamps "t=<time>" into the top-left corner.
func WithLabel(on bool) Option {
	return func(o *options) { o.label = on }
}

// WithLogger overrides the package-wide logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
