package chart

import "gonum.org/v1/plot/vg"

// Option applies a configuration option to the PlotRenderer.
type Option func(*PlotRenderer)

// WithDimensionsCM sets the output image size in centimeters.
func WithDimensionsCM(width, height float64) Option {
	return func(r *PlotRenderer) {
		if width > 0 && height > 0 {
			r.width = vg.Length(width) * vg.Centimeter
			r.height = vg.Length(height) * vg.Centimeter
		}
	}
}
