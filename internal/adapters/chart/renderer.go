// Package chart renders the batch output images with gonum/plot.
//
// Conventions:
// - The renderer consumes fully prepared payloads (types.Chart, types.DotPlot)
//   and never reaches back into the datasets.
// - Axis ranges are clamped to the performance data after all plotters are
//   added, so a record overlay widens neither axis.
package chart

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/okian/stride/internal/domain/doping"
	"github.com/okian/stride/internal/domain/event"
	"github.com/okian/stride/internal/domain/model"
	"github.com/okian/stride/internal/domain/types"
	"github.com/okian/stride/pkg/metrics"
)

// Default rendering constants.
const (
	defaultWidth  = 24 * vg.Centimeter
	defaultHeight = 16 * vg.Centimeter
	glyphRadius   = vg.Length(2)
	overlayWidth  = vg.Length(1.5)
)

// flagOrder fixes the draw order of scatter groups; later groups draw on top.
var flagOrder = []model.Flag{model.None, model.ProgramB, model.ProgramA}

// Renderer draws and saves chart images.
type Renderer interface {
	// RenderChart draws one (gender, event) scatter, with the record step
	// overlay when the chart carries one, and saves it to chart.OutPath.
	RenderChart(ctx context.Context, chart *types.Chart) error

	// RenderDotPlot draws the summary of when each contemporary world record
	// was set and saves it to dot.OutPath.
	RenderDotPlot(ctx context.Context, dot *types.DotPlot) error
}

// PlotRenderer implements Renderer on gonum.org/v1/plot.
type PlotRenderer struct {
	width  vg.Length
	height vg.Length
}

// NewPlotRenderer creates a renderer with configuration options.
func NewPlotRenderer(opts ...Option) *PlotRenderer {
	r := &PlotRenderer{
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderChart draws one (gender, event) chart.
func (r *PlotRenderer) RenderChart(ctx context.Context, chart *types.Chart) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render cancelled: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.ObserveRenderDuration(float64(time.Since(start).Milliseconds()))
	}()

	p := plot.New()
	p.Title.Text = chart.Pair.String()
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006"}
	p.Y.Label.Text = chart.Category.Unit()
	p.Legend.Top = true
	p.Legend.Left = true

	if chart.Category == event.Combined {
		p.Y.Tick.Marker = commaTicks{}
	}

	if err := r.addScatters(p, chart); err != nil {
		metrics.RecordRenderError()
		return err
	}

	if chart.HasOverlay() {
		if err := addOverlay(p, chart.Overlay); err != nil {
			metrics.RecordRenderError()
			return err
		}
		metrics.RecordOverlayDrawn()
	}

	// Clamp the value axis to the performance data only, after every plotter
	// has had its say; the overlay may lie outside and is clipped.
	if len(chart.Points) > 0 {
		lo, hi := valueRange(chart.Points)
		p.Y.Min, p.Y.Max = lo, hi
		if chart.Category.InvertedAxis() {
			p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
		}
	} else {
		metrics.RecordEmptyChart()
	}

	if err := p.Save(r.width, r.height, chart.OutPath); err != nil {
		metrics.RecordRenderError()
		return fmt.Errorf("%w: %s: %w", ErrSaveChart, chart.OutPath, err)
	}
	metrics.RecordChartRendered()
	return nil
}

// addScatters draws one scatter per doping flag present, palette colors bound
// to meaning regardless of which subset of flags occurs.
func (r *PlotRenderer) addScatters(p *plot.Plot, chart *types.Chart) error {
	for _, flag := range flagOrder {
		var xys plotter.XYs
		for _, pt := range chart.Points {
			if pt.Flag != flag {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(pt.Date.Unix()), Y: pt.Value})
		}
		if len(xys) == 0 {
			continue
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("%w: scatter %s: %w", ErrBuildPlot, flag, err)
		}
		scatter.GlyphStyle.Color = doping.Color(flag)
		scatter.GlyphStyle.Radius = glyphRadius
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)

		if flag != model.None {
			p.Legend.Add(flag.String(), scatter)
		}
	}
	return nil
}

// addOverlay draws the world-record progression as a post-step line.
func addOverlay(p *plot.Plot, overlay []types.Point) error {
	xys := make(plotter.XYs, 0, len(overlay))
	for _, pt := range overlay {
		xys = append(xys, plotter.XY{X: float64(pt.Date.Unix()), Y: pt.Value})
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("%w: overlay: %w", ErrBuildPlot, err)
	}
	line.StepStyle = plotter.PostStep
	line.LineStyle.Color = overlayColor
	line.LineStyle.Width = overlayWidth
	p.Add(line)
	p.Legend.Add("world record", line)
	return nil
}

// valueRange returns the min and max point values.
func valueRange(points []types.Point) (float64, float64) {
	lo, hi := points[0].Value, points[0].Value
	for _, pt := range points[1:] {
		if pt.Value < lo {
			lo = pt.Value
		}
		if pt.Value > hi {
			hi = pt.Value
		}
	}
	return lo, hi
}
