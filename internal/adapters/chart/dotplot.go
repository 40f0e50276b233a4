package chart

import (
	"context"
	"fmt"
	"image/color"
	"sort"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/okian/stride/internal/domain/model"
	"github.com/okian/stride/internal/domain/types"
	"github.com/okian/stride/pkg/metrics"
)

// Dot colors for the summary plot; the per-event charts use the doping
// palette instead.
var (
	dotColorMen   = color.RGBA{R: 0x59, G: 0xa1, B: 0x4f, A: 0xff}
	dotColorWomen = color.RGBA{R: 0xb0, G: 0x7a, B: 0xa1, A: 0xff}
	overlayColor  = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
)

// RenderDotPlot draws the summary of when each contemporary world record was
// set: one row per (gender, event), one dot at the record year.
func (r *PlotRenderer) RenderDotPlot(ctx context.Context, dot *types.DotPlot) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render cancelled: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.ObserveRenderDuration(float64(time.Since(start).Milliseconds()))
	}()

	records := make([]model.ContemporaryRecord, len(dot.Records))
	copy(records, dot.Records)
	// Oldest record at the top makes the age of standing records readable.
	sort.Slice(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year < records[j].Year
		}
		return rowLabel(records[i]) < rowLabel(records[j])
	})

	p := plot.New()
	p.Title.Text = "year the current world record was set"
	p.X.Label.Text = "year"

	labels := make([]string, len(records))
	for i, rec := range records {
		labels[i] = rowLabel(rec)
	}
	p.NominalY(labels...)

	var mens, womens plotter.XYs
	for i, rec := range records {
		xy := plotter.XY{X: float64(rec.Year), Y: float64(i)}
		if rec.Gender == model.Women {
			womens = append(womens, xy)
		} else {
			mens = append(mens, xy)
		}
	}

	for _, group := range []struct {
		name string
		xys  plotter.XYs
		col  color.Color
	}{
		{name: "men", xys: mens, col: dotColorMen},
		{name: "women", xys: womens, col: dotColorWomen},
	} {
		if len(group.xys) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(group.xys)
		if err != nil {
			metrics.RecordRenderError()
			return fmt.Errorf("%w: dot plot: %w", ErrBuildPlot, err)
		}
		scatter.GlyphStyle.Color = group.col
		scatter.GlyphStyle.Radius = glyphRadius
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(group.name, scatter)
	}

	if len(records) == 0 {
		metrics.RecordEmptyChart()
	}

	if err := p.Save(r.width, r.height, dot.OutPath); err != nil {
		metrics.RecordRenderError()
		return fmt.Errorf("%w: %s: %w", ErrSaveChart, dot.OutPath, err)
	}
	metrics.RecordChartRendered()
	return nil
}

func rowLabel(rec model.ContemporaryRecord) string {
	return string(rec.Gender) + " " + rec.Event
}
