package chart_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	chart "github.com/okian/stride/internal/adapters/chart"
	event "github.com/okian/stride/internal/domain/event"
	model "github.com/okian/stride/internal/domain/model"
	types "github.com/okian/stride/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestPlotRenderer_RenderChart(t *testing.T) {
	Convey("Given a plot renderer", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		r := chart.NewPlotRenderer(chart.WithDimensionsCM(12, 8))

		Convey("When rendering a sprint chart with both program flags", func() {
			out := filepath.Join(dir, "women 100m.png")
			c := &types.Chart{
				Pair:     model.Pair{Gender: model.Women, Event: "100m"},
				Category: event.Sprint,
				Points: []types.Point{
					{Date: day(1988, 7, 16), Value: 10.49, Flag: model.None},
					{Date: day(1983, 6, 8), Value: 10.81, Flag: model.ProgramA},
					{Date: day(2013, 7, 20), Value: 10.85, Flag: model.ProgramB},
				},
				Overlay: []types.Point{
					{Date: day(1977, 7, 1), Value: 10.88},
					{Date: day(1988, 7, 16), Value: 10.49},
					{Date: day(2016, 7, 29), Value: 10.49},
				},
				OutPath: out,
			}

			err := r.RenderChart(ctx, c)

			Convey("Then an image file is written", func() {
				So(err, ShouldBeNil)
				info, statErr := os.Stat(out)
				So(statErr, ShouldBeNil)
				So(info.Size(), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When rendering a combined-event chart", func() {
			out := filepath.Join(dir, "men decathlon.png")
			c := &types.Chart{
				Pair:     model.Pair{Gender: model.Men, Event: "decathlon"},
				Category: event.Combined,
				Points: []types.Point{
					{Date: day(2015, 8, 29), Value: 9045, Flag: model.None},
					{Date: day(2012, 6, 23), Value: 9039, Flag: model.None},
				},
				OutPath: out,
			}

			err := r.RenderChart(ctx, c)

			Convey("Then it renders without an overlay", func() {
				So(err, ShouldBeNil)
				_, statErr := os.Stat(out)
				So(statErr, ShouldBeNil)
			})
		})

		Convey("When rendering a pair with zero points", func() {
			out := filepath.Join(dir, "women 5000m.png")
			c := &types.Chart{
				Pair:     model.Pair{Gender: model.Women, Event: "5000m"},
				Category: event.Distance,
				OutPath:  out,
			}

			err := r.RenderChart(ctx, c)

			Convey("Then an empty chart is still written", func() {
				So(err, ShouldBeNil)
				_, statErr := os.Stat(out)
				So(statErr, ShouldBeNil)
			})
		})

		Convey("When rendering to svg", func() {
			out := filepath.Join(dir, "men marathon.svg")
			c := &types.Chart{
				Pair:     model.Pair{Gender: model.Men, Event: "marathon"},
				Category: event.Marathon,
				Points: []types.Point{
					{Date: day(2014, 9, 28), Value: 2.048, Flag: model.None},
				},
				OutPath: out,
			}

			So(r.RenderChart(ctx, c), ShouldBeNil)
			_, statErr := os.Stat(out)
			So(statErr, ShouldBeNil)
		})

		Convey("When the output directory is not writable", func() {
			c := &types.Chart{
				Pair:     model.Pair{Gender: model.Men, Event: "100m"},
				Category: event.Sprint,
				Points:   []types.Point{{Date: day(2009, 8, 16), Value: 9.58}},
				OutPath:  filepath.Join(dir, "missing", "men 100m.png"),
			}

			err := r.RenderChart(ctx, c)

			Convey("Then rendering fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			err := r.RenderChart(cancelled, &types.Chart{OutPath: filepath.Join(dir, "x.png")})

			Convey("Then rendering aborts", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestPlotRenderer_RenderDotPlot(t *testing.T) {
	Convey("Given a plot renderer", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		r := chart.NewPlotRenderer(chart.WithDimensionsCM(12, 8))

		Convey("When rendering the contemporary records summary", func() {
			out := filepath.Join(dir, "current records.png")
			dot := &types.DotPlot{
				Records: []model.ContemporaryRecord{
					{Gender: model.Men, Event: "100m", Year: 2009, Sport: "athletics"},
					{Gender: model.Women, Event: "800m", Year: 1983, Sport: "athletics"},
					{Gender: model.Women, Event: "marathon", Year: 2003, Sport: "athletics"},
				},
				OutPath: out,
			}

			err := r.RenderDotPlot(ctx, dot)

			Convey("Then the summary image is written", func() {
				So(err, ShouldBeNil)
				info, statErr := os.Stat(out)
				So(statErr, ShouldBeNil)
				So(info.Size(), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When there are no contemporary records", func() {
			out := filepath.Join(dir, "empty.png")
			err := r.RenderDotPlot(ctx, &types.DotPlot{OutPath: out})

			Convey("Then an empty summary is still written", func() {
				So(err, ShouldBeNil)
				_, statErr := os.Stat(out)
				So(statErr, ShouldBeNil)
			})
		})
	})
}
