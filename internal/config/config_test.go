package config_test

import (
	"runtime"
	"testing"

	"github.com/okian/stride/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigDefaults(t *testing.T) {
	convey.Convey("Given the default configuration", t, func() {
		cfg := config.New()

		convey.Convey("Then inputs and outputs point at the default data layout", func() {
			convey.So(cfg.PerformanceCSV, convey.ShouldEqual, "data/performances.csv")
			convey.So(cfg.RecordCSV, convey.ShouldEqual, "data/world_records.csv")
			convey.So(cfg.ContemporaryCSV, convey.ShouldEqual, "data/current_records.csv")
			convey.So(cfg.OutputDir, convey.ShouldEqual, "charts")
		})

		convey.Convey("Then rendering defaults are sane", func() {
			convey.So(cfg.ImageFormat, convey.ShouldEqual, "png")
			convey.So(cfg.ImageWidthCM, convey.ShouldBeGreaterThan, 0)
			convey.So(cfg.ImageHeightCM, convey.ShouldBeGreaterThan, 0)
		})

		convey.Convey("Then the pipeline defaults are sane", func() {
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.QueueSize, convey.ShouldBeGreaterThan, 0)
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 0)
		})

		convey.Convey("Then the reference date defaults to the 2016 cutoff", func() {
			convey.So(cfg.ReferenceDate, convey.ShouldEqual, "2016-07-29")
			rt := cfg.ReferenceTime()
			convey.So(rt.Year(), convey.ShouldEqual, 2016)
			convey.So(int(rt.Month()), convey.ShouldEqual, 7)
			convey.So(rt.Day(), convey.ShouldEqual, 29)
		})
	})
}
