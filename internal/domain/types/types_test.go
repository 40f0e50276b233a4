package types_test

import (
	"testing"
	"time"

	event "github.com/okian/stride/internal/domain/event"
	model "github.com/okian/stride/internal/domain/model"
	types "github.com/okian/stride/internal/domain/types"
	"github.com/smartystreets/goconvey/convey"
)

func TestChart(t *testing.T) {
	convey.Convey("Given a chart payload", t, func() {
		chart := types.Chart{
			Pair:     model.Pair{Gender: model.Men, Event: "100m"},
			Category: event.Sprint,
			Points: []types.Point{
				{Date: time.Date(2009, 8, 16, 0, 0, 0, 0, time.UTC), Value: 9.58, Flag: model.None},
			},
			OutPath: "charts/men 100m.png",
		}

		convey.Convey("When it carries no overlay points", func() {
			convey.Convey("Then no step line is drawn", func() {
				convey.So(chart.HasOverlay(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When overlay points exist", func() {
			chart.Overlay = []types.Point{
				{Date: time.Date(1991, 8, 25, 0, 0, 0, 0, time.UTC), Value: 9.86},
				{Date: time.Date(2016, 7, 29, 0, 0, 0, 0, time.UTC), Value: 9.58},
			}

			convey.Convey("Then the overlay is drawn", func() {
				convey.So(chart.HasOverlay(), convey.ShouldBeTrue)
				convey.So(chart.Overlay, convey.ShouldHaveLength, 2)
			})
		})
	})
}
