package normalize_test

import (
	"testing"

	event "github.com/okian/stride/internal/domain/event"
	normalize "github.com/okian/stride/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

const tolerance = 1e-9

func TestTableNormalizer_Normalize(t *testing.T) {
	Convey("Given a table normalizer", t, func() {
		n := normalize.NewTableNormalizer()

		Convey("When normalizing sprint results", func() {
			Convey("Then plain decimals parse as seconds", func() {
				m := n.Normalize(event.Sprint, "9.58")
				So(m.Valid, ShouldBeTrue)
				So(m.Value, ShouldAlmostEqual, 9.58, tolerance)
			})

			Convey("And surrounding whitespace is ignored", func() {
				m := n.Normalize(event.Sprint, " 10.49 ")
				So(m.Valid, ShouldBeTrue)
				So(m.Value, ShouldAlmostEqual, 10.49, tolerance)
			})
		})

		Convey("When normalizing distance results", func() {
			Convey("Then MM:SS becomes fractional minutes", func() {
				m := n.Normalize(event.Distance, "3:26.00")
				So(m.Valid, ShouldBeTrue)
				So(m.Value, ShouldAlmostEqual, 3.0+26.0/60.0, tolerance)
			})

			Convey("And a fractional seconds part is carried through", func() {
				m := n.Normalize(event.Distance, "1:43.00")
				So(m.Valid, ShouldBeTrue)
				So(m.Value, ShouldAlmostEqual, 1.0+43.0/60.0, tolerance)
			})

			Convey("And a plain decimal is not a valid distance result", func() {
				m := n.Normalize(event.Distance, "43.18")
				So(m.Valid, ShouldBeFalse)
			})
		})

		Convey("When normalizing marathon results", func() {
			Convey("Then HH:MM:SS becomes fractional hours", func() {
				m := n.Normalize(event.Marathon, "2:02:57")
				So(m.Valid, ShouldBeTrue)
				So(m.Value, ShouldAlmostEqual, 2.0+2.0/60.0+57.0/3600.0, tolerance)
			})

			Convey("And a two-part time is rejected", func() {
				m := n.Normalize(event.Marathon, "2:02")
				So(m.Valid, ShouldBeFalse)
			})
		})

		Convey("When normalizing field and combined results", func() {
			Convey("Then meters parse directly", func() {
				m := n.Normalize(event.Field, "8.95")
				So(m.Valid, ShouldBeTrue)
				So(m.Value, ShouldAlmostEqual, 8.95, tolerance)
			})

			Convey("And point totals parse directly", func() {
				m := n.Normalize(event.Combined, "9045")
				So(m.Valid, ShouldBeTrue)
				So(m.Value, ShouldAlmostEqual, 9045.0, tolerance)
			})
		})

		Convey("When the result string is malformed", func() {
			Convey("Then it yields a missing measure, not a panic", func() {
				for _, raw := range []string{"DNF", "", "a:bc.00", "1:2:3:4", "9,58"} {
					So(n.Normalize(event.Sprint, raw).Valid, ShouldBeFalse)
					So(n.Normalize(event.Distance, raw).Valid, ShouldBeFalse)
					So(n.Normalize(event.Marathon, raw).Valid, ShouldBeFalse)
				}
			})

			Convey("And a non-numeric token inside a time rejects the whole value", func() {
				So(n.Normalize(event.Distance, "3:xx.00").Valid, ShouldBeFalse)
				So(n.Normalize(event.Marathon, "2:xx:57").Valid, ShouldBeFalse)
			})
		})
	})
}

func TestTableNormalizer_Category(t *testing.T) {
	Convey("Given a normalizer with category overrides", t, func() {
		n := normalize.NewTableNormalizer(
			normalize.WithCategoryOverrides(map[string]event.Category{
				"60m indoor": event.Sprint,
				"Marathon":   event.Distance, // deliberately odd override
			}),
		)

		Convey("When resolving an overridden event", func() {
			cat, ok := n.Category("60m indoor")

			Convey("Then the override wins", func() {
				So(ok, ShouldBeTrue)
				So(cat, ShouldEqual, event.Sprint)
			})
		})

		Convey("When an override shadows a table entry", func() {
			cat, ok := n.Category("marathon")

			Convey("Then the override still wins", func() {
				So(ok, ShouldBeTrue)
				So(cat, ShouldEqual, event.Distance)
			})
		})

		Convey("When resolving a table event without an override", func() {
			cat, ok := n.Category("100m")

			Convey("Then the table answers", func() {
				So(ok, ShouldBeTrue)
				So(cat, ShouldEqual, event.Sprint)
			})
		})

		Convey("When the event is unknown everywhere", func() {
			_, ok := n.Category("tug of war")

			Convey("Then resolution fails", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}
