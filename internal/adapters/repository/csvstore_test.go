package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	repository "github.com/okian/stride/internal/adapters/repository"
	model "github.com/okian/stride/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const performanceCSV = `Result,Competitor,Nat,Venue,Date,Gender,Event,StateDope
9.58,Usain Bolt,JAM,Berlin,2009-08-16,Men,100m,none
9.63,Usain Bolt,JAM,London,2012-08-05,Men,100m,none
9.63,Usain Bolt,JAM,London,2012-08-05,Men,100m,none
1:53.28,Jarmila Kratochvilova,TCH,Munich,1983-07-26,Women,800m,none
4:36.45,Marita Koch,GDR,,1984-08-16,Women,400m,none
10.49,Florence Griffith-Joyner,USA,Indianapolis,1988-07-16,Women,100m,none
short,row
`

const recordCSV = `Result,Date,Event,Gender
9.86,1991-08-25,100m,Men
9.79,1999-06-16,100m,Men
9.58,2009-08-16,100m,Men
`

const contemporaryCSV = `Gender,Event,Year,Sport
Men,100m,2009,athletics
Women,800m,1983,athletics
Men,marathon,unknown,athletics
`

func writeFixtures(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	perf := filepath.Join(dir, "performances.csv")
	rec := filepath.Join(dir, "records.csv")
	cont := filepath.Join(dir, "current.csv")
	if err := os.WriteFile(perf, []byte(performanceCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(rec, []byte(recordCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cont, []byte(contemporaryCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	return perf, rec, cont
}

func TestCSVStore(t *testing.T) {
	Convey("Given the three input datasets", t, func() {
		ctx := context.Background()
		perf, rec, cont := writeFixtures(t)

		Convey("When loading them", func() {
			store := repository.NewCSVStore(perf, rec, cont)
			err := store.Load(ctx)

			Convey("Then loading succeeds", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the pairs come back sorted and distinct", func() {
				So(err, ShouldBeNil)
				pairs := store.Pairs(ctx)
				So(pairs, ShouldResemble, []model.Pair{
					{Gender: model.Men, Event: "100m"},
					{Gender: model.Women, Event: "100m"},
					{Gender: model.Women, Event: "400m"},
					{Gender: model.Women, Event: "800m"},
				})
			})

			Convey("Then duplicate performance rows are suppressed", func() {
				So(err, ShouldBeNil)
				recs := store.Performances(ctx, model.Pair{Gender: model.Men, Event: "100m"})
				So(recs, ShouldHaveLength, 2)
				So(recs[0].ResultRaw, ShouldEqual, "9.58")
				So(recs[1].ResultRaw, ShouldEqual, "9.63")
			})

			Convey("Then dates parse into UTC days", func() {
				So(err, ShouldBeNil)
				recs := store.Performances(ctx, model.Pair{Gender: model.Women, Event: "800m"})
				So(recs, ShouldHaveLength, 1)
				So(recs[0].Date.Year(), ShouldEqual, 1983)
				So(recs[0].Nationality, ShouldEqual, "TCH")
			})

			Convey("Then the record progression is served per pair", func() {
				So(err, ShouldBeNil)
				points := store.WorldRecords(ctx, model.Pair{Gender: model.Men, Event: "100m"})
				So(points, ShouldHaveLength, 3)
				So(points[0].ResultRaw, ShouldEqual, "9.86")
				So(points[2].ResultRaw, ShouldEqual, "9.58")
			})

			Convey("Then contemporary rows with a bad year are dropped", func() {
				So(err, ShouldBeNil)
				cr := store.Contemporary(ctx)
				So(cr, ShouldHaveLength, 2)
				So(cr[0].Year, ShouldEqual, 2009)
			})

			Convey("And loading twice is a no-op", func() {
				So(err, ShouldBeNil)
				So(store.Load(ctx), ShouldBeNil)
				So(store.Performances(ctx, model.Pair{Gender: model.Men, Event: "100m"}), ShouldHaveLength, 2)
			})
		})

		Convey("When an input file is missing", func() {
			store := repository.NewCSVStore(filepath.Join(t.TempDir(), "nope.csv"), rec, cont)
			err := store.Load(ctx)

			Convey("Then loading fails with the open sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrOpenDataset), ShouldBeTrue)
			})
		})

		Convey("When a required column is missing", func() {
			dir := t.TempDir()
			broken := filepath.Join(dir, "broken.csv")
			So(os.WriteFile(broken, []byte("Result,Competitor\n9.58,Usain Bolt\n"), 0o600), ShouldBeNil)

			store := repository.NewCSVStore(broken, rec, cont)
			err := store.Load(ctx)

			Convey("Then loading fails with the column sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrMissingColumn), ShouldBeTrue)
			})
		})

		Convey("When a date does not parse", func() {
			dir := t.TempDir()
			odd := filepath.Join(dir, "odd.csv")
			rows := "Result,Competitor,Nat,Venue,Date,Gender,Event,StateDope\n" +
				"10.83,Marlies Gohr,GDR,sometime in 1983,not-a-date,Women,100m,none\n"
			So(os.WriteFile(odd, []byte(rows), 0o600), ShouldBeNil)

			store := repository.NewCSVStore(odd, rec, cont)
			So(store.Load(ctx), ShouldBeNil)

			Convey("Then the row is kept with a zero date", func() {
				recs := store.Performances(ctx, model.Pair{Gender: model.Women, Event: "100m"})
				So(recs, ShouldHaveLength, 1)
				So(recs[0].Date.IsZero(), ShouldBeTrue)
			})
		})
	})
}
