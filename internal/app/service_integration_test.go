package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/stride/internal/adapters/chart"
	"github.com/okian/stride/internal/adapters/repository"
	service "github.com/okian/stride/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

const performancesCSV = `Result,Competitor,Nat,Venue,Date,Gender,Event
9.58,Usain Bolt,JAM,Berlin,2009-08-16,men,100m
9.69,Tyson Gay,USA,Shanghai,2009-09-20,men,100m
9.72,Asafa Powell,JAM,Lausanne,2008-09-02,men,100m
10.49,Florence Griffith-Joyner,USA,Indianapolis,1988-07-16,women,100m
10.64,Carmelita Jeter,USA,Shanghai,2009-09-20,women,100m
2:02:57,Dennis Kimetto,KEN,Berlin,2014-09-28,men,marathon
2:03:23,Wilson Kipsang,KEN,Berlin,2013-09-29,men,marathon
`

const recordsCSV = `Result,Date,Event,Gender
9.74,2007-09-09,100m,men
9.72,2008-05-31,100m,men
9.69,2008-08-16,100m,men
9.58,2009-08-16,100m,men
2:03:23,2013-09-29,marathon,men
2:02:57,2014-09-28,marathon,men
`

const contemporaryCSV = `Gender,Event,Year,Sport
men,100m,2009,athletics
women,100m,1988,athletics
men,marathon,2014,athletics
`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given real CSV fixtures and the real renderer", t, func() {
		dataDir := t.TempDir()
		outDir := t.TempDir()

		store := repository.NewCSVStore(
			writeFixture(t, dataDir, "performances.csv", performancesCSV),
			writeFixture(t, dataDir, "world_records.csv", recordsCSV),
			writeFixture(t, dataDir, "current_records.csv", contemporaryCSV),
		)

		svc := service.New(
			service.WithStore(store),
			service.WithRenderer(chart.NewPlotRenderer()),
			service.WithOutputDir(outDir),
			service.WithWorkerCount(2),
			service.WithReferenceDate(time.Date(2016, time.July, 29, 0, 0, 0, 0, time.UTC)),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		Convey("When the batch runs end-to-end", func() {
			err := svc.Run(ctx)

			Convey("Then it should succeed", func() {
				So(err, ShouldBeNil)
			})

			Convey("And every pair plus the summary has an image on disk", func() {
				So(err, ShouldBeNil)
				for _, name := range []string{
					"men 100m.png",
					"women 100m.png",
					"men marathon.png",
					"current records.png",
				} {
					info, statErr := os.Stat(filepath.Join(outDir, name))
					So(statErr, ShouldBeNil)
					So(info.Size(), ShouldBeGreaterThan, 0)
				}
			})
		})
	})
}
