package directory_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/smartystreets/goconvey/convey"

	"github.com/wikiscout/scoutcore/internal/domain/directory"
	"github.com/wikiscout/scoutcore/internal/domain/model"
)

const team = 16072

func at(y int, m time.Month, d int) clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(y, m, d, 10, 0, 0, 0, time.UTC))
}

func sample() []model.Event {
	return []model.Event{
		{Code: "2026flwp", Name: "West Palm Beach Regional", City: "West Palm Beach", StateProv: "FL", Status: model.StatusUpcoming, DateStart: "2026-03-01T08:00:00", DateEnd: "2026-03-03T18:00:00"},
		{Code: "2026txda", Name: "Dallas Regional", City: "Dallas", StateProv: "TX", Status: model.StatusLive, DateStart: "2026-04-10"},
		{Code: "2026cmp", Name: "Championship", City: "Houston", StateProv: "TX", Status: model.StatusUpcoming, DateStart: "2026-04-20", DateEnd: "2026-04-23"},
		{Code: "2026nodate", Name: "Unscheduled", Status: model.StatusUpcoming},
	}
}

func TestSeason(t *testing.T) {
	convey.Convey("Given dates around the season boundary", t, func() {
		convey.So(directory.SeasonFor(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)), convey.ShouldEqual, 2025)
		convey.So(directory.SeasonFor(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)), convey.ShouldEqual, 2026)
		convey.So(directory.SeasonFor(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)), convey.ShouldEqual, 2025)
	})

	convey.Convey("Given a season range", t, func() {
		s := directory.Seasons(2021, 2019)
		convey.So(s, convey.ShouldResemble, []directory.Season{
			{Year: 2021, Label: "2021-2022"},
			{Year: 2020, Label: "2020-2021"},
			{Year: 2019, Label: "2019-2020"},
		})
		convey.So(len(directory.Seasons(2019, 2025)), convey.ShouldEqual, 1)
	})
}

func TestTodayFilter(t *testing.T) {
	convey.Convey("Given an event running from March 1st to 3rd", t, func() {
		e := sample()[0]

		convey.So(directory.IsToday(e, "2026-03-02"), convey.ShouldBeTrue)
		convey.So(directory.IsToday(e, "2026-03-01"), convey.ShouldBeTrue)
		convey.So(directory.IsToday(e, "2026-03-03"), convey.ShouldBeTrue)
		convey.So(directory.IsToday(e, "2026-03-05"), convey.ShouldBeFalse)

		e.Status = model.StatusLive
		convey.So(directory.IsToday(e, "2026-03-05"), convey.ShouldBeTrue)
	})

	convey.Convey("Given a clock in a zone already past midnight", t, func() {
		events := sample()[:1]
		tokyo := time.FixedZone("JST", 9*60*60)

		convey.Convey("Then today is taken from the UTC date", func() {
			late := time.Date(2026, 3, 4, 8, 30, 0, 0, tokyo) // 2026-03-03 23:30 UTC
			convey.So(directory.Today(events, late), convey.ShouldHaveLength, 1)

			early := time.Date(2026, 3, 1, 8, 30, 0, 0, tokyo) // 2026-02-28 23:30 UTC
			convey.So(directory.Today(events, early), convey.ShouldBeEmpty)
		})
	})

	convey.Convey("Given events with partial dates", t, func() {
		convey.So(directory.IsToday(model.Event{DateStart: "2026-04-10T09:00"}, "2026-04-10"), convey.ShouldBeTrue)
		convey.So(directory.IsToday(model.Event{DateStart: "2026-04-10"}, "2026-04-11"), convey.ShouldBeFalse)
		convey.So(directory.IsToday(model.Event{Status: model.StatusUpcoming}, "2026-04-11"), convey.ShouldBeFalse)
	})
}

func TestMatchTextAndBuckets(t *testing.T) {
	convey.Convey("Given the sample events", t, func() {
		events := sample()

		convey.So(len(directory.MatchText(events, "tx")), convey.ShouldEqual, 2)
		convey.So(len(directory.MatchText(events, "PALM")), convey.ShouldEqual, 1)
		convey.So(len(directory.MatchText(events, "2026c")), convey.ShouldEqual, 1)
		convey.So(len(directory.MatchText(events, "")), convey.ShouldEqual, 4)

		b := directory.Bucket(events, 50)
		convey.So(len(b.Live), convey.ShouldEqual, 1)
		convey.So(len(b.Upcoming), convey.ShouldEqual, 3)
		convey.So(b.Past, convey.ShouldBeEmpty)
	})

	convey.Convey("Given more past events than the cap", t, func() {
		events := make([]model.Event, 0, 60)
		for i := range 60 {
			events = append(events, model.Event{Code: fmt.Sprintf("e%d", i), Status: model.StatusPast})
		}
		events = append(events, model.Event{Code: "odd", Status: "cancelled"})

		b := directory.Bucket(events, 50)
		convey.So(len(b.Past), convey.ShouldEqual, 50)
		convey.So(b.Past[49].Code, convey.ShouldEqual, "e49")
		convey.So(b.Len(), convey.ShouldEqual, 50)
	})
}

func TestBrowser(t *testing.T) {
	convey.Convey("Given a browser on March 2nd 2026", t, func() {
		b := directory.NewBrowser(team, directory.WithClock(at(2026, time.March, 2)))

		convey.Convey("Then it opens on today's events of the current season", func() {
			convey.So(b.Mode(), convey.ShouldEqual, directory.ModeToday)
			convey.So(b.Season(), convey.ShouldEqual, 2025)
			convey.So(b.Params(), convey.ShouldResemble, directory.Params{Season: 2025})
		})

		convey.Convey("When today's fetch arrives", func() {
			convey.So(b.Apply(b.Params(), sample()), convey.ShouldBeTrue)
			r := b.Results()

			convey.Convey("Then only live and in-range events remain", func() {
				convey.So(r.Buckets.Len(), convey.ShouldEqual, 2)
				convey.So(r.Buckets.Live[0].Code, convey.ShouldEqual, "2026txda")
				convey.So(r.Buckets.Upcoming[0].Code, convey.ShouldEqual, "2026flwp")
			})

			convey.Convey("Then a query filters locally", func() {
				convey.So(b.SetQuery("  Dallas "), convey.ShouldEqual, directory.ActionLocal)
				convey.So(b.Query(), convey.ShouldEqual, "dallas")
				convey.So(b.Results().Buckets.Len(), convey.ShouldEqual, 1)
				convey.So(b.Params().Query, convey.ShouldEqual, "")
			})

			convey.Convey("Then a query with no hits suggests close names", func() {
				b.SetQuery("champ")
				res := b.Results()
				convey.So(res.Buckets.Len(), convey.ShouldEqual, 0)
				convey.So(len(res.Suggestions), convey.ShouldEqual, 1)
				convey.So(res.Suggestions[0].Code, convey.ShouldEqual, "2026cmp")
			})
		})

		convey.Convey("When switching to my-team", func() {
			b.SetQuery("dallas")
			p := b.SetMode(directory.ModeMyTeam)

			convey.Convey("Then the query is cleared and the team is sent", func() {
				convey.So(p, convey.ShouldResemble, directory.Params{Season: 2025, Team: team})
			})

			convey.Convey("Then a query requires a fetch that carries it", func() {
				convey.So(b.SetQuery("Regional"), convey.ShouldEqual, directory.ActionFetch)
				convey.So(b.Params(), convey.ShouldResemble, directory.Params{Season: 2025, Team: team, Query: "regional"})
			})

			convey.Convey("Then fetched events are not filtered by date", func() {
				convey.So(b.Apply(p, sample()), convey.ShouldBeTrue)
				convey.So(b.Results().Buckets.Len(), convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When all-time uses a chosen season", func() {
			b.SetMode(directory.ModeAllTime)
			p := b.SetSeason(2021)

			convey.So(p, convey.ShouldResemble, directory.Params{Season: 2021})
			convey.So(b.Results().Season, convey.ShouldEqual, 2021)

			convey.Convey("Then my-team still searches the current season", func() {
				convey.So(b.SetMode(directory.ModeMyTeam).Season, convey.ShouldEqual, 2025)
			})
		})

		convey.Convey("When a response for older params arrives", func() {
			old := b.SetMode(directory.ModeAllTime)
			b.SetSeason(2020)

			convey.So(b.Apply(old, sample()), convey.ShouldBeFalse)
			convey.So(b.Results().Buckets.Len(), convey.ShouldEqual, 0)
		})

		convey.Convey("When the dev sentinel is typed in any mode", func() {
			b.SetMode(directory.ModeAllTime)
			b.SetQuery("regional")

			convey.So(b.SetQuery("devdata1"), convey.ShouldEqual, directory.ActionDev)
			convey.So(b.SetQuery("DEVDATA1"), convey.ShouldEqual, directory.ActionDev)
			convey.So(b.Query(), convey.ShouldEqual, "regional")

			convey.So(b.SetQuery(" DEVDATA1"), convey.ShouldEqual, directory.ActionFetch)
			convey.So(b.Query(), convey.ShouldEqual, "devdata1")
		})

		convey.Convey("When reopened", func() {
			b.SetMode(directory.ModeAllTime)
			b.SetSeason(2020)
			b.SetQuery("x")
			b.Open()

			convey.So(b.Mode(), convey.ShouldEqual, directory.ModeToday)
			convey.So(b.Season(), convey.ShouldEqual, 2025)
			convey.So(b.Query(), convey.ShouldEqual, "")
		})
	})

	convey.Convey("Given the mode names", t, func() {
		m, ok := directory.ParseMode("all")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(m, convey.ShouldEqual, directory.ModeAllTime)
		_, ok = directory.ParseMode("weekly")
		convey.So(ok, convey.ShouldBeFalse)
		convey.So(directory.ActionDev.String(), convey.ShouldEqual, "dev")
	})
}
