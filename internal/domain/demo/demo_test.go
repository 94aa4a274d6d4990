package demo_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
	"github.com/wikiscout/scoutcore/internal/domain/demo"
	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/internal/domain/standings"
)

func TestDatasetDeterminism(t *testing.T) {
	convey.Convey("Given two synthesized datasets with the default seed", t, func() {
		a, _ := json.Marshal(demo.Dataset())
		b, _ := json.Marshal(demo.New().Dataset())

		convey.Convey("Then they are byte-identical", func() {
			convey.So(string(a), convey.ShouldEqual, string(b))
		})
	})

	convey.Convey("Given a different seed", t, func() {
		a, _ := json.Marshal(demo.Dataset().Matches)
		b, _ := json.Marshal(demo.New(demo.WithSeed(7)).Dataset().Matches)

		convey.So(string(a), convey.ShouldNotEqual, string(b))
	})
}

func TestDatasetShape(t *testing.T) {
	convey.Convey("Given the default demo dataset", t, func() {
		d := demo.Dataset()

		convey.Convey("Then it has 24 teams and 36 matches, 30 of them played", func() {
			convey.So(len(d.Teams), convey.ShouldEqual, 24)
			convey.So(len(d.Matches), convey.ShouldEqual, 36)
			convey.So(len(d.Rankings), convey.ShouldEqual, 24)
			convey.So(d.Source, convey.ShouldEqual, model.SourceDemo)

			completed := 0
			for _, m := range d.Matches {
				if m.Completed {
					completed++
				}
			}
			convey.So(completed, convey.ShouldEqual, 30)
		})

		convey.Convey("Then matches are numbered, labelled and staffed by four distinct teams", func() {
			for i, m := range d.Matches {
				convey.So(m.MatchNumber, convey.ShouldEqual, i+1)
				convey.So(m.Level, convey.ShouldEqual, "qual")
				convey.So(m.Completed, convey.ShouldEqual, m.MatchNumber <= 30)
				seen := map[int]bool{}
				for _, team := range append(append([]int{}, m.Red.Teams...), m.Blue.Teams...) {
					seen[team] = true
				}
				convey.So(len(seen), convey.ShouldEqual, 4)
			}
			convey.So(d.Matches[0].Description, convey.ShouldEqual, "Qualifier 1")
		})

		convey.Convey("Then every match satisfies the completion rule and score ranges", func() {
			for _, m := range d.Matches {
				convey.So(m.Consistent(), convey.ShouldBeTrue)
				if !m.Completed {
					continue
				}
				for _, a := range []model.Alliance{m.Red, m.Blue} {
					convey.So(*a.Auto, convey.ShouldBeBetweenOrEqual, 10, 49)
					convey.So(*a.Foul, convey.ShouldBeBetweenOrEqual, 0, 9)
					convey.So(*a.Score, convey.ShouldBeBetweenOrEqual, 40, 197)
				}
			}
		})

		convey.Convey("Then ranks are a dense permutation ordered by wins", func() {
			convey.So(standings.Dense(d.Rankings), convey.ShouldBeTrue)
			for i := 1; i < len(d.Rankings); i++ {
				convey.So(d.Rankings[i-1].Wins, convey.ShouldBeGreaterThanOrEqualTo, d.Rankings[i].Wins)
			}
		})

		convey.Convey("Then records agree with the matches", func() {
			for _, r := range d.Rankings {
				played := 0
				for _, m := range d.Matches {
					if m.Completed && m.Involves(r.TeamNumber) {
						played++
					}
				}
				convey.So(r.Wins+r.Losses+r.Ties, convey.ShouldEqual, r.MatchesPlayed)
				convey.So(r.MatchesPlayed, convey.ShouldEqual, played)
			}
		})
	})
}

func TestDatasetGolden(t *testing.T) {
	convey.Convey("Given the default demo dataset", t, func() {
		d := demo.Dataset()

		convey.Convey("Then the first match is fixed", func() {
			m := d.Matches[0]
			convey.So(m.Red.Teams, convey.ShouldResemble, []int{23456, 19876})
			convey.So(m.Blue.Teams, convey.ShouldResemble, []int{15227, 8393})
			convey.So(*m.Red.Score, convey.ShouldEqual, 127)
			convey.So(*m.Blue.Score, convey.ShouldEqual, 144)
			convey.So(*m.Red.Auto, convey.ShouldEqual, 11)
			convey.So(*m.Red.Foul, convey.ShouldEqual, 6)
			convey.So(*m.Blue.Auto, convey.ShouldEqual, 40)
			convey.So(*m.Blue.Foul, convey.ShouldEqual, 0)
		})

		convey.Convey("Then the opening rosters follow the double-precision stream", func() {
			var rosters [][]int
			for _, m := range d.Matches[:3] {
				rosters = append(rosters, append(append([]int{}, m.Red.Teams...), m.Blue.Teams...))
			}
			convey.So(rosters, convey.ShouldResemble, [][]int{
				{23456, 19876, 15227, 8393},
				{10331, 17305, 16340, 24601},
				{14523, 19876, 16340, 16072},
			})
			convey.So(*d.Matches[1].Red.Score, convey.ShouldEqual, 132)
			convey.So(*d.Matches[1].Blue.Score, convey.ShouldEqual, 121)
		})

		convey.Convey("Then the first upcoming match is fixed", func() {
			m := d.Matches[30]
			convey.So(m.Red.Teams, convey.ShouldResemble, []int{24601, 17305})
			convey.So(m.Blue.Teams, convey.ShouldResemble, []int{11260, 15227})
			convey.So(m.Red.Score, convey.ShouldBeNil)
		})

		convey.Convey("Then the top of the standings is fixed", func() {
			top := d.Rankings[0]
			convey.So(top.TeamNumber, convey.ShouldEqual, 18456)
			convey.So(top.TeamName, convey.ShouldEqual, "Iron Eagles")
			convey.So(top.Wins, convey.ShouldEqual, 8)
			convey.So(top.Losses, convey.ShouldEqual, 0)
			convey.So(d.Rankings[1].TeamNumber, convey.ShouldEqual, 16340)
			convey.So(d.Rankings[2].TeamNumber, convey.ShouldEqual, 24601)
			convey.So(d.Rankings[3].TeamNumber, convey.ShouldEqual, 16072)
			convey.So(d.Rankings[23].TeamNumber, convey.ShouldEqual, 22190)
		})
	})
}

func TestOptions(t *testing.T) {
	convey.Convey("Given a custom schedule and roster", t, func() {
		roster := demo.Roster()[:6]
		d := demo.New(demo.WithRoster(roster), demo.WithSchedule(4, 1)).Dataset()

		convey.So(len(d.Teams), convey.ShouldEqual, 6)
		convey.So(len(d.Matches), convey.ShouldEqual, 4)
		convey.So(d.Matches[0].Completed, convey.ShouldBeTrue)
		convey.So(d.Matches[1].Completed, convey.ShouldBeFalse)
	})

	convey.Convey("Given invalid options", t, func() {
		d := demo.New(demo.WithRoster(demo.Roster()[:3]), demo.WithSchedule(2, 5)).Dataset()

		convey.So(len(d.Teams), convey.ShouldEqual, 24)
		convey.So(len(d.Matches), convey.ShouldEqual, 36)
	})
}

func TestEvents(t *testing.T) {
	convey.Convey("Given the fallback event lists", t, func() {
		today := demo.TodayEvents()
		convey.So(len(today), convey.ShouldEqual, 2)
		convey.So(today[0].Code, convey.ShouldEqual, "2026flwp")

		dev := demo.DevEvent(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC))
		convey.So(dev.Code, convey.ShouldEqual, demo.DevEventCode)
		convey.So(dev.Status, convey.ShouldEqual, model.StatusLive)
		convey.So(dev.DateStart, convey.ShouldEqual, "2026-03-02")
		convey.So(dev.Country, convey.ShouldEqual, "USA")

		late := demo.DevEvent(time.Date(2026, 3, 3, 7, 0, 0, 0, time.FixedZone("JST", 9*60*60)))
		convey.So(late.DateStart, convey.ShouldEqual, "2026-03-02")
		convey.So(late.DateEnd, convey.ShouldEqual, "2026-03-02")
	})
}
