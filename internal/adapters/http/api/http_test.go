package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wikiscout/scoutcore/internal/adapters/http/api"
	"github.com/wikiscout/scoutcore/internal/adapters/scoutapi"
	service "github.com/wikiscout/scoutcore/internal/app"
	"github.com/wikiscout/scoutcore/internal/domain/demo"
	"github.com/wikiscout/scoutcore/internal/domain/directory"
	"github.com/wikiscout/scoutcore/internal/domain/matchview"
	"github.com/wikiscout/scoutcore/internal/domain/model"
	"github.com/wikiscout/scoutcore/internal/domain/normalize"
)

var errDown = errors.New("backend down")

// downBackend fails every call, which drives the engine onto its demo fallbacks.
type downBackend struct{}

func (downBackend) ValidateToken(context.Context) (scoutapi.Identity, error) {
	return scoutapi.Identity{}, errDown
}

func (downBackend) GetMe(context.Context) (scoutapi.Me, error) { return scoutapi.Me{}, errDown }

func (downBackend) GetTodayEvents(context.Context) ([]model.Event, error) { return nil, errDown }

func (downBackend) SearchEvents(context.Context, scoutapi.SearchParams) ([]model.Event, error) {
	return nil, errDown
}

func (downBackend) GetTeams(context.Context, string) (normalize.TeamsPayload, error) {
	return normalize.TeamsPayload{}, errDown
}

func (downBackend) GetRankings(context.Context, string) (normalize.RankingsPayload, error) {
	return normalize.RankingsPayload{}, errDown
}

func (downBackend) GetMatches(context.Context, string) (normalize.MatchesPayload, error) {
	return normalize.MatchesPayload{}, errDown
}

func (downBackend) AddScoutingData(context.Context, int, string, model.ScoutingEntry) error {
	return fmt.Errorf("%w: %w", scoutapi.ErrWriteFailed, errDown)
}

func (downBackend) Logout(context.Context) error { return nil }

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeInto(w *httptest.ResponseRecorder, v any) error {
	return json.NewDecoder(w.Body).Decode(v)
}

func TestServer(t *testing.T) {
	Convey("Given an API server on a started engine with no backend", t, func() {
		ctx := context.Background()
		svc := service.New(downBackend{}, service.WithDebounce(time.Hour))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		server := api.NewServer(svc)
		mux := http.NewServeMux()
		server.Register(ctx, mux)
		h := server.Handler(mux)

		Convey("Then the health endpoint serves metrics", func() {
			w := do(h, http.MethodGet, "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "wikiscout_")
		})

		Convey("Then the session reports the demo team", func() {
			w := do(h, http.MethodGet, "/session", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var sess service.Session
			So(decodeInto(w, &sess), ShouldBeNil)
			So(sess.TeamNumber, ShouldEqual, 16072)
			So(sess.Demo, ShouldBeTrue)
			So(sess.Source, ShouldEqual, model.SourceDemo)
		})

		Convey("Then rankings and teams come from the demo dataset", func() {
			w := do(h, http.MethodGet, "/rankings", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var rankings []model.Ranking
			So(decodeInto(w, &rankings), ShouldBeNil)
			So(rankings, ShouldHaveLength, 24)
			So(rankings[0].Rank, ShouldEqual, 1)

			w = do(h, http.MethodGet, "/teams", "")
			var teams []model.Team
			So(decodeInto(w, &teams), ShouldBeNil)
			So(teams, ShouldHaveLength, 24)
		})

		Convey("Then matches honor the filter", func() {
			w := do(h, http.MethodGet, "/matches?filter=all", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var view matchview.View
			So(decodeInto(w, &view), ShouldBeNil)
			So(view.Filter, ShouldEqual, matchview.FilterAll)
			So(view.Len(), ShouldEqual, 36)

			w = do(h, http.MethodGet, "/matches", "")
			So(decodeInto(w, &view), ShouldBeNil)
			So(view.Filter, ShouldEqual, matchview.FilterMyTeam)
			So(view.Summary, ShouldNotBeNil)

			w = do(h, http.MethodGet, "/matches?filter=finals", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Then team routes validate the team number", func() {
			w := do(h, http.MethodGet, "/teams/16072/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var stats matchview.Stats
			So(decodeInto(w, &stats), ShouldBeNil)
			So(stats.Found, ShouldBeTrue)

			w = do(h, http.MethodGet, "/teams/16072/history", "")
			var history []matchview.HistoryEntry
			So(decodeInto(w, &history), ShouldBeNil)
			So(history, ShouldHaveLength, 6)

			w = do(h, http.MethodGet, "/teams/1/stats", "")
			So(decodeInto(w, &stats), ShouldBeNil)
			So(stats.Found, ShouldBeFalse)
			So(stats.History, ShouldBeEmpty)

			So(do(h, http.MethodGet, "/teams/abc/history", "").Code, ShouldEqual, http.StatusBadRequest)
			So(do(h, http.MethodGet, "/teams/-3/stats", "").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When selecting an event", func() {
			w := do(h, http.MethodPost, "/session/event", `{"code":"2026txda","name":"Dallas Regional"}`)

			Convey("Then the load outcome is returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var res service.LoadResult
				So(decodeInto(w, &res), ShouldBeNil)
				So(res.Applied, ShouldBeTrue)
				So(res.Source, ShouldEqual, model.SourceDemo)
				So(svc.Session().EventCode, ShouldEqual, "2026txda")
			})

			Convey("And malformed requests are rejected", func() {
				So(do(h, http.MethodPost, "/session/event", `{"code":`).Code, ShouldEqual, http.StatusBadRequest)
				So(do(h, http.MethodPost, "/session/event", `{"code":""}`).Code, ShouldEqual, http.StatusBadRequest)
				So(do(h, http.MethodPost, "/session/event", `{"event":"x"}`).Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("Then directory routes drive the browser", func() {
			w := do(h, http.MethodPost, "/directory/mode", `{"mode":"all"}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			var res directory.Results
			So(decodeInto(w, &res), ShouldBeNil)
			So(res.Mode, ShouldEqual, directory.ModeAllTime)

			So(do(h, http.MethodPost, "/directory/mode", `{"mode":"weekly"}`).Code, ShouldEqual, http.StatusBadRequest)
			So(do(h, http.MethodPost, "/directory/season", `{"season":0}`).Code, ShouldEqual, http.StatusBadRequest)

			w = do(h, http.MethodPost, "/directory/season", `{"season":2024}`)
			So(decodeInto(w, &res), ShouldBeNil)
			So(res.Season, ShouldEqual, 2024)

			w = do(h, http.MethodGet, "/directory/seasons", "")
			var seasons []directory.Season
			So(decodeInto(w, &seasons), ShouldBeNil)
			So(seasons, ShouldNotBeEmpty)

			w = do(h, http.MethodPost, "/directory/open", "")
			So(decodeInto(w, &res), ShouldBeNil)
			So(res.Mode, ShouldEqual, directory.ModeToday)
		})

		Convey("Then a debounced query is accepted for later", func() {
			w := do(h, http.MethodPost, "/directory/query", `{"query":"dallas"}`)
			So(w.Code, ShouldEqual, http.StatusAccepted)
		})

		Convey("Then the dev sentinel activates the test event", func() {
			w := do(h, http.MethodPost, "/directory/query", `{"query":"DEVDATA1","immediate":true}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			var res directory.Results
			So(decodeInto(w, &res), ShouldBeNil)
			So(res.Buckets.Live, ShouldHaveLength, 1)
			So(svc.Session().EventCode, ShouldEqual, demo.DevEventCode)
		})

		Convey("Then scouting write failures map to bad gateway", func() {
			w := do(h, http.MethodPost, "/scouting", `{"team":16072,"entry":{"mecanum":true,"privateNotes":"ok"}}`)
			So(w.Code, ShouldEqual, http.StatusBadGateway)
			So(w.Body.String(), ShouldContainSubstring, "write_failed")

			So(do(h, http.MethodPost, "/scouting", `{"team":0,"entry":{}}`).Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When logging out", func() {
			w := do(h, http.MethodPost, "/session/logout", "")

			Convey("Then scouting needs a new event", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				w = do(h, http.MethodPost, "/scouting", `{"team":16072,"entry":{}}`)
				So(w.Code, ShouldEqual, http.StatusConflict)
			})
		})

		Convey("Then unknown routes are JSON not-found errors", func() {
			w := do(h, http.MethodGet, "/leaderboard", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(w.Body.String(), ShouldContainSubstring, "not_found")
		})

		Convey("Then cross-origin requests are allowed", func() {
			req := httptest.NewRequest(http.MethodGet, "/session", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
		})
	})
}
