package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/wikiscout/scoutcore/internal/adapters/kvstore"
	"github.com/wikiscout/scoutcore/internal/config"
	"github.com/wikiscout/scoutcore/pkg/logger"
)

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given configuration from the environment", t, func() {
		t.Setenv("SCOUT_ADDR", ":8088")
		t.Setenv("SCOUT_API_BASE_URL", "http://127.0.0.1:1/api")
		t.Setenv("SCOUT_DEBOUNCE_MS", "100")
		t.Setenv("SCOUT_CORS_ORIGINS", "http://localhost:5173,http://localhost:8100")
		ctx := context.Background()

		cfg, err := config.Load(ctx)
		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Addr, convey.ShouldEqual, ":8088")
		convey.So(cfg.CORSOrigins, convey.ShouldHaveLength, 2)

		convey.Convey("When no state path is set", func() {
			kv, err := newKVStore(ctx, cfg)

			convey.Convey("Then state is kept in memory", func() {
				convey.So(err, convey.ShouldBeNil)
				_, ok := kv.(*kvstore.Memory)
				convey.So(ok, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a state path is set", func() {
			cfg.StatePath = filepath.Join(t.TempDir(), "state.db")
			kv, err := newKVStore(ctx, cfg)
			convey.So(err, convey.ShouldBeNil)
			defer kv.Close()

			convey.Convey("Then state is kept in sqlite", func() {
				_, ok := kv.(*kvstore.SQLite)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(kv.Set(ctx, kvstore.KeyCurrentEvent, "2026flwp"), convey.ShouldBeNil)
			})
		})

		convey.Convey("When wiring the engine and server", func() {
			svc, err := newEngine(cfg, kvstore.NewMemory(), logger.Nop())
			convey.So(err, convey.ShouldBeNil)
			defer svc.Stop()
			srv := newHTTPServer(ctx, cfg, svc, logger.Nop())

			convey.Convey("Then the server serves the API before any event is loaded", func() {
				convey.So(srv.Addr, convey.ShouldEqual, ":8088")

				w := httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)

				w = httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rankings", nil))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldStartWith, "[]")
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given an invalid configuration", t, func() {
		t.Setenv("SCOUT_DEBOUNCE_MS", "-5")

		convey.Convey("Then loading fails", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})

	convey.Convey("Given an unusable upstream URL", t, func() {
		cfg := config.New(context.Background())
		cfg.APIBaseURL = "://broken"

		convey.Convey("Then the engine is not built", func() {
			_, err := newEngine(cfg, kvstore.NewMemory(), logger.Nop())
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
