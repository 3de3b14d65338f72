package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fitstack/memberd/pkg/clock"
	"github.com/fitstack/memberd/pkg/config"
	"github.com/fitstack/memberd/pkg/httpserver"
	"github.com/fitstack/memberd/pkg/httpx"
	"github.com/fitstack/memberd/pkg/pg"
	"github.com/fitstack/memberd/svc/checkin"
	"github.com/fitstack/memberd/svc/member"
	"github.com/fitstack/memberd/svc/membership"
	"github.com/fitstack/memberd/svc/plan"
)

type appConfig struct {
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	PlansSeedPath string     `env:"PLANS_SEED_PATH" envDefault:"plans.yaml"`
}

func main() {
	ctx := context.Background()

	var appCfg appConfig
	config.MustLoad(&appCfg)

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: appCfg.LogLevel}))
	slog.SetDefault(log)

	if err := run(ctx, appCfg, log); err != nil {
		log.ErrorContext(ctx, "server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, appCfg appConfig, log *slog.Logger) error {
	var (
		pgCfg    pg.Config
		httpCfg  httpserver.Config
		clockCfg clock.Config
	)
	config.MustLoad(&pgCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&clockCfg)

	clk, err := clock.New(clockCfg)
	if err != nil {
		return err
	}

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return err
	}

	planStore := plan.NewPgStore(pool)
	if err := plan.Seed(ctx, planStore, appCfg.PlansSeedPath); err != nil {
		return err
	}

	memberStore := member.NewPgStore(pool)
	membershipSvc := membership.NewService(membership.NewPgStore(pool), memberStore, planStore, clk)
	checkinSvc := checkin.NewService(checkin.NewPgStore(pool), memberStore, membershipSvc)
	memberSvc := member.NewService(memberStore, membershipSvc, checkinSvc, clk)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	healthcheck := pg.Healthcheck(pool)
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := healthcheck(req.Context()); err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api", func(api chi.Router) {
		api.Mount("/members", member.Router(memberSvc, log))
		api.Mount("/plans", plan.Router(planStore, log))
		api.Mount("/memberships", membership.Router(membershipSvc, log))
		api.Mount("/checkins", checkin.Router(checkinSvc, log))
	})

	srv := httpserver.New(httpCfg, log)
	return srv.Run(ctx, r)
}

// requestLogger emits one structured line per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
