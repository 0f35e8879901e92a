package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v5"

	"github.com/janisto/echo-heroes/internal/platform/config"
	"github.com/janisto/echo-heroes/internal/platform/database"
	applog "github.com/janisto/echo-heroes/internal/platform/logging"
	"github.com/janisto/echo-heroes/internal/platform/metrics"
	herosvc "github.com/janisto/echo-heroes/internal/service/hero"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

//	@title						Heroes API
//	@version					1.0
//	@description				Heroes, items and users demo service.
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(ctx, "config load failed", err)
	}
	if err := applog.SetLevel(cfg.Server.LogLevel); err != nil {
		applog.LogFatal(ctx, "invalid log level", err)
	}

	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		applog.LogFatal(ctx, "database open failed", err, slog.String("path", cfg.Database.Path))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			applog.LogError(ctx, "database close error", closeErr)
		}
	}()

	d := deps{
		cfg:      cfg,
		db:       db,
		heroes:   herosvc.NewGormStore(db),
		verifier: newVerifier(cfg.Auth),
	}
	if cfg.Metrics.Enabled {
		d.metrics = metrics.New()
	}

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	applog.LogInfo(ctx, "server starting",
		slog.String("addr", addr),
		slog.String("version", Version),
		slog.Bool("jwt", cfg.Auth.JWTSecret != ""),
		slog.Bool("metrics", cfg.Metrics.Enabled))

	sc := echo.StartConfig{
		Address:         addr,
		GracefulTimeout: 10 * time.Second,
		BeforeServeFunc: func(s *http.Server) error {
			s.ReadTimeout = 5 * time.Second
			s.ReadHeaderTimeout = 2 * time.Second
			s.WriteTimeout = 10 * time.Second
			s.IdleTimeout = 60 * time.Second
			s.MaxHeaderBytes = 64 << 10
			return nil
		},
	}

	sigCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := sc.Start(sigCtx, newHandler(d)); err != nil {
		log.Fatal(err)
	}

	applog.LogInfo(ctx, "server exited")
}
