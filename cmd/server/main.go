package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GlitchedDuck/Manager-hub/internal/config"
	"github.com/GlitchedDuck/Manager-hub/internal/handler"
	applog "github.com/GlitchedDuck/Manager-hub/internal/logger"
	"github.com/GlitchedDuck/Manager-hub/internal/middleware"
	"github.com/GlitchedDuck/Manager-hub/internal/service"
	"github.com/GlitchedDuck/Manager-hub/internal/store"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	applog.Init(cfg.Log)
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()
	gw, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		slog.Error("store open failed", "driver", cfg.Storage.Driver, "err", err)
		os.Exit(1)
	}

	loc, err := cfg.Team.Location()
	if err != nil {
		slog.Error("bad timezone", "err", err)
		os.Exit(1)
	}
	st := service.NewState(gw, service.WithDefaultMembers(cfg.Team.DefaultMembers), service.WithLocation(loc))
	if warnings := st.Load(ctx); len(warnings) > 0 {
		slog.Warn("starting with collections that failed to load", "count", len(warnings))
	}
	svc := service.New(st)

	if cfg.Auth.Enabled && len(cfg.Auth.Managers) == 0 {
		slog.Warn("auth enabled but no managers configured; every login will fail")
	}
	authSvc := service.NewAuthService(cfg.Auth.Managers)
	tokens := middleware.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	r := handler.NewRouter(svc, authSvc, tokens, handler.RouterOptions{
		AllowOrigins: cfg.Server.AllowOrigins,
		RequireAuth:  cfg.Auth.Enabled,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "storage", cfg.Storage.Driver, "auth", cfg.Auth.Enabled)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "err", err)
	}
}
