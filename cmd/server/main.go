package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/BharAnu2109/Cricket/internal/config"
	"github.com/BharAnu2109/Cricket/internal/handler"
	"github.com/BharAnu2109/Cricket/internal/logger"
	"github.com/BharAnu2109/Cricket/internal/metrics"
	"github.com/BharAnu2109/Cricket/internal/repository"
	pg "github.com/BharAnu2109/Cricket/internal/repository/postgres"
	"github.com/BharAnu2109/Cricket/internal/service"
	"github.com/BharAnu2109/Cricket/migrations"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate(cfg); err != nil {
		appLogger.Fatal().Err(err).Msg("migrations failed")
	}

	repo, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer repo.Close()

	players := pg.NewPlayerRepository(repo.Pool())
	tx := pg.NewTxManager(repo.Pool())
	playerSvc := service.NewPlayerService(players, tx, appLogger)

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	m := metrics.New(cfg.App.Name)
	engine.Use(m.Middleware())
	engine.GET("/metrics", m.Handler())

	handler.Register(engine, pg.NewPinger(repo.Pool()), playerSvc)

	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		appLogger.Info().Int("port", port).Msg("player service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutdown signal received")

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	appLogger.Info().Msg("server stopped")
}

// migrate applies the embedded goose migrations through the stdlib driver.
func migrate(cfg *config.Config) error {
	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, migrations.Dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
