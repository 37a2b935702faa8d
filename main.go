package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"starblog/config"
	"starblog/database"
	"starblog/routes"
	"starblog/utils"
)

func main() {
	if err := run(); err != nil {
		utils.LogError(err, "server exited")
		os.Exit(1)
	}
}

// run возвращает ошибку вместо выхода, чтобы отложенное закрытие базы успело отработать
func run() error {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	log := utils.Logger()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			utils.LogError(err, "close database")
		}
	}()
	if cfg.UsesPostgres() {
		log.Info().Msg("Connected to PostgreSQL")
	} else {
		log.Info().Str("path", cfg.SQLitePath).Msg("Using local SQLite database")
	}

	// Миграция
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	log.Info().Msg("Migration complete")

	if cfg.SeedData {
		if err := database.SeedCatalog(db); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		log.Info().Msg("Catalog seeded (if needed)")
	}

	r := routes.SetupRouter(db, cfg)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewHandler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	log.Info().Str("port", cfg.Port).Msg("Server is running")
	if err := serve(srv, stop); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}
	log.Info().Msg("Server stopped")
	return nil
}

// serve ждет сигнала остановки или ошибки сервера.
// По сигналу сервер завершается, дожидаясь текущих запросов.
func serve(srv *http.Server, stop <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
