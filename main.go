package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/careconnect/charityevents-api/config"
	"github.com/careconnect/charityevents-api/discovery"
	"github.com/careconnect/charityevents-api/middleware"
	"github.com/careconnect/charityevents-api/routes"
	"github.com/careconnect/charityevents-api/store"
	mongostore "github.com/careconnect/charityevents-api/store/mongo"
	sqlitestore "github.com/careconnect/charityevents-api/store/sqlite"
	"github.com/careconnect/charityevents-api/utils"
)

func main() {
	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)
	logger.Info("starting charity events api",
		slog.String("env", cfg.Env),
		slog.String("store", cfg.StoreDriver))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	st, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("could not open store", utils.Err(err))
		os.Exit(1)
	}

	if cfg.SeedSampleData {
		if err := store.Seed(ctx, st, logger); err != nil {
			logger.Error("could not seed sample data", utils.Err(err))
			os.Exit(1)
		}
	}

	svc := discovery.New(st, logger)

	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg)))
	routes.SetupRoutes(r, svc, st, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logger.Info("listening", slog.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", utils.Err(err))
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGTERM, syscall.SIGINT)
	sign := <-stopChan
	logger.Info("stopping", slog.String("signal", sign.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", utils.Err(err))
	}
	if err := st.Close(shutdownCtx); err != nil {
		logger.Error("store close error", utils.Err(err))
	}
	logger.Info("stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		return mongostore.New(ctx, cfg.MongoURI, cfg.MongoDBName)
	default:
		return sqlitestore.Open(cfg.SQLitePath)
	}
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProduction:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return c
}
