package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hrkit/vacation-api/internal/api"
	"github.com/hrkit/vacation-api/internal/core/ports"
	"github.com/hrkit/vacation-api/internal/core/service"
	"github.com/hrkit/vacation-api/internal/infrastructure/config"
	"github.com/hrkit/vacation-api/internal/infrastructure/db/mysql"
	"github.com/hrkit/vacation-api/internal/infrastructure/db/redis"
	"github.com/hrkit/vacation-api/pkg/logger"
)

const migrationsDir = "migrations"

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := mysql.Connect(ctx, cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}
	defer db.Close()

	if err := mysql.Migrate(db, migrationsDir); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mysql.NewUserRepository(db)
	vacationRepo := mysql.NewVacationRepository(db)

	var statusCache ports.StatusCache
	if rdb != nil {
		statusCache = redis.NewStatusCache(rdb)
	}

	users := service.NewUserService(userRepo, tokens, log)
	vacations := service.NewVacationService(vacationRepo, statusCache, log)

	e := api.NewRouter(api.RouterConfig{
		DB:         db,
		Redis:      rdb,
		Tokens:     tokens,
		Users:      users,
		Vacations:  vacations,
		CORSOrigin: cfg.CORSOrigin,
		Logger:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
