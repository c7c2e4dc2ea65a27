package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/theyard/fanpass/internal/api"
	"github.com/theyard/fanpass/internal/core/ports"
	"github.com/theyard/fanpass/internal/core/service"
	"github.com/theyard/fanpass/internal/infrastructure/config"
	"github.com/theyard/fanpass/internal/infrastructure/db/memory"
	redisdb "github.com/theyard/fanpass/internal/infrastructure/db/redis"
	"github.com/theyard/fanpass/internal/infrastructure/storage"
	"github.com/theyard/fanpass/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis is the primary store; an unreachable backend degrades the
	// service to the in-memory fallback rather than refusing to start.
	var (
		rdb      *goredis.Client
		passRepo ports.PassRepository
		cmsRepo  ports.CMSRepository
	)
	client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, using in-memory store")
		passRepo = memory.NewPassRepository()
		cmsRepo = memory.NewCMSRepository()
	} else {
		rdb = client
		passRepo = redisdb.NewPassRepository(client)
		cmsRepo = redisdb.NewCMSRepository(client)
		defer func() { _ = client.Close() }()
	}

	fileStore, err := storage.NewDiskStore(cfg.Upload.Dir, cfg.Upload.PublicBase)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("failed to prepare upload directory")
	}

	e := api.NewRouter(api.Dependencies{
		Logger:        log,
		Passes:        service.NewPassService(passRepo, log),
		CMS:           service.NewCMSService(cmsRepo, log),
		Auth:          service.NewAuthService(cfg.AdminPassword, cfg.AdminPasswordBcrypt, cfg.SessionSecret, cfg.SessionTTL),
		Uploads:       service.NewUploadService(fileStore, log),
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		Redis:         rdb,
		UploadDir:     cfg.Upload.Dir,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("fan pass service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
