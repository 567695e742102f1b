package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/studycards/backend/internal/api/http"
	"github.com/studycards/backend/internal/cache"
	"github.com/studycards/backend/internal/config"
	"github.com/studycards/backend/internal/db"
	"github.com/studycards/backend/internal/queue"
	"github.com/studycards/backend/internal/queue/asynqserver"
	queueClient "github.com/studycards/backend/internal/queue/client"
	"github.com/studycards/backend/internal/repository"
	"github.com/studycards/backend/internal/server"
	"github.com/studycards/backend/internal/service"
	"github.com/studycards/backend/internal/service/aichat"
	"github.com/studycards/backend/pkg/auth"
	"github.com/studycards/backend/pkg/hash"
	"github.com/studycards/backend/pkg/logger"
	"github.com/studycards/backend/pkg/otp"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env)
	defer appLogger.Sync() //nolint:errcheck

	logger.Info("starting backend api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	mongoClient, database, err := db.New(ctx, cfg.Mongo)
	cancel()
	if err != nil {
		logger.Error("mongo connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("mongo disconnect problem", zap.Error(err))
		}
	}()
	logger.Info("mongo connection done")

	repos := repository.NewRepositories(database)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	err = repos.EnsureIndexes(indexCtx)
	cancelIndex()
	if err != nil {
		logger.Error("index creation failed", zap.Error(err))
		os.Exit(1)
	}

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer redisClient.Close()
	logger.Info("redis connection done")

	asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	defer asynqClient.Close()
	restoreClient := queueClient.SetClient(asynqClient)
	defer restoreClient()

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Error("auth manager creation failed", zap.Error(err))
		os.Exit(1)
	}

	services := service.NewServices(service.Deps{
		Config:        cfg,
		Hasher:        hash.NewBcryptHasher(cfg.Auth.BcryptCost),
		TokenManager:  tokenManager,
		CodeGenerator: otp.NewNumericGenerator(),
		Repos:         repos,
		EmailQueue:    queue.NewEmailQueue(),
		AIClient:      aichat.NewClient(cfg.AI),
		Cache:         redisClient,
	})

	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	shutdownCtx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
