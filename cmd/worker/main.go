package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/studycards/backend/internal/config"
	"github.com/studycards/backend/internal/queue/asynqserver"
	"github.com/studycards/backend/internal/worker"
	"github.com/studycards/backend/pkg/email/smtp"
	"github.com/studycards/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env)
	defer appLogger.Sync() //nolint:errcheck

	logger.Info("starting email worker", zap.String("env", cfg.Env))

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		logger.Error("smtp sender creation failed", zap.Error(err))
		os.Exit(1)
	}

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})

	srv, mux := asynqserver.New(cfg.Cache, workers)
	if err := srv.Start(mux); err != nil {
		logger.Error("asynq server start failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	srv.Shutdown()

	logger.Info("worker stopped")
}
