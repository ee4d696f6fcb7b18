package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"metalprices-service/internal/bootstrap"
	"metalprices-service/internal/config"
	"metalprices-service/internal/infrastructure/logx"
	"metalprices-service/internal/infrastructure/worker"
)

func init() { _ = godotenv.Load() }

func main() {
	log := logx.L()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := bootstrap.BuildStorage(ctx, cfg)
	if err != nil {
		log.Fatal("bootstrap storage", zap.Error(err))
	}
	defer closeStorage()

	sources, err := bootstrap.BuildSources(cfg)
	if err != nil {
		log.Fatal("bootstrap sources", zap.Error(err))
	}

	svc := bootstrap.BuildService(storage, sources, nil)
	w := worker.NewCronWorker(svc, cfg.SaveSchedule)
	if err := w.Start(ctx); err != nil {
		log.Fatal("worker exited", zap.Error(err))
	}
}
