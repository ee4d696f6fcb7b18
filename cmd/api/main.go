package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"metalprices-service/internal/bootstrap"
	"metalprices-service/internal/config"
	infraconfig "metalprices-service/internal/infrastructure/config"
	httpserver "metalprices-service/internal/infrastructure/http"
	"metalprices-service/internal/infrastructure/logx"
)

func init() { _ = godotenv.Load() }

func main() {
	ctx := context.Background()
	logger := logx.L()
	cfg := config.Load()
	addr := ":" + cfg.Port

	storage, closeStorage, err := bootstrap.BuildStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap storage", zap.Error(err))
	}
	defer closeStorage()

	sources, err := bootstrap.BuildSources(cfg)
	if err != nil {
		logger.Fatal("bootstrap sources", zap.Error(err))
	}

	cache, closeCache, err := bootstrap.BuildCache(cfg)
	if err != nil {
		logger.Fatal("bootstrap cache", zap.Error(err))
	}
	defer closeCache()

	svc := bootstrap.BuildService(storage, sources, cache)
	srv := httpserver.NewServer(svc, storage.Ping)
	mux := httpserver.NewRouter(srv)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr), zap.String("sources", cfg.Sources))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), infraconfig.DefaultShutdownTimeout)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
