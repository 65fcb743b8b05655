package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/pkg/config"
	"github.com/FACorreiaa/mindful-miles/internal/routes"
	"github.com/FACorreiaa/mindful-miles/internal/server"
	"github.com/FACorreiaa/mindful-miles/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err = logger.Init(logger.ParseLevel(cfg.Observability.LogLevel), cfg.Observability.LogFormat,
		zap.String("service", cfg.Observability.ServiceName)); err != nil {
		return err
	}
	l := logger.Log
	defer func() { _ = l.Sync() }()

	otelShutdown, err := server.InitObservability(cfg.Observability, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			l.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	ctx := context.Background()
	srv, err := server.New(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer srv.Close()

	handlers, err := routes.NewAppHandlers(ctx, cfg, srv.GetDBPool(), l)
	if err != nil {
		return err
	}
	srv.SetRouter(server.SetupRouter(cfg, handlers, l))

	var pprofServer *http.Server
	if cfg.Observability.PprofAddr != "" {
		pprofServer = server.StartPprofServer(cfg.Observability.PprofAddr, l)
	}

	httpServer := srv.HTTPServer()

	done := make(chan bool, 1)
	go server.GracefulShutdown(l, done, httpServer, pprofServer)

	l.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Error("Server error", zap.Error(err))
		return err
	}

	<-done
	l.Info("Graceful shutdown complete")
	return nil
}
