package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/api/handlers"
	"github.com/stadtwache/stadtwache-api/config"
)

const shutdownTimeout = 30 * time.Second

func main() {
	a := handlers.App{}
	a.Config = *config.New()
	defer zap.L().Sync()

	// initialize database and router
	if err := a.Initialize(); err != nil {
		zap.S().With(err).Fatal("failed to initialize stadtwache-api")
	}

	server := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		zap.S().Infow("stadtwache-api is up and running",
			"port", a.Config.Port,
			"url", a.Config.BaseURL,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().With(err).Fatal("server stopped unexpectedly")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	zap.S().Infow("received terminate, graceful shutdown", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.S().With(err).Error("cannot gracefully shutdown")
	}
	if err := a.Close(ctx); err != nil {
		zap.S().With(err).Error("failed to disconnect from database")
	}
	zap.S().Info("server stopped")
}
