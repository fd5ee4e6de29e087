package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MunifTanjim/streamsave/internal/config"
	"github.com/MunifTanjim/streamsave/internal/endpoint"
	"github.com/MunifTanjim/streamsave/internal/logger"
	"github.com/MunifTanjim/streamsave/internal/server"
	"github.com/MunifTanjim/streamsave/internal/worker"
)

var log = logger.Scoped("streamsave")

func main() {
	mux := http.NewServeMux()
	endpoint.AddEndpoints(mux)

	refresher := worker.StartTrackerRefresher(endpoint.Trackers)
	defer refresher.Stop()

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           server.WithRequestContext(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info("stream save is ready", "addr", srv.Addr)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown did not finish cleanly", "error", err)
		}
	}
}
