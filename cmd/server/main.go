package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/internal/config"
	"github.com/vijay-heerarajan/billing-app/internal/db"
	"github.com/vijay-heerarajan/billing-app/internal/logging"
	"github.com/vijay-heerarajan/billing-app/internal/policy"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Open the store, run migrations and exit")

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.App.LogLevel, cfg.App.Dev)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, closeStore, err := db.OpenStore(ctx, cfg, log)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("failed to open store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.WithError(err).Warn("closing store")
		}
	}()

	if *migrateOnlyFlag {
		log.WithField("backend", cfg.Store.Backend).Info("migrations completed successfully")
		return
	}

	routerCfg := policy.NewRouterConfig(st, cfg.App.SessionSecret, log)
	routerCfg.Sessions.SetSecure(!cfg.App.Dev)
	appHandler := NewApp(routerCfg, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      withLogging(log, appHandler),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Server.Port, "dev": cfg.App.Dev, "backend": cfg.Store.Backend}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("server stopped gracefully")
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging middleware.
func withLogging(log logrus.FieldLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}
