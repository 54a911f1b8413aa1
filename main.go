package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Amrutha2803/employee-list/internal/config"
	"github.com/Amrutha2803/employee-list/internal/db"
	"github.com/Amrutha2803/employee-list/internal/employees"
	"github.com/Amrutha2803/employee-list/internal/logger"
	"github.com/Amrutha2803/employee-list/internal/metrics"
	"github.com/Amrutha2803/employee-list/internal/notify"
	"github.com/Amrutha2803/employee-list/internal/records"
	"github.com/Amrutha2803/employee-list/internal/router"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		panic(err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	backend, err := db.OpenBackend(ctx, cfg)
	if err != nil {
		log.Fatal("open store", "driver", cfg.StoreDriver, "error", err)
	}
	defer backend.Close()

	m := metrics.New()
	var opts []employees.Option
	if cfg.IDStrategy == config.IDStrategySequence {
		opts = append(opts, employees.WithSequence(records.NewSequence(backend)))
	}
	svc := employees.NewService(
		records.NewKVStore(backend, cfg.StorageKey, log),
		notify.NewLogNotifier(log.With("component", "notify")),
		log.With("component", "employees"),
		m,
		opts...,
	)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	router.Setup(r, router.Deps{
		Backend: backend,
		Service: svc,
		Prefs:   records.NewPreferences(backend),
		Metrics: m,
		Log:     log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", "port", cfg.Port, "driver", cfg.StoreDriver, "id_strategy", cfg.IDStrategy)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
	log.Info("stopped")
}
