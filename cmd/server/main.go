package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	httpapi "egid/internal/http"
	nidmetrics "egid/internal/nationalid/metrics"
	"egid/internal/nationalid/service"
	"egid/internal/platform/config"
	"egid/internal/platform/httpserver"
	"egid/internal/platform/logger"
	platformmetrics "egid/internal/platform/metrics"
	"egid/internal/platform/tracing"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Decoding lives in internal/nationalid.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "egid: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(os.Stdout, cfg)

	tp, err := tracing.Install(cfg, os.Stdout)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error("tracer provider shutdown failed", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := service.New(log, nidmetrics.New(reg))
	router := httpapi.NewRouter(httpapi.Deps{
		Logger:     log,
		NationalID: svc,
		Metrics:    platformmetrics.New(reg),
		Gatherer:   reg,
	})
	srv := httpserver.New(cfg, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting egid", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}
