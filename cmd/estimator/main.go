package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"embroidery-quote/internal/config"
	"embroidery-quote/internal/service/estimate"
	generate_excel "embroidery-quote/internal/service/generate-excel"
	"embroidery-quote/internal/service/quote"
	"embroidery-quote/internal/storage/mysql"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env, cfg.ErrorLogPath)

	app := &application{
		renderer:  quote.NewRenderer(cfg.Quote.ValidityDays),
		generator: generate_excel.NewGenerateService(),
		now:       time.Now,
	}

	// presetStorage stays a nil interface without a database, so the catalog serves built-ins only.
	var presetStorage estimate.PresetStorage
	if cfg.Storage.Enabled {
		storage, err := mysql.New(cfg.Storage)
		if err != nil {
			log.Error("failed to open db", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer storage.Close()

		presetStorage = storage
		app.admin = storage
	}

	app.catalog = estimate.NewPresetCatalog(log, presetStorage)
	app.estimator = estimate.New(log, app.catalog)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, app),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server started", slog.String("address", cfg.Address), slog.Bool("storage", cfg.Storage.Enabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped")
}
