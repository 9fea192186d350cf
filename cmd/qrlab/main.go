package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qrlab/qrlab"
	"github.com/qrlab/qrlab/api"
	"github.com/qrlab/qrlab/pkg/config"
	"github.com/qrlab/qrlab/pkg/logger"
	"github.com/qrlab/qrlab/pkg/preset"
	"github.com/qrlab/qrlab/pkg/render"
)

var version = "v0.1.0"

type appConfig struct {
	Port        int    `env:"PORT" envDefault:"8555"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	PresetsFile string `env:"PRESETS_FILE"`
}

func main() {
	root := &cobra.Command{
		Use:   "qrlab",
		Short: "QR code lab: generate, style and download QR codes",
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the QR lab HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qrlab %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
		logger.WithAttr(slog.String("service", "qrlab")),
	)
	slog.SetDefault(log)

	presets := map[string]render.Options{}
	if cfg.PresetsFile != "" {
		var err error
		presets, err = preset.Load(cfg.PresetsFile)
		if err != nil {
			return fmt.Errorf("load presets: %w", err)
		}
		log.Info("loaded style presets", slog.Int("count", len(presets)), slog.String("file", cfg.PresetsFile))
	}

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: api.NewRouter(&api.Server{
			Session: qrlab.NewSession(),
			Presets: presets,
			Log:     log,
			Version: version,
		}),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", logger.Component("server"), slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", logger.Error(err))
	}
	return nil
}
