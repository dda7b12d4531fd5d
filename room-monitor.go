package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zabeloliver/room-monitor/roomApi/roomClient"
	"github.com/zabeloliver/room-monitor/roomApp/roomScreens"
	"github.com/zabeloliver/room-monitor/roomApp/roomSession"
	"github.com/zabeloliver/room-monitor/roomApp/roomWeb"
)

func NewLogger(outputs []string, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = outputs
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	return cfg.Build()
}

func main() {
	var configPath, mode string
	flag.StringVar(&configPath, "configFile", "config.yaml", "Path to the config.yaml File.")
	flag.StringVar(&mode, "mode", "", "shell or serve. Overrides the configured mode.")
	flag.Parse()

	cfg, err := loadConfig(configPath, mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := NewLogger(cfg.logOutputs(), cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sugar := logger.Sugar()
	defer sugar.Sync() // flushes buffer, if any

	if cfg.Source == "" {
		sugar.Info("No configuration file found. Using Default config")
	}
	sugar.Infof("Configuration from %q: %+v", cfg.Source, *cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sugar.Info("Creating Metrics-Registry")
	// Create a non-global registry.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewBuildInfoCollector())
	reg.MustRegister(collectors.NewGoCollector())
	m := NewMetrics(reg)

	client := roomClient.NewRoomApiClient(cfg.Api.BaseUrl, sugar)
	client.SetTimeout(cfg.Api.Timeout)
	directory := &instrumentedDirectory{next: client, metrics: m}

	images, err := roomScreens.LoadImages(cfg.Images.Catalogue)
	if err != nil {
		sugar.Fatal(err)
	}
	gate := roomSession.NewGate(sugar)

	if cfg.Metrics.Port > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		go serve(ctx, "metrics", &http.Server{Addr: fmt.Sprintf(":%d", cfg.Metrics.Port), Handler: mux}, sugar)
	}

	switch cfg.Mode {
	case "serve":
		tokens := roomSession.NewTokens(time.Duration(cfg.Web.SessionTtl) * time.Second)
		handler := roomWeb.NewHandler(directory, gate, tokens, images, sugar)
		server := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Web.Port), Handler: roomWeb.NewRouter(handler)}
		serve(ctx, "web", server, sugar)
	default:
		renderer := roomScreens.NewRenderer(roomScreens.Layout{Tablet: cfg.Layout.Tablet, Images: cfg.Layout.Images}, images)
		done := make(chan struct{})
		go func() {
			defer close(done)
			newShell(ctx, os.Stdin, os.Stdout, directory, gate, renderer, sugar).Run()
		}()
		select {
		case <-done:
		case <-ctx.Done():
			sugar.Info("Catch Keyboard interrupt")
		}
	}
	sugar.Info("Stopped")
}

// serve runs server until ctx is done, then shuts it down.
func serve(ctx context.Context, name string, server *http.Server, sugar *zap.SugaredLogger) {
	errs := make(chan error, 1)
	go func() {
		sugar.Infof("%s served at: %v", name, server.Addr)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorf("%s server: %v", name, err)
		}
		return
	case <-ctx.Done():
	}

	sugar.Infof("Shutting down %s server", name)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorf("%s server shutdown: %v", name, err)
	}
}
