package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"railboard.fi/internal/app"
	"railboard.fi/internal/logging"
	"railboard.fi/internal/restapi"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a TOML configuration file")

	cfg := app.DefaultConfig()
	flag.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	flag.StringVar(&cfg.Env, "env", cfg.Env, "Environment (development|staging|production)")
	flag.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Digitraffic API base URL")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the station cache database")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if configPath != "" {
		loaded, err := app.LoadConfig(configPath)
		if err != nil {
			logger.Error("failed to load configuration", "error", err)
			os.Exit(1)
		}
		cfg = loaded
		// Flags win over the file for values given on the command line.
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "port":
				fmt.Sscanf(f.Value.String(), "%d", &cfg.Port) // nolint:errcheck
			case "env":
				cfg.Env = f.Value.String()
			case "api-base-url":
				cfg.APIBaseURL = f.Value.String()
			case "db":
				cfg.DBPath = f.Value.String()
			}
		})
	}

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer application.Close() // nolint:errcheck

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down server")
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
