// Package app holds the dependencies shared by the HTTP handlers and
// the CLI commands: configuration, the logger, and the cached
// repository.
package app

import (
	"fmt"
	"log/slog"

	"railboard.fi/internal/digitraffic"
	"railboard.fi/internal/models"
	"railboard.fi/internal/repository"
	"railboard.fi/internal/store"
)

// Application wires the collaborators together.
type Application struct {
	Config     Config
	Logger     *slog.Logger
	Repository *repository.Repository

	store *store.Store
}

// NewApplication opens the local store and builds the repository from
// the configuration.
func NewApplication(cfg Config, logger *slog.Logger) (*Application, error) {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening station store: %w", err)
	}

	client := digitraffic.NewClientWithBaseURL(cfg.APIBaseURL)
	repo := repository.NewRepository(client, st, logger, cfg.StationNameOverrides())

	return &Application{
		Config:     cfg,
		Logger:     logger,
		Repository: repo,
		store:      st,
	}, nil
}

// Locale returns the configured display locale.
func (a *Application) Locale() models.Locale {
	switch a.Config.Locale {
	case "fi":
		return models.LocaleFinnish
	case "sv":
		return models.LocaleSwedish
	default:
		return models.LocaleEnglish
	}
}

// Close releases the local store.
func (a *Application) Close() error {
	return a.store.Close()
}
