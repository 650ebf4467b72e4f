package controller

import (
	"context"
	"fmt"
	"strings"

	"railboard.fi/internal/models"
	"railboard.fi/internal/repository"
)

// StationsEvent is an intent on the station list screen.
type StationsEvent interface{ isStationsEvent() }

type LoadStations struct{}
type ReloadStations struct{}
type FilterStations struct{ Query string }

func (LoadStations) isStationsEvent()   {}
func (ReloadStations) isStationsEvent() {}
func (FilterStations) isStationsEvent() {}

// StationsResult is the closed set of outcomes on the station list
// screen. Each value is exactly one state transition.
type StationsResult interface{ isStationsResult() }

type StationsLoading struct{}
type StationsReloading struct{}
type StationsLoaded struct{ Stations []models.Station }
type StationsUnchanged struct{}
type StationsFailed struct{ Message string }
type StationsQueryChanged struct{ Query string }

func (StationsLoading) isStationsResult()      {}
func (StationsReloading) isStationsResult()    {}
func (StationsLoaded) isStationsResult()       {}
func (StationsUnchanged) isStationsResult()    {}
func (StationsFailed) isStationsResult()       {}
func (StationsQueryChanged) isStationsResult() {}

// StationsState is the immutable snapshot of the station list screen.
// The filtered list is derived on access, never stored.
type StationsState struct {
	stations     []models.Station
	query        string
	loading      bool
	reloading    bool
	errorMessage string
}

// Stations returns the stations matching the current query.
func (s StationsState) Stations() []models.Station {
	if s.query == "" {
		return s.stations
	}
	query := strings.ToLower(s.query)
	var matching []models.Station
	for _, station := range s.stations {
		if strings.Contains(strings.ToLower(station.Name), query) ||
			strings.EqualFold(station.ShortCode, s.query) {
			matching = append(matching, station)
		}
	}
	return matching
}

func (s StationsState) Query() string { return s.query }

// IsLoading is true while either an initial load or a reload is in
// flight.
func (s StationsState) IsLoading() bool { return s.loading || s.reloading }

func (s StationsState) ErrorMessage() string { return s.errorMessage }

func reduceStations(state StationsState, result StationsResult) StationsState {
	switch r := result.(type) {
	case StationsLoading:
		return StationsState{query: state.query, loading: true}
	case StationsReloading:
		state.reloading = true
		state.errorMessage = ""
		return state
	case StationsLoaded:
		return StationsState{stations: r.Stations, query: state.query}
	case StationsUnchanged:
		state.loading = false
		state.reloading = false
		return state
	case StationsFailed:
		if state.reloading {
			// Stale-while-revalidate: keep the last good payload.
			state.reloading = false
			state.errorMessage = r.Message
			return state
		}
		return StationsState{query: state.query, errorMessage: r.Message}
	case StationsQueryChanged:
		state.query = r.Query
		return state
	default:
		panic(fmt.Sprintf("unhandled stations result %T", result))
	}
}

// StationsController runs the station list screen.
type StationsController struct {
	*Controller[StationsEvent, StationsResult, StationsState]
	repo *repository.Repository
}

func NewStationsController(repo *repository.Repository) *StationsController {
	c := &StationsController{repo: repo}
	c.Controller = New(StationsState{}, reduceStations, c.handleEvent)
	return c
}

func (c *StationsController) handleEvent(ctx context.Context, event StationsEvent, emit func(StationsResult)) {
	switch e := event.(type) {
	case LoadStations:
		emit(StationsLoading{})
		c.load(ctx, emit)
	case ReloadStations:
		emit(StationsReloading{})
		c.load(ctx, emit)
	case FilterStations:
		emit(StationsQueryChanged{Query: e.Query})
	default:
		panic(fmt.Sprintf("unhandled stations event %T", event))
	}
}

func (c *StationsController) load(ctx context.Context, emit func(StationsResult)) {
	for update := range c.repo.StationsStream(ctx) {
		switch {
		case update.Err != nil:
			emit(StationsFailed{Message: update.Err.Error()})
		case update.NoNewData:
			emit(StationsUnchanged{})
		default:
			emit(StationsLoaded{Stations: c.renamed(ctx, update.Value)})
		}
	}
}

// renamed applies the localized display names. The mapper is built
// from the same collection, so once stations are flowing it cannot
// fail; losing the rename on an error still leaves usable data.
func (c *StationsController) renamed(ctx context.Context, stations []models.Station) []models.Station {
	mapper, err := c.repo.StationNameMapper(ctx)
	if err != nil {
		return stations
	}
	renamed := make([]models.Station, len(stations))
	for i, station := range stations {
		renamed[i] = mapper.Rename(station)
	}
	return renamed
}
