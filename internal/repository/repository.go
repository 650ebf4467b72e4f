// Package repository serves station and train data through an
// offline-first read-through cache: locally stored data is handed out
// immediately, a network refresh follows, and concurrent fetches for
// the same key are coalesced into one call.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"railboard.fi/internal/digitraffic"
	"railboard.fi/internal/models"
	"railboard.fi/internal/store"
)

var (
	ErrStationNotFound = errors.New("station not found")
	ErrTrainNotFound   = errors.New("train not found")
)

// Haparanda lies on the Swedish side of the border but is served by
// Finnish passenger trains, so it survives the country filter.
const haparandaStationCode = 1332

// LatestDeparture selects the most recent run of a train number
// instead of a fixed departure date.
const LatestDeparture = "latest"

// Repository is the process-wide cache over the network client and the
// local store. All methods are safe for concurrent use.
type Repository struct {
	client *digitraffic.Client
	store  *store.Store
	logger *slog.Logger
	group  singleflight.Group

	mu        sync.RWMutex
	stations  []models.Station
	trains    map[string][]models.Train
	trainRuns map[string]models.Train
	causes    *models.CauseCategories

	nameMu        sync.Mutex
	nameMapper    *models.StationNameMapper
	nameOverrides map[int]string
}

// NewRepository wires the cache over its two collaborators. The
// overrides map carries localized station display names and may be
// nil.
func NewRepository(client *digitraffic.Client, st *store.Store, logger *slog.Logger, overrides map[int]string) *Repository {
	return &Repository{
		client:        client,
		store:         st,
		logger:        logger,
		trains:        make(map[string][]models.Train),
		trainRuns:     make(map[string]models.Train),
		nameOverrides: overrides,
	}
}

// Stations returns the station list, preferring the in-memory
// snapshot, then the local store, then the network.
func (r *Repository) Stations(ctx context.Context) ([]models.Station, error) {
	if cached, ok := r.cachedStations(ctx); ok {
		return cached, nil
	}
	stations, _, err := r.refreshStations(ctx)
	return stations, err
}

// cachedStations serves the snapshot without touching the network. The
// store read populates the in-memory copy so later change detection
// compares against it.
func (r *Repository) cachedStations(ctx context.Context) ([]models.Station, bool) {
	r.mu.RLock()
	cached := r.stations
	r.mu.RUnlock()
	if cached != nil {
		return cached, true
	}

	stored, err := r.store.Stations(ctx)
	if err != nil {
		r.logger.Warn("failed to read station cache", "error", err)
		return nil, false
	}
	if len(stored) == 0 {
		return nil, false
	}

	r.mu.Lock()
	if r.stations == nil {
		r.stations = stored
	}
	cached = r.stations
	r.mu.Unlock()
	return cached, true
}

// refreshStations fetches, maps, filters, and persists the station
// list. Concurrent callers share one in-flight fetch. The bool reports
// whether the snapshot materially changed.
func (r *Repository) refreshStations(ctx context.Context) ([]models.Station, bool, error) {
	type refreshed struct {
		stations []models.Station
		changed  bool
	}

	v, err, _ := r.group.Do("stations", func() (any, error) {
		entities, err := r.client.Stations(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching stations: %w", err)
		}
		mapped, err := digitraffic.MapStations(entities)
		if err != nil {
			return nil, err
		}
		stations := filterStations(mapped)

		r.mu.Lock()
		changed := !slices.Equal(r.stations, stations)
		r.stations = stations
		r.mu.Unlock()

		if changed {
			if err := r.store.ReplaceStations(ctx, stations); err != nil {
				// The fresh data is still good; only persistence failed.
				r.logger.Warn("failed to persist station cache", "error", err)
			}
		}
		return refreshed{stations: stations, changed: changed}, nil
	})
	if err != nil {
		return nil, false, err
	}
	result := v.(refreshed)
	return result.stations, result.changed, nil
}

// filterStations keeps Finnish passenger stations, plus Haparanda.
func filterStations(stations []models.Station) []models.Station {
	kept := make([]models.Station, 0, len(stations))
	for _, station := range stations {
		if station.Code == haparandaStationCode {
			kept = append(kept, station)
			continue
		}
		if station.CountryCode == "FI" && station.PassengerTraffic {
			kept = append(kept, station)
		}
	}
	return kept
}

// FetchStation returns the single station with the given code, from
// cache when possible. A code outside the collection is a not-found
// error, never a partial value.
func (r *Repository) FetchStation(ctx context.Context, code int) (models.Station, error) {
	stations, err := r.Stations(ctx)
	if err != nil {
		return models.Station{}, err
	}
	for _, station := range stations {
		if station.Code == code {
			return station, nil
		}
	}
	return models.Station{}, fmt.Errorf("station %d: %w", code, ErrStationNotFound)
}

// StationByShortCode resolves a station by its short code, fetching
// the collection if needed.
func (r *Repository) StationByShortCode(ctx context.Context, shortCode string) (models.Station, error) {
	stations, err := r.Stations(ctx)
	if err != nil {
		return models.Station{}, err
	}
	for _, station := range stations {
		if station.ShortCode == shortCode {
			return station, nil
		}
	}
	return models.Station{}, fmt.Errorf("station %q: %w", shortCode, ErrStationNotFound)
}

// TrainsAtStation returns the trains currently calling at a station,
// fetching when the session cache has nothing.
func (r *Repository) TrainsAtStation(ctx context.Context, shortCode string) ([]models.Train, error) {
	r.mu.RLock()
	cached, ok := r.trains[shortCode]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}
	trains, _, err := r.refreshTrainsAtStation(ctx, shortCode)
	return trains, err
}

func (r *Repository) refreshTrainsAtStation(ctx context.Context, shortCode string) ([]models.Train, bool, error) {
	type refreshed struct {
		trains  []models.Train
		changed bool
	}

	v, err, _ := r.group.Do("trains/"+shortCode, func() (any, error) {
		entities, err := r.client.TrainsAtStation(ctx, shortCode, digitraffic.DefaultLiveTrainOptions())
		if err != nil {
			return nil, fmt.Errorf("fetching trains for %s: %w", shortCode, err)
		}
		trains, err := digitraffic.MapTrains(entities)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		changed := !trainsEqual(r.trains[shortCode], trains)
		r.trains[shortCode] = trains
		r.mu.Unlock()

		return refreshed{trains: trains, changed: changed}, nil
	})
	if err != nil {
		return nil, false, err
	}
	result := v.(refreshed)
	return result.trains, result.changed, nil
}

// Train returns one run of a train. Use LatestDeparture as the date
// for the most recent run.
func (r *Repository) Train(ctx context.Context, departureDate string, number int) (models.Train, error) {
	key := trainKey(departureDate, number)
	r.mu.RLock()
	cached, ok := r.trainRuns[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}
	train, _, err := r.refreshTrain(ctx, departureDate, number)
	return train, err
}

func (r *Repository) refreshTrain(ctx context.Context, departureDate string, number int) (models.Train, bool, error) {
	type refreshed struct {
		train   models.Train
		changed bool
	}

	key := trainKey(departureDate, number)
	v, err, _ := r.group.Do(key, func() (any, error) {
		var entities []digitraffic.TrainEntity
		var err error
		if departureDate == LatestDeparture {
			entities, err = r.client.LatestTrain(ctx, number)
		} else {
			entities, err = r.client.Train(ctx, departureDate, number)
		}
		if err != nil {
			return nil, fmt.Errorf("fetching train %d: %w", number, err)
		}
		trains, err := digitraffic.MapTrains(entities)
		if err != nil {
			return nil, err
		}
		if len(trains) == 0 {
			return nil, fmt.Errorf("train %d on %s: %w", number, departureDate, ErrTrainNotFound)
		}
		train := trains[0]

		r.mu.Lock()
		previous, had := r.trainRuns[key]
		changed := !had || previous.Version != train.Version
		r.trainRuns[key] = train
		r.mu.Unlock()

		return refreshed{train: train, changed: changed}, nil
	})
	if err != nil {
		return models.Train{}, false, err
	}
	result := v.(refreshed)
	return result.train, result.changed, nil
}

func trainKey(departureDate string, number int) string {
	return fmt.Sprintf("train/%s/%d", departureDate, number)
}

// CauseCategories returns the three cause code tables, fetched once
// per process and shared afterwards.
func (r *Repository) CauseCategories(ctx context.Context) (models.CauseCategories, error) {
	r.mu.RLock()
	cached := r.causes
	r.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	v, err, _ := r.group.Do("cause-categories", func() (any, error) {
		tables, err := r.client.CauseCategories(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching cause categories: %w", err)
		}
		categories := digitraffic.MapCauseCategories(tables)

		r.mu.Lock()
		r.causes = &categories
		r.mu.Unlock()
		return categories, nil
	})
	if err != nil {
		return models.CauseCategories{}, err
	}
	return v.(models.CauseCategories), nil
}

// trainsEqual decides whether a refresh brought material change. The
// version on each train covers every live update, so number and
// version pairs are enough.
func trainsEqual(a, b []models.Train) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Number != b[i].Number || a[i].DepartureDate != b[i].DepartureDate || a[i].Version != b[i].Version {
			return false
		}
	}
	return true
}
