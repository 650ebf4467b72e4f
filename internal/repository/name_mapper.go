package repository

import (
	"context"

	"railboard.fi/internal/models"
)

// StationNameMapper returns the derived name lookup, computing it at
// most once per process. The mutex is held across the whole first
// computation: concurrent first callers block on it and then share the
// single result instead of racing to build their own. A failed build
// is not cached, so the next caller retries.
func (r *Repository) StationNameMapper(ctx context.Context) (models.StationNameMapper, error) {
	r.nameMu.Lock()
	defer r.nameMu.Unlock()

	if r.nameMapper != nil {
		return *r.nameMapper, nil
	}

	stations, err := r.Stations(ctx)
	if err != nil {
		return models.StationNameMapper{}, err
	}
	mapper := models.NewStationNameMapper(stations, r.nameOverrides)
	r.nameMapper = &mapper
	return mapper, nil
}
