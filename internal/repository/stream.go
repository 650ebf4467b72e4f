package repository

import (
	"context"

	"railboard.fi/internal/models"
)

// Update is one emission of a streaming read. Exactly one of Value,
// NoNewData, or Err is meaningful per update.
type Update[T any] struct {
	Value     T
	NoNewData bool
	Err       error
}

// StationsStream implements the streaming read contract for the
// station list: the locally cached snapshot first when one exists,
// then the refreshed snapshot, or a no-new-data signal when the
// refresh brought nothing, or the refresh error. The channel closes
// after the refresh outcome.
func (r *Repository) StationsStream(ctx context.Context) <-chan Update[[]models.Station] {
	ch := make(chan Update[[]models.Station], 2)
	go func() {
		defer close(ch)

		cached, hadCached := r.cachedStations(ctx)
		if hadCached {
			ch <- Update[[]models.Station]{Value: cached}
		}

		stations, changed, err := r.refreshStations(ctx)
		switch {
		case err != nil:
			ch <- Update[[]models.Station]{Err: err}
		case hadCached && !changed:
			ch <- Update[[]models.Station]{NoNewData: true}
		default:
			ch <- Update[[]models.Station]{Value: stations}
		}
	}()
	return ch
}

// TrainsAtStationStream streams the station board for one station:
// session-cached trains first, then the refresh outcome.
func (r *Repository) TrainsAtStationStream(ctx context.Context, shortCode string) <-chan Update[[]models.Train] {
	ch := make(chan Update[[]models.Train], 2)
	go func() {
		defer close(ch)

		r.mu.RLock()
		cached, hadCached := r.trains[shortCode]
		r.mu.RUnlock()
		if hadCached {
			ch <- Update[[]models.Train]{Value: cached}
		}

		trains, changed, err := r.refreshTrainsAtStation(ctx, shortCode)
		switch {
		case err != nil:
			ch <- Update[[]models.Train]{Err: err}
		case hadCached && !changed:
			ch <- Update[[]models.Train]{NoNewData: true}
		default:
			ch <- Update[[]models.Train]{Value: trains}
		}
	}()
	return ch
}

// TrainStream streams one train run: the session-cached value first,
// then the refresh outcome.
func (r *Repository) TrainStream(ctx context.Context, departureDate string, number int) <-chan Update[models.Train] {
	ch := make(chan Update[models.Train], 2)
	go func() {
		defer close(ch)

		r.mu.RLock()
		cached, hadCached := r.trainRuns[trainKey(departureDate, number)]
		r.mu.RUnlock()
		if hadCached {
			ch <- Update[models.Train]{Value: cached}
		}

		train, changed, err := r.refreshTrain(ctx, departureDate, number)
		switch {
		case err != nil:
			ch <- Update[models.Train]{Err: err}
		case hadCached && !changed:
			ch <- Update[models.Train]{NoNewData: true}
		default:
			ch <- Update[models.Train]{Value: train}
		}
	}()
	return ch
}
