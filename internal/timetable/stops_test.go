package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railboard.fi/internal/models"
)

var base = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type rowSpec struct {
	rowType    models.TimetableRowType
	station    int
	minute     int
	actual     *int // minutes offset, nil when no actual time
	commercial bool
	ready      bool
}

func buildTrain(specs ...rowSpec) models.Train {
	rows := make([]models.TimetableRow, 0, len(specs))
	for _, s := range specs {
		row := models.TimetableRow{
			Type:          s.rowType,
			StationCode:   s.station,
			ScheduledTime: base.Add(time.Duration(s.minute) * time.Minute),
			TrainStopping: true,
			MarkedReady:   s.ready,
		}
		commercial := s.commercial
		row.CommercialStop = &commercial
		if s.actual != nil {
			at := base.Add(time.Duration(*s.actual) * time.Minute)
			row.ActualTime = &at
		}
		rows = append(rows, row)
	}
	return models.Train{Number: 59, Type: "IC", Category: models.CategoryLongDistance, Timetable: rows}
}

func minutes(m int) *int {
	return &m
}

func TestStopsPairsOrderedRows(t *testing.T) {
	// Departure@1, Arrival@10 (actual 12:12), Departure@10 (actual 12:15), Arrival@18.
	train := buildTrain(
		rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0, commercial: true},
		rowSpec{rowType: models.RowTypeArrival, station: 10, minute: 10, actual: minutes(12), commercial: true},
		rowSpec{rowType: models.RowTypeDeparture, station: 10, minute: 13, actual: minutes(15), commercial: true},
		rowSpec{rowType: models.RowTypeArrival, station: 18, minute: 30, commercial: true},
	)

	stops := Stops(train)
	require.Len(t, stops, 3)

	assert.True(t, stops[0].IsOrigin())
	assert.Equal(t, 1, stops[0].StationCode())

	assert.True(t, stops[1].IsWaypoint())
	assert.Equal(t, 10, stops[1].StationCode())
	assert.True(t, stops[1].IsReached())
	assert.True(t, stops[1].IsDeparted())

	assert.True(t, stops[2].IsDestination())
	assert.Equal(t, 18, stops[2].StationCode())
	assert.True(t, stops[2].IsNotReached())
}

func TestStopsEmptyAndSingleton(t *testing.T) {
	assert.Empty(t, Stops(models.Train{}))

	// A single event is not a visit, whichever direction it has.
	departureOnly := buildTrain(rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0})
	assert.Empty(t, Stops(departureOnly))

	arrivalOnly := buildTrain(rowSpec{rowType: models.RowTypeArrival, station: 1, minute: 0})
	assert.Empty(t, Stops(arrivalOnly))
}

func TestStopsDropsMalformedInteriorWindows(t *testing.T) {
	// The interior pair arrives at 10 but departs from 11; no waypoint
	// is emitted for it.
	train := buildTrain(
		rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0},
		rowSpec{rowType: models.RowTypeArrival, station: 10, minute: 10},
		rowSpec{rowType: models.RowTypeDeparture, station: 11, minute: 13},
		rowSpec{rowType: models.RowTypeArrival, station: 18, minute: 30},
	)

	stops := Stops(train)
	require.Len(t, stops, 2)
	assert.True(t, stops[0].IsOrigin())
	assert.True(t, stops[1].IsDestination())
}

func TestStopsLoneFragmentDoesNotShiftLaterPairs(t *testing.T) {
	// A stray arrival at 5 has no matching departure. The pair at 10
	// after it must still be found.
	train := buildTrain(
		rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0, commercial: true},
		rowSpec{rowType: models.RowTypeArrival, station: 5, minute: 5},
		rowSpec{rowType: models.RowTypeArrival, station: 10, minute: 10, commercial: true},
		rowSpec{rowType: models.RowTypeDeparture, station: 10, minute: 13, commercial: true},
		rowSpec{rowType: models.RowTypeArrival, station: 18, minute: 30, commercial: true},
	)

	stops := Stops(train)
	require.Len(t, stops, 3)
	assert.True(t, stops[0].IsOrigin())
	assert.True(t, stops[1].IsWaypoint())
	assert.Equal(t, 10, stops[1].StationCode())
	assert.True(t, stops[2].IsDestination())
}

func TestStopsInteriorPairInWrongOrderIsDropped(t *testing.T) {
	// Departure before arrival inside the window: dropped, not an error.
	train := buildTrain(
		rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0},
		rowSpec{rowType: models.RowTypeDeparture, station: 10, minute: 10},
		rowSpec{rowType: models.RowTypeArrival, station: 10, minute: 13},
		rowSpec{rowType: models.RowTypeArrival, station: 18, minute: 30},
	)

	stops := Stops(train)
	require.Len(t, stops, 2)
	assert.Equal(t, 1, stops[0].StationCode())
	assert.Equal(t, 18, stops[1].StationCode())
}

func TestStopsRoundTripKeepsBothVisits(t *testing.T) {
	// A circular service starts and ends at station 1. The two visits
	// stay separate, each with its own role.
	train := buildTrain(
		rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0},
		rowSpec{rowType: models.RowTypeArrival, station: 10, minute: 10},
		rowSpec{rowType: models.RowTypeDeparture, station: 10, minute: 13},
		rowSpec{rowType: models.RowTypeArrival, station: 1, minute: 30},
	)

	stops := Stops(train)
	require.Len(t, stops, 3)
	assert.True(t, stops[0].IsOrigin())
	assert.True(t, stops[2].IsDestination())

	visits := StopsAt(train, 1)
	require.Len(t, visits, 2)
	assert.True(t, visits[0].IsOrigin())
	assert.True(t, visits[1].IsDestination())
}

func TestStopsAt(t *testing.T) {
	train := buildTrain(
		rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0},
		rowSpec{rowType: models.RowTypeArrival, station: 10, minute: 10},
		rowSpec{rowType: models.RowTypeDeparture, station: 10, minute: 13},
		rowSpec{rowType: models.RowTypeArrival, station: 18, minute: 30},
	)

	require.Len(t, StopsAt(train, 10), 1)
	assert.Empty(t, StopsAt(train, 999))
}

func TestCommercialStops(t *testing.T) {
	train := buildTrain(
		rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0, commercial: true},
		// Technical stop: the train halts but takes no passengers.
		rowSpec{rowType: models.RowTypeArrival, station: 5, minute: 5},
		rowSpec{rowType: models.RowTypeDeparture, station: 5, minute: 6},
		rowSpec{rowType: models.RowTypeArrival, station: 10, minute: 10, commercial: true},
		rowSpec{rowType: models.RowTypeDeparture, station: 10, minute: 13, commercial: true},
		rowSpec{rowType: models.RowTypeArrival, station: 18, minute: 30, commercial: true},
	)

	all := Stops(train)
	require.Len(t, all, 4)

	commercial := CommercialStops(train)
	require.Len(t, commercial, 3)
	assert.Equal(t, 1, commercial[0].StationCode())
	assert.Equal(t, 10, commercial[1].StationCode())
	assert.Equal(t, 18, commercial[2].StationCode())
}

func TestCurrentCommercialStop(t *testing.T) {
	t.Run("not started", func(t *testing.T) {
		train := buildTrain(
			rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0, commercial: true},
			rowSpec{rowType: models.RowTypeArrival, station: 18, minute: 30, commercial: true},
		)
		assert.Nil(t, CurrentCommercialStop(train))
	})

	t.Run("last stop with actual time wins", func(t *testing.T) {
		train := buildTrain(
			rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0, actual: minutes(1), commercial: true},
			rowSpec{rowType: models.RowTypeArrival, station: 10, minute: 10, actual: minutes(12), commercial: true},
			rowSpec{rowType: models.RowTypeDeparture, station: 10, minute: 13, commercial: true},
			rowSpec{rowType: models.RowTypeArrival, station: 18, minute: 30, commercial: true},
		)

		current := CurrentCommercialStop(train)
		require.NotNil(t, current)
		assert.Equal(t, 10, current.StationCode())
	})

	t.Run("departure marked ready counts as progress", func(t *testing.T) {
		train := buildTrain(
			rowSpec{rowType: models.RowTypeDeparture, station: 1, minute: 0, commercial: true, ready: true},
			rowSpec{rowType: models.RowTypeArrival, station: 18, minute: 30, commercial: true},
		)

		current := CurrentCommercialStop(train)
		require.NotNil(t, current)
		assert.Equal(t, 1, current.StationCode())
	})
}
