// Package timetable derives station-visit semantics from a train's raw
// ordered timetable. All functions are pure: they never mutate the
// train and never block.
package timetable

import "railboard.fi/internal/models"

// Stops pairs a train's ordered timetable rows into station visits.
//
// The first row, when it is a departure, becomes the origin stop. A
// window of two rows then slides over the interior; a window forms a
// waypoint only when it is an arrival followed by a departure at the
// same station. Anything else (technical stops, lone fragments)
// produces no stop for that window and never shifts the pairing of
// the rows after it. The last row, when it is an arrival, becomes the
// destination stop. A train that starts and ends at the same station
// keeps two distinct stops for it.
func Stops(train models.Train) []models.Stop {
	rows := train.Timetable
	if len(rows) < 2 {
		// A single event is not a visit; nothing to pair.
		return nil
	}

	var stops []models.Stop
	if rows[0].Type == models.RowTypeDeparture {
		stops = append(stops, models.NewStop(nil, &rows[0]))
	}
	// A window starting at a consumed departure can never match, so a
	// matched pair needs no extra skip.
	for i := 1; i+1 < len(rows); i++ {
		arrival, departure := &rows[i], &rows[i+1]
		if arrival.Type != models.RowTypeArrival || departure.Type != models.RowTypeDeparture {
			continue
		}
		if arrival.StationCode != departure.StationCode {
			continue
		}
		stops = append(stops, models.NewStop(arrival, departure))
	}
	if last := &rows[len(rows)-1]; last.Type == models.RowTypeArrival {
		stops = append(stops, models.NewStop(last, nil))
	}
	return stops
}

// CommercialStops filters Stops down to the visits where the train
// actually calls for passengers, preserving order.
func CommercialStops(train models.Train) []models.Stop {
	var commercial []models.Stop
	for _, stop := range Stops(train) {
		if stop.IsCommercial() {
			commercial = append(commercial, stop)
		}
	}
	return commercial
}

// CurrentCommercialStop returns the last commercial stop the train has
// visibly progressed to: one with a recorded actual arrival or
// departure time, or whose departure is marked ready. It returns nil
// while the train has not started.
func CurrentCommercialStop(train models.Train) *models.Stop {
	var current *models.Stop
	for _, stop := range CommercialStops(train) {
		if hasProgress(stop) {
			s := stop
			current = &s
		}
	}
	return current
}

func hasProgress(stop models.Stop) bool {
	if stop.Arrival != nil && stop.Arrival.ActualTime != nil {
		return true
	}
	if stop.Departure != nil && (stop.Departure.ActualTime != nil || stop.Departure.MarkedReady) {
		return true
	}
	return false
}

// StopsAt returns every stop of the train at the given station: zero,
// one, or two entries (two when the station is both origin and
// destination).
func StopsAt(train models.Train, stationCode int) []models.Stop {
	var matching []models.Stop
	for _, stop := range Stops(train) {
		if stop.StationCode() == stationCode {
			matching = append(matching, stop)
		}
	}
	return matching
}
