package models

import (
	"fmt"
	"time"
)

// Stop is one station visit of a train: an optional arrival row paired
// with an optional departure row. At least one side is always present.
// A Stop with only a departure is the train's origin, one with only an
// arrival is its destination, and one with both is a waypoint.
type Stop struct {
	Arrival   *TimetableRow `json:"arrival,omitempty"`
	Departure *TimetableRow `json:"departure,omitempty"`
}

// NewStop pairs an arrival and a departure row into a Stop. The pairing
// invariants are preconditions: violating them is a programming error
// upstream, never bad network data, so NewStop panics instead of
// returning an error.
func NewStop(arrival, departure *TimetableRow) Stop {
	if arrival == nil && departure == nil {
		panic("models: stop requires an arrival or a departure")
	}
	if arrival != nil && arrival.Type != RowTypeArrival {
		panic(fmt.Sprintf("models: stop arrival has row type %v", arrival.Type))
	}
	if departure != nil && departure.Type != RowTypeDeparture {
		panic(fmt.Sprintf("models: stop departure has row type %v", departure.Type))
	}
	if arrival != nil && departure != nil && arrival.StationCode != departure.StationCode {
		panic(fmt.Sprintf("models: stop rows reference stations %d and %d", arrival.StationCode, departure.StationCode))
	}
	return Stop{Arrival: arrival, Departure: departure}
}

// StationCode returns the station this stop visits.
func (s Stop) StationCode() int {
	if s.Arrival != nil {
		return s.Arrival.StationCode
	}
	return s.Departure.StationCode
}

func (s Stop) IsOrigin() bool {
	return s.Arrival == nil && s.Departure != nil
}

func (s Stop) IsDestination() bool {
	return s.Arrival != nil && s.Departure == nil
}

func (s Stop) IsWaypoint() bool {
	return s.Arrival != nil && s.Departure != nil
}

// IsReached reports whether the train has arrived at this stop. A stop
// without an arrival side (the origin) counts as reached.
func (s Stop) IsReached() bool {
	return s.Arrival == nil || s.Arrival.ActualTime != nil
}

func (s Stop) IsNotReached() bool {
	return !s.IsReached()
}

// IsDeparted reports whether the train has left this stop.
func (s Stop) IsDeparted() bool {
	return s.Departure != nil && s.Departure.ActualTime != nil
}

func (s Stop) IsNotDeparted() bool {
	return !s.IsDeparted()
}

// IsCommercial reports whether either side of the stop is a commercial
// passenger stop.
func (s Stop) IsCommercial() bool {
	if s.Arrival != nil && s.Arrival.IsCommercialStop() {
		return true
	}
	return s.Departure != nil && s.Departure.IsCommercialStop()
}

// ArrivalAfter reports whether this stop's arrival is still ahead of
// the cutoff. An unset actual time means the event has not happened,
// so it always counts as being in the future.
func (s Stop) ArrivalAfter(cutoff time.Time) bool {
	if s.Arrival == nil || s.Arrival.ActualTime == nil {
		return true
	}
	return s.Arrival.ActualTime.After(cutoff)
}

// DepartureAfter is the departure-side counterpart of ArrivalAfter.
func (s Stop) DepartureAfter(cutoff time.Time) bool {
	if s.Departure == nil || s.Departure.ActualTime == nil {
		return true
	}
	return s.Departure.ActualTime.After(cutoff)
}

// TimeOfNextEvent picks the instant that best represents this stop for
// sorting: the departure's actual time, then its scheduled time once no
// arrival is pending, then the arrival's actual or scheduled time.
func (s Stop) TimeOfNextEvent() time.Time {
	if s.Departure != nil {
		if s.Departure.ActualTime != nil {
			return *s.Departure.ActualTime
		}
		if s.Arrival == nil || s.Arrival.ActualTime != nil {
			return s.Departure.ScheduledTime
		}
	}
	if s.Arrival != nil {
		if s.Arrival.ActualTime != nil {
			return *s.Arrival.ActualTime
		}
		return s.Arrival.ScheduledTime
	}
	panic("models: stop has neither arrival nor departure")
}
