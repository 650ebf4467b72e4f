package models

import (
	"fmt"
	"time"
)

// TrainCategory is the commercial class of a train. Only passenger
// categories exist in the model; trains of any other category are
// dropped during mapping.
type TrainCategory int

const (
	CategoryLongDistance TrainCategory = iota
	CategoryCommuter
)

// ErrUnknownTrainCategory marks a train record whose category the model
// does not carry (cargo, locomotive runs, track machines). The record
// is skipped; the batch survives.
type ErrUnknownTrainCategory struct {
	Value string
}

func (e ErrUnknownTrainCategory) Error() string {
	return fmt.Sprintf("unknown train category %q", e.Value)
}

func ParseTrainCategory(s string) (TrainCategory, error) {
	switch s {
	case "Long-distance":
		return CategoryLongDistance, nil
	case "Commuter":
		return CategoryCommuter, nil
	default:
		return 0, ErrUnknownTrainCategory{Value: s}
	}
}

func (c TrainCategory) String() string {
	switch c {
	case CategoryLongDistance:
		return "Long-distance"
	case CategoryCommuter:
		return "Commuter"
	default:
		return fmt.Sprintf("TrainCategory(%d)", int(c))
	}
}

// Train is one run of a train on one departure date. The Timetable is
// ordered by time and is the single source all Stop sequences are
// derived from; a reload replaces the whole value, never mutates it.
type Train struct {
	Number         int            `json:"number"`
	Type           string         `json:"type"`
	Category       TrainCategory  `json:"category"`
	CommuterLineID string         `json:"commuterLineID,omitempty"`
	IsRunning      bool           `json:"isRunning"`
	IsCancelled    bool           `json:"isCancelled"`
	DepartureDate  string         `json:"departureDate"`
	Version        int64          `json:"version"`
	Timetable      []TimetableRow `json:"timetable"`
}

// Name is the display name of the train: the commuter line letter when
// one exists, otherwise type and number ("IC 59").
func (t Train) Name() string {
	if t.CommuterLineID != "" {
		return t.CommuterLineID
	}
	return fmt.Sprintf("%s %d", t.Type, t.Number)
}

// DepartureDateParsed returns the departure date as a time.Time at
// midnight UTC, for callers that need to compare dates.
func (t Train) DepartureDateParsed() (time.Time, error) {
	return time.Parse("2006-01-02", t.DepartureDate)
}
