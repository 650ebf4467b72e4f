package models

import (
	"fmt"
	"time"
)

// TimetableRowType is the direction of a single scheduled event.
type TimetableRowType int

const (
	RowTypeArrival TimetableRowType = iota
	RowTypeDeparture
)

// ParseTimetableRowType maps the wire representation of a row type.
// Rows are structurally required, so an unknown value fails the whole
// train mapping rather than producing a half-formed timetable.
func ParseTimetableRowType(s string) (TimetableRowType, error) {
	switch s {
	case "ARRIVAL":
		return RowTypeArrival, nil
	case "DEPARTURE":
		return RowTypeDeparture, nil
	default:
		return 0, fmt.Errorf("unknown timetable row type %q", s)
	}
}

func (t TimetableRowType) String() string {
	switch t {
	case RowTypeArrival:
		return "ARRIVAL"
	case RowTypeDeparture:
		return "DEPARTURE"
	default:
		return fmt.Sprintf("TimetableRowType(%d)", int(t))
	}
}

// TimetableRow is one atomic scheduled event for a train: an arrival at
// or a departure from one station. EstimatedTime and ActualTime are nil
// until the live system reports them.
type TimetableRow struct {
	Type                TimetableRowType `json:"type"`
	StationCode         int              `json:"stationCode"`
	Track               string           `json:"track,omitempty"`
	ScheduledTime       time.Time        `json:"scheduledTime"`
	EstimatedTime       *time.Time       `json:"estimatedTime,omitempty"`
	ActualTime          *time.Time       `json:"actualTime,omitempty"`
	DifferenceInMinutes int              `json:"differenceInMinutes"`
	TrainStopping       bool             `json:"trainStopping"`
	CommercialStop      *bool            `json:"commercialStop,omitempty"`
	Cancelled           bool             `json:"cancelled"`
	MarkedReady         bool             `json:"markedReady"`
	Causes              []DelayCause     `json:"causes,omitempty"`
}

// IsCommercialStop reports whether the train calls at this row's station
// for passenger traffic.
func (r TimetableRow) IsCommercialStop() bool {
	return r.TrainStopping && r.CommercialStop != nil && *r.CommercialStop
}
