package models

import "fmt"

// StationType classifies an operating point on the rail network.
type StationType int

const (
	StationTypeStation StationType = iota
	StationTypeStoppingPoint
	StationTypeTurnoutInOpenLine
)

// ParseStationType maps the wire representation of a station type. An
// unknown value is a hard mapping error: stations are structurally
// required, so the whole batch fails rather than silently dropping one.
func ParseStationType(s string) (StationType, error) {
	switch s {
	case "STATION":
		return StationTypeStation, nil
	case "STOPPING_POINT":
		return StationTypeStoppingPoint, nil
	case "TURNOUT_IN_THE_OPENING_LINE":
		return StationTypeTurnoutInOpenLine, nil
	default:
		return 0, fmt.Errorf("unknown station type %q", s)
	}
}

func (t StationType) String() string {
	switch t {
	case StationTypeStation:
		return "STATION"
	case StationTypeStoppingPoint:
		return "STOPPING_POINT"
	case StationTypeTurnoutInOpenLine:
		return "TURNOUT_IN_THE_OPENING_LINE"
	default:
		return fmt.Sprintf("StationType(%d)", int(t))
	}
}

// Station is a single operating point, keyed by its numeric UIC code.
// Values are immutable once mapped; Name may be replaced by a localized
// lookup before the value is handed out.
type Station struct {
	Code             int         `json:"code"`
	ShortCode        string      `json:"shortCode"`
	Name             string      `json:"name"`
	Type             StationType `json:"type"`
	PassengerTraffic bool        `json:"passengerTraffic"`
	CountryCode      string      `json:"countryCode"`
	Longitude        float64     `json:"longitude"`
	Latitude         float64     `json:"latitude"`
}

func NewStation(code int, shortCode, name string, stationType StationType, passengerTraffic bool, countryCode string, longitude, latitude float64) Station {
	return Station{
		Code:             code,
		ShortCode:        shortCode,
		Name:             name,
		Type:             stationType,
		PassengerTraffic: passengerTraffic,
		CountryCode:      countryCode,
		Longitude:        longitude,
		Latitude:         latitude,
	}
}
