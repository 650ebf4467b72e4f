package models

import "strings"

// StationNameMapper is a read-only lookup from station code to display
// name. It is derived once from the station list and shared for the
// lifetime of the cache entry that built it.
type StationNameMapper struct {
	names map[int]string
}

// NewStationNameMapper builds the lookup from a station list, applying
// the given per-code overrides (localized names) on top of the mapped
// station names. Names are also tidied: the " asema" suffix the source
// uses on some station names is dropped.
func NewStationNameMapper(stations []Station, overrides map[int]string) StationNameMapper {
	names := make(map[int]string, len(stations))
	for _, station := range stations {
		names[station.Code] = cleanStationName(station.Name)
	}
	for code, name := range overrides {
		names[code] = name
	}
	return StationNameMapper{names: names}
}

// NameFor returns the display name for a station code, or the empty
// string when the code is unknown.
func (m StationNameMapper) NameFor(code int) string {
	return m.names[code]
}

// Rename returns a copy of the station with its name replaced by the
// mapped display name, when one exists.
func (m StationNameMapper) Rename(station Station) Station {
	if name, ok := m.names[station.Code]; ok {
		station.Name = name
	}
	return station
}

func cleanStationName(name string) string {
	return strings.TrimSuffix(name, " asema")
}
