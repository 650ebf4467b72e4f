package digitraffic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railboard.fi/internal/models"
)

func TestMapStations(t *testing.T) {
	entities := []StationEntity{
		{
			PassengerTraffic: true,
			Type:             "STATION",
			StationName:      "Helsinki asema",
			StationShortCode: "HKI",
			StationUICCode:   1,
			CountryCode:      "FI",
			Longitude:        24.941249,
			Latitude:         60.172097,
		},
		{
			Type:             "STOPPING_POINT",
			StationName:      "Kera",
			StationShortCode: "KEA",
			StationUICCode:   517,
			CountryCode:      "FI",
		},
	}

	stations, err := MapStations(entities)
	require.NoError(t, err)
	require.Len(t, stations, 2)

	assert.Equal(t, 1, stations[0].Code)
	assert.Equal(t, "HKI", stations[0].ShortCode)
	assert.Equal(t, models.StationTypeStation, stations[0].Type)
	assert.True(t, stations[0].PassengerTraffic)
	assert.Equal(t, models.StationTypeStoppingPoint, stations[1].Type)
}

func TestMapStationsUnknownTypeFailsBatch(t *testing.T) {
	entities := []StationEntity{
		{Type: "STATION", StationShortCode: "HKI", StationUICCode: 1},
		{Type: "DEPOT", StationShortCode: "ILR", StationUICCode: 9999},
	}

	_, err := MapStations(entities)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ILR")
}

func trainEntity(category string) TrainEntity {
	scheduled := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return TrainEntity{
		TrainNumber:   59,
		DepartureDate: "2024-03-15",
		TrainType:     "IC",
		TrainCategory: category,
		Version:       287138595586,
		TimeTableRows: []TimetableRowEntity{
			{
				Type:            "DEPARTURE",
				StationUICCode:  1,
				TrainStopping:   true,
				CommercialTrack: "8",
				ScheduledTime:   scheduled,
			},
			{
				Type:           "ARRIVAL",
				StationUICCode: 160,
				TrainStopping:  true,
				ScheduledTime:  scheduled.Add(97 * time.Minute),
			},
		},
	}
}

func TestMapTrain(t *testing.T) {
	entity := trainEntity("Long-distance")
	accepted := time.Date(2024, 3, 15, 11, 55, 0, 0, time.UTC)
	entity.TimeTableRows[0].TrainReady = &TrainReadyEntity{Source: "KUPLA", Accepted: true, Timestamp: accepted}
	detailed := 101
	entity.TimeTableRows[1].Causes = []CauseEntity{{CategoryCodeID: 1, DetailedCategoryCodeID: &detailed}}

	train, err := MapTrain(entity)
	require.NoError(t, err)

	assert.Equal(t, 59, train.Number)
	assert.Equal(t, models.CategoryLongDistance, train.Category)
	assert.Equal(t, int64(287138595586), train.Version)
	require.Len(t, train.Timetable, 2)

	departure := train.Timetable[0]
	assert.Equal(t, models.RowTypeDeparture, departure.Type)
	assert.Equal(t, 1, departure.StationCode)
	assert.Equal(t, "8", departure.Track)
	assert.True(t, departure.MarkedReady)

	arrival := train.Timetable[1]
	require.Len(t, arrival.Causes, 1)
	assert.Equal(t, models.DelayCause{CategoryID: 1, DetailedCategoryID: 101}, arrival.Causes[0])
}

func TestMapTrainsSkipsUnknownCategories(t *testing.T) {
	entities := []TrainEntity{
		trainEntity("Long-distance"),
		trainEntity("Cargo"),
		trainEntity("Commuter"),
		trainEntity("On-track machines"),
	}

	trains, err := MapTrains(entities)
	require.NoError(t, err)
	require.Len(t, trains, 2)
	assert.Equal(t, models.CategoryLongDistance, trains[0].Category)
	assert.Equal(t, models.CategoryCommuter, trains[1].Category)
}

func TestMapTrainsBadRowFailsBatch(t *testing.T) {
	broken := trainEntity("Long-distance")
	broken.TimeTableRows[1].Type = "PASSING"

	_, err := MapTrains([]TrainEntity{trainEntity("Commuter"), broken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "train 59 row 1")
}

func TestMapCauseCategories(t *testing.T) {
	tables := CauseCategoryTables{
		Categories: []CategoryCodeEntity{
			{ID: 1, CategoryCode: "L", CategoryName: "liikenneonnettomuus", PassengerTerm: &PassengerTermEntity{Fi: "onnettomuus", En: "accident", Sv: "olycka"}},
		},
		DetailedCategories: []DetailedCategoryCodeEntity{
			{ID: 101, DetailedCategoryCode: "L2", DetailedCategoryName: "tasoristeysonnettomuus"},
		},
		ThirdCategories: []ThirdCategoryCodeEntity{
			{ID: 1001, ThirdCategoryCode: "L301", ThirdCategoryName: "hirvikolari"},
		},
	}

	categories := MapCauseCategories(tables)

	require.Len(t, categories.Categories, 1)
	assert.Equal(t, "liikenneonnettomuus", categories.Categories[0].Name)
	require.NotNil(t, categories.Categories[0].PassengerTerm)
	assert.Equal(t, "accident", categories.Categories[0].PassengerTerm.En)

	require.Len(t, categories.DetailedCategories, 1)
	assert.Nil(t, categories.DetailedCategories[0].PassengerTerm)

	require.Len(t, categories.ThirdLevelCategories, 1)
	assert.Equal(t, "hirvikolari", categories.ThirdLevelCategories[0].Name)
}
