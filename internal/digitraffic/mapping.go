package digitraffic

import (
	"errors"
	"fmt"

	"railboard.fi/internal/models"
)

// MapStations maps a station batch. Stations are structurally
// required, so any unknown station type fails the whole batch.
func MapStations(entities []StationEntity) ([]models.Station, error) {
	stations := make([]models.Station, 0, len(entities))
	for _, entity := range entities {
		stationType, err := models.ParseStationType(entity.Type)
		if err != nil {
			return nil, fmt.Errorf("mapping station %q: %w", entity.StationShortCode, err)
		}
		stations = append(stations, models.NewStation(
			entity.StationUICCode,
			entity.StationShortCode,
			entity.StationName,
			stationType,
			entity.PassengerTraffic,
			entity.CountryCode,
			entity.Longitude,
			entity.Latitude,
		))
	}
	return stations, nil
}

// MapTrains maps a train batch. Trains of a category the model does
// not carry are skipped individually; a malformed timetable row fails
// the whole batch since rows are structurally required.
func MapTrains(entities []TrainEntity) ([]models.Train, error) {
	trains := make([]models.Train, 0, len(entities))
	for _, entity := range entities {
		train, err := MapTrain(entity)
		if err != nil {
			var unknown models.ErrUnknownTrainCategory
			if errors.As(err, &unknown) {
				continue
			}
			return nil, err
		}
		trains = append(trains, train)
	}
	return trains, nil
}

// MapTrain maps one train record.
func MapTrain(entity TrainEntity) (models.Train, error) {
	category, err := models.ParseTrainCategory(entity.TrainCategory)
	if err != nil {
		return models.Train{}, fmt.Errorf("mapping train %d: %w", entity.TrainNumber, err)
	}

	rows := make([]models.TimetableRow, 0, len(entity.TimeTableRows))
	for i, rowEntity := range entity.TimeTableRows {
		row, err := mapTimetableRow(rowEntity)
		if err != nil {
			return models.Train{}, fmt.Errorf("mapping train %d row %d: %w", entity.TrainNumber, i, err)
		}
		rows = append(rows, row)
	}

	return models.Train{
		Number:         entity.TrainNumber,
		Type:           entity.TrainType,
		Category:       category,
		CommuterLineID: entity.CommuterLineID,
		IsRunning:      entity.RunningCurrently,
		IsCancelled:    entity.Cancelled,
		DepartureDate:  entity.DepartureDate,
		Version:        entity.Version,
		Timetable:      rows,
	}, nil
}

func mapTimetableRow(entity TimetableRowEntity) (models.TimetableRow, error) {
	rowType, err := models.ParseTimetableRowType(entity.Type)
	if err != nil {
		return models.TimetableRow{}, err
	}

	causes := make([]models.DelayCause, 0, len(entity.Causes))
	for _, cause := range entity.Causes {
		causes = append(causes, models.DelayCause{
			CategoryID:           cause.CategoryCodeID,
			DetailedCategoryID:   intOrZero(cause.DetailedCategoryCodeID),
			ThirdLevelCategoryID: intOrZero(cause.ThirdCategoryCodeID),
		})
	}
	if len(causes) == 0 {
		causes = nil
	}

	return models.TimetableRow{
		Type:                rowType,
		StationCode:         entity.StationUICCode,
		Track:               entity.CommercialTrack,
		ScheduledTime:       entity.ScheduledTime,
		EstimatedTime:       entity.LiveEstimateTime,
		ActualTime:          entity.ActualTime,
		DifferenceInMinutes: entity.DifferenceInMinutes,
		TrainStopping:       entity.TrainStopping,
		CommercialStop:      entity.CommercialStop,
		Cancelled:           entity.Cancelled,
		MarkedReady:         entity.TrainReady != nil && entity.TrainReady.Accepted,
		Causes:              causes,
	}, nil
}

// MapCauseCategories maps the three code tables into the domain shape.
func MapCauseCategories(tables CauseCategoryTables) models.CauseCategories {
	categories := models.CauseCategories{
		Categories:           make([]models.CauseCategory, 0, len(tables.Categories)),
		DetailedCategories:   make([]models.CauseCategory, 0, len(tables.DetailedCategories)),
		ThirdLevelCategories: make([]models.CauseCategory, 0, len(tables.ThirdCategories)),
	}
	for _, entity := range tables.Categories {
		categories.Categories = append(categories.Categories, models.CauseCategory{
			ID:            entity.ID,
			Name:          entity.CategoryName,
			PassengerTerm: mapPassengerTerm(entity.PassengerTerm),
		})
	}
	for _, entity := range tables.DetailedCategories {
		categories.DetailedCategories = append(categories.DetailedCategories, models.CauseCategory{
			ID:            entity.ID,
			Name:          entity.DetailedCategoryName,
			PassengerTerm: mapPassengerTerm(entity.PassengerTerm),
		})
	}
	for _, entity := range tables.ThirdCategories {
		categories.ThirdLevelCategories = append(categories.ThirdLevelCategories, models.CauseCategory{
			ID:            entity.ID,
			Name:          entity.ThirdCategoryName,
			PassengerTerm: mapPassengerTerm(entity.PassengerTerm),
		})
	}
	return categories
}

func mapPassengerTerm(entity *PassengerTermEntity) *models.PassengerTerm {
	if entity == nil {
		return nil
	}
	return &models.PassengerTerm{Fi: entity.Fi, En: entity.En, Sv: entity.Sv}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
