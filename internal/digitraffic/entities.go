package digitraffic

import "time"

// Wire shapes of the Digitraffic railway API. Field names follow the
// JSON payloads exactly; mapping into domain values happens in
// mapping.go.

type StationEntity struct {
	PassengerTraffic bool    `json:"passengerTraffic"`
	Type             string  `json:"type"`
	StationName      string  `json:"stationName"`
	StationShortCode string  `json:"stationShortCode"`
	StationUICCode   int     `json:"stationUICCode"`
	CountryCode      string  `json:"countryCode"`
	Longitude        float64 `json:"longitude"`
	Latitude         float64 `json:"latitude"`
}

type TrainEntity struct {
	TrainNumber      int                  `json:"trainNumber"`
	DepartureDate    string               `json:"departureDate"`
	TrainType        string               `json:"trainType"`
	TrainCategory    string               `json:"trainCategory"`
	CommuterLineID   string               `json:"commuterLineID"`
	RunningCurrently bool                 `json:"runningCurrently"`
	Cancelled        bool                 `json:"cancelled"`
	Version          int64                `json:"version"`
	TimeTableRows    []TimetableRowEntity `json:"timeTableRows"`
}

type TimetableRowEntity struct {
	Type                string            `json:"type"`
	StationShortCode    string            `json:"stationShortCode"`
	StationUICCode      int               `json:"stationUICCode"`
	TrainStopping       bool              `json:"trainStopping"`
	CommercialStop      *bool             `json:"commercialStop"`
	CommercialTrack     string            `json:"commercialTrack"`
	Cancelled           bool              `json:"cancelled"`
	ScheduledTime       time.Time         `json:"scheduledTime"`
	LiveEstimateTime    *time.Time        `json:"liveEstimateTime"`
	ActualTime          *time.Time        `json:"actualTime"`
	DifferenceInMinutes int               `json:"differenceInMinutes"`
	TrainReady          *TrainReadyEntity `json:"trainReady"`
	Causes              []CauseEntity     `json:"causes"`
}

type TrainReadyEntity struct {
	Source    string    `json:"source"`
	Accepted  bool      `json:"accepted"`
	Timestamp time.Time `json:"timestamp"`
}

type CauseEntity struct {
	CategoryCodeID         int  `json:"categoryCodeId"`
	DetailedCategoryCodeID *int `json:"detailedCategoryCodeId"`
	ThirdCategoryCodeID    *int `json:"thirdCategoryCodeId"`
}

type PassengerTermEntity struct {
	Fi string `json:"fi"`
	En string `json:"en"`
	Sv string `json:"sv"`
}

type CategoryCodeEntity struct {
	ID            int                  `json:"id"`
	CategoryCode  string               `json:"categoryCode"`
	CategoryName  string               `json:"categoryName"`
	PassengerTerm *PassengerTermEntity `json:"passengerTerm"`
}

type DetailedCategoryCodeEntity struct {
	ID                   int                  `json:"id"`
	DetailedCategoryCode string               `json:"detailedCategoryCode"`
	DetailedCategoryName string               `json:"detailedCategoryName"`
	PassengerTerm        *PassengerTermEntity `json:"passengerTerm"`
}

type ThirdCategoryCodeEntity struct {
	ID                int                  `json:"id"`
	ThirdCategoryCode string               `json:"thirdCategoryCode"`
	ThirdCategoryName string               `json:"thirdCategoryName"`
	PassengerTerm     *PassengerTermEntity `json:"passengerTerm"`
}
