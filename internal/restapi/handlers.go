package restapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"railboard.fi/internal/logging"
	"railboard.fi/internal/models"
	"railboard.fi/internal/repository"
	"railboard.fi/internal/timetable"
)

func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	stations, err := api.Repository.Stations(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if mapper, err := api.Repository.StationNameMapper(r.Context()); err == nil {
		renamed := make([]models.Station, len(stations))
		for i, station := range stations {
			renamed[i] = mapper.Rename(station)
		}
		stations = renamed
	}
	api.sendResponse(w, r, stations)
}

func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	code, ok := api.stationCode(w, r)
	if !ok {
		return
	}
	station, err := api.Repository.FetchStation(r.Context(), code)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			api.sendNotFound(w, r, err.Error())
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, station)
}

// stationTrainsResponse is the station board payload: the station and
// the trains currently calling there.
type stationTrainsResponse struct {
	Station models.Station `json:"station"`
	Trains  []models.Train `json:"trains"`
}

func (api *RestAPI) stationTrainsHandler(w http.ResponseWriter, r *http.Request) {
	code, ok := api.stationCode(w, r)
	if !ok {
		return
	}
	station, err := api.Repository.FetchStation(r.Context(), code)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			api.sendNotFound(w, r, err.Error())
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	trains, err := api.Repository.TrainsAtStation(r.Context(), station.ShortCode)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	logging.LogOperation(logging.FromContext(r.Context()), "station_board_served",
		slog.String("station", station.ShortCode),
		slog.Int("trains", len(trains)))
	api.sendResponse(w, r, stationTrainsResponse{Station: station, Trains: trains})
}

// trainResponse is the train details payload, with the derived stop
// sequence and delay cause labels alongside the raw timetable.
type trainResponse struct {
	Train       models.Train  `json:"train"`
	Stops       []models.Stop `json:"stops"`
	CurrentStop *models.Stop  `json:"currentStop,omitempty"`
	DelayCauses []string      `json:"delayCauses,omitempty"`
}

func (api *RestAPI) trainHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	number, err := strconv.Atoi(params.ByName("number"))
	if err != nil {
		api.sendError(w, r, http.StatusBadRequest, "train number must be numeric")
		return
	}

	departureDate := r.URL.Query().Get("date")
	if departureDate == "" {
		departureDate = repository.LatestDeparture
	}

	train, err := api.Repository.Train(r.Context(), departureDate, number)
	if err != nil {
		if errors.Is(err, repository.ErrTrainNotFound) {
			api.sendNotFound(w, r, err.Error())
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	response := trainResponse{
		Train:       train,
		Stops:       timetable.CommercialStops(train),
		CurrentStop: timetable.CurrentCommercialStop(train),
	}
	if causes := timetable.DelayCauses(train); len(causes) > 0 {
		if categories, err := api.Repository.CauseCategories(r.Context()); err == nil {
			for _, cause := range causes {
				response.DelayCauses = append(response.DelayCauses,
					timetable.PassengerFriendlyName(categories, cause, api.Locale()))
			}
		}
	}
	api.sendResponse(w, r, response)
}

func (api *RestAPI) stationCode(w http.ResponseWriter, r *http.Request) (int, bool) {
	params := httprouter.ParamsFromContext(r.Context())
	code, err := strconv.Atoi(params.ByName("code"))
	if err != nil {
		api.sendError(w, r, http.StatusBadRequest, "station code must be numeric")
		return 0, false
	}
	return code, true
}
