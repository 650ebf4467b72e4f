package controller

import (
	"context"
	"fmt"

	"railboard.fi/internal/models"
	"railboard.fi/internal/repository"
	"railboard.fi/internal/timetable"
)

// TrainEvent is an intent on the train details screen.
type TrainEvent interface{ isTrainEvent() }

type LoadTrain struct {
	Number        int
	DepartureDate string
}
type ReloadTrain struct{}

func (LoadTrain) isTrainEvent()   {}
func (ReloadTrain) isTrainEvent() {}

// TrainResult is the closed outcome set of the train details screen.
type TrainResult interface{ isTrainResult() }

type TrainLoading struct {
	Number        int
	DepartureDate string
}
type TrainReloading struct{}
type TrainLoaded struct {
	Train      models.Train
	CauseNames []string
}
type TrainUnchanged struct{}
type TrainFailed struct{ Message string }

func (TrainLoading) isTrainResult()   {}
func (TrainReloading) isTrainResult() {}
func (TrainLoaded) isTrainResult()    {}
func (TrainUnchanged) isTrainResult() {}
func (TrainFailed) isTrainResult()    {}

// TrainState is the immutable snapshot of the train details screen.
type TrainState struct {
	number        int
	departureDate string
	train         *models.Train
	causeNames    []string
	loading       bool
	reloading     bool
	errorMessage  string
}

func (s TrainState) Train() *models.Train { return s.train }
func (s TrainState) CauseNames() []string { return s.causeNames }
func (s TrainState) ErrorMessage() string { return s.errorMessage }
func (s TrainState) IsLoading() bool      { return s.loading || s.reloading }

// Stops derives the train's commercial stops.
func (s TrainState) Stops() []models.Stop {
	if s.train == nil {
		return nil
	}
	return timetable.CommercialStops(*s.train)
}

// CurrentStop derives where the train is right now, nil before it has
// started.
func (s TrainState) CurrentStop() *models.Stop {
	if s.train == nil {
		return nil
	}
	return timetable.CurrentCommercialStop(*s.train)
}

func reduceTrain(state TrainState, result TrainResult) TrainState {
	switch r := result.(type) {
	case TrainLoading:
		return TrainState{number: r.Number, departureDate: r.DepartureDate, loading: true}
	case TrainReloading:
		state.reloading = true
		state.errorMessage = ""
		return state
	case TrainLoaded:
		train := r.Train
		return TrainState{
			number:        state.number,
			departureDate: state.departureDate,
			train:         &train,
			causeNames:    r.CauseNames,
		}
	case TrainUnchanged:
		state.loading = false
		state.reloading = false
		return state
	case TrainFailed:
		if state.reloading {
			state.reloading = false
			state.errorMessage = r.Message
			return state
		}
		return TrainState{number: state.number, departureDate: state.departureDate, errorMessage: r.Message}
	default:
		panic(fmt.Sprintf("unhandled train result %T", result))
	}
}

// TrainController runs the train details screen. The locale is passed
// in explicitly and selects the language of delay cause names.
type TrainController struct {
	*Controller[TrainEvent, TrainResult, TrainState]
	repo   *repository.Repository
	locale models.Locale
}

func NewTrainController(repo *repository.Repository, locale models.Locale) *TrainController {
	c := &TrainController{repo: repo, locale: locale}
	c.Controller = New(TrainState{}, reduceTrain, c.handleEvent)
	return c
}

func (c *TrainController) handleEvent(ctx context.Context, event TrainEvent, emit func(TrainResult)) {
	switch e := event.(type) {
	case LoadTrain:
		emit(TrainLoading{Number: e.Number, DepartureDate: e.DepartureDate})
		c.load(ctx, e.DepartureDate, e.Number, emit)
	case ReloadTrain:
		state := c.State().Get()
		if state.number == 0 {
			return
		}
		emit(TrainReloading{})
		c.load(ctx, state.departureDate, state.number, emit)
	default:
		panic(fmt.Sprintf("unhandled train event %T", event))
	}
}

func (c *TrainController) load(ctx context.Context, departureDate string, number int, emit func(TrainResult)) {
	for update := range c.repo.TrainStream(ctx, departureDate, number) {
		switch {
		case update.Err != nil:
			emit(TrainFailed{Message: update.Err.Error()})
		case update.NoNewData:
			emit(TrainUnchanged{})
		default:
			emit(TrainLoaded{Train: update.Value, CauseNames: c.causeNames(ctx, update.Value)})
		}
	}
}

func (c *TrainController) causeNames(ctx context.Context, train models.Train) []string {
	causes := timetable.DelayCauses(train)
	if len(causes) == 0 {
		return nil
	}
	categories, err := c.repo.CauseCategories(ctx)
	if err != nil {
		// Cause labels are decoration on the timetable; the train is
		// still worth showing without them.
		return nil
	}
	names := make([]string, 0, len(causes))
	for _, cause := range causes {
		names = append(names, timetable.PassengerFriendlyName(categories, cause, c.locale))
	}
	return names
}
