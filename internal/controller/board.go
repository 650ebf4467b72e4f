package controller

import (
	"context"
	"fmt"
	"sort"

	"railboard.fi/internal/models"
	"railboard.fi/internal/repository"
	"railboard.fi/internal/timetable"
)

// BoardDirection selects which side of the station board is shown.
type BoardDirection int

const (
	BoardDepartures BoardDirection = iota
	BoardArrivals
)

// CategoryFilter narrows the board to one train category.
type CategoryFilter int

const (
	CategoryAll CategoryFilter = iota
	CategoryOnlyLongDistance
	CategoryOnlyCommuter
)

func (f CategoryFilter) matches(train models.Train) bool {
	switch f {
	case CategoryOnlyLongDistance:
		return train.Category == models.CategoryLongDistance
	case CategoryOnlyCommuter:
		return train.Category == models.CategoryCommuter
	default:
		return true
	}
}

// BoardEvent is an intent on the station board screen.
type BoardEvent interface{ isBoardEvent() }

type LoadBoard struct{ StationCode int }
type ReloadBoard struct{}
type SetBoardDirection struct{ Direction BoardDirection }
type SetBoardCategory struct{ Category CategoryFilter }

func (LoadBoard) isBoardEvent()         {}
func (ReloadBoard) isBoardEvent()       {}
func (SetBoardDirection) isBoardEvent() {}
func (SetBoardCategory) isBoardEvent()  {}

// BoardResult is the closed outcome set of the station board screen.
type BoardResult interface{ isBoardResult() }

type BoardLoading struct{ StationCode int }
type BoardReloading struct{}
type BoardLoaded struct {
	Station models.Station
	Trains  []models.Train
}
type BoardUnchanged struct{}
type BoardFailed struct{ Message string }
type BoardDirectionChanged struct{ Direction BoardDirection }
type BoardCategoryChanged struct{ Category CategoryFilter }

func (BoardLoading) isBoardResult()          {}
func (BoardReloading) isBoardResult()        {}
func (BoardLoaded) isBoardResult()           {}
func (BoardUnchanged) isBoardResult()        {}
func (BoardFailed) isBoardResult()           {}
func (BoardDirectionChanged) isBoardResult() {}
func (BoardCategoryChanged) isBoardResult()  {}

// BoardEntry is one line of the rendered board: a train and its stop
// at the board's station.
type BoardEntry struct {
	Train models.Train
	Stop  models.Stop
}

// BoardState is the immutable snapshot of the station board screen.
type BoardState struct {
	stationCode  int
	station      *models.Station
	trains       []models.Train
	direction    BoardDirection
	category     CategoryFilter
	loading      bool
	reloading    bool
	errorMessage string
}

func (s BoardState) StationCode() int          { return s.stationCode }
func (s BoardState) Station() *models.Station  { return s.station }
func (s BoardState) Direction() BoardDirection { return s.direction }
func (s BoardState) Category() CategoryFilter  { return s.category }
func (s BoardState) ErrorMessage() string      { return s.errorMessage }

// IsLoadingTimetable is true while either an initial load or a reload
// is in flight.
func (s BoardState) IsLoadingTimetable() bool { return s.loading || s.reloading }

// Entries derives the visible board lines from the loaded trains:
// stops at this station matching the direction and category filters,
// ordered by their next event time.
func (s BoardState) Entries() []BoardEntry {
	if s.station == nil {
		return nil
	}
	var entries []BoardEntry
	for _, train := range s.trains {
		if !s.category.matches(train) {
			continue
		}
		for _, stop := range timetable.StopsAt(train, s.station.Code) {
			if s.direction == BoardDepartures && stop.Departure == nil {
				continue
			}
			if s.direction == BoardArrivals && stop.Arrival == nil {
				continue
			}
			entries = append(entries, BoardEntry{Train: train, Stop: stop})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Stop.TimeOfNextEvent().Before(entries[j].Stop.TimeOfNextEvent())
	})
	return entries
}

func reduceBoard(state BoardState, result BoardResult) BoardState {
	switch r := result.(type) {
	case BoardLoading:
		// A fresh load always clears the previous station's data.
		return BoardState{
			stationCode: r.StationCode,
			direction:   state.direction,
			category:    state.category,
			loading:     true,
		}
	case BoardReloading:
		state.reloading = true
		state.errorMessage = ""
		return state
	case BoardLoaded:
		station := r.Station
		return BoardState{
			stationCode: state.stationCode,
			station:     &station,
			trains:      r.Trains,
			direction:   state.direction,
			category:    state.category,
		}
	case BoardUnchanged:
		state.loading = false
		state.reloading = false
		return state
	case BoardFailed:
		if state.reloading {
			state.reloading = false
			state.errorMessage = r.Message
			return state
		}
		// A failed load leaves no station and no timetable behind.
		return BoardState{
			stationCode:  state.stationCode,
			direction:    state.direction,
			category:     state.category,
			errorMessage: r.Message,
		}
	case BoardDirectionChanged:
		state.direction = r.Direction
		return state
	case BoardCategoryChanged:
		state.category = r.Category
		return state
	default:
		panic(fmt.Sprintf("unhandled board result %T", result))
	}
}

// BoardController runs the station board screen.
type BoardController struct {
	*Controller[BoardEvent, BoardResult, BoardState]
	repo *repository.Repository
}

func NewBoardController(repo *repository.Repository) *BoardController {
	c := &BoardController{repo: repo}
	c.Controller = New(BoardState{}, reduceBoard, c.handleEvent)
	return c
}

func (c *BoardController) handleEvent(ctx context.Context, event BoardEvent, emit func(BoardResult)) {
	switch e := event.(type) {
	case LoadBoard:
		emit(BoardLoading{StationCode: e.StationCode})
		c.load(ctx, e.StationCode, emit)
	case ReloadBoard:
		code := c.State().Get().StationCode()
		if code == 0 {
			return
		}
		emit(BoardReloading{})
		c.load(ctx, code, emit)
	case SetBoardDirection:
		emit(BoardDirectionChanged{Direction: e.Direction})
	case SetBoardCategory:
		emit(BoardCategoryChanged{Category: e.Category})
	default:
		panic(fmt.Sprintf("unhandled board event %T", event))
	}
}

func (c *BoardController) load(ctx context.Context, stationCode int, emit func(BoardResult)) {
	station, err := c.repo.FetchStation(ctx, stationCode)
	if err != nil {
		emit(BoardFailed{Message: err.Error()})
		return
	}
	if mapper, err := c.repo.StationNameMapper(ctx); err == nil {
		station = mapper.Rename(station)
	}

	for update := range c.repo.TrainsAtStationStream(ctx, station.ShortCode) {
		switch {
		case update.Err != nil:
			emit(BoardFailed{Message: update.Err.Error()})
		case update.NoNewData:
			emit(BoardUnchanged{})
		default:
			emit(BoardLoaded{Station: station, Trains: update.Value})
		}
	}
}
