package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"railboard.fi/internal/app"
	"railboard.fi/internal/controller"
	"railboard.fi/internal/format"
	"railboard.fi/internal/models"
)

func NewBoardCmd(a *App) *cobra.Command {
	var (
		arrivals bool
		category string
	)

	cmd := &cobra.Command{
		Use:   "board <station>",
		Short: "Show a station's departure or arrival board",
		Long: `Show the live train board of one station. The station can be given as
a name, a short code, or a numeric station code.

Examples:
  railboard board helsinki
  railboard board TPE --arrivals
  railboard board 1 --category commuter --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseCategory(category)
			if err != nil {
				return err
			}

			application, err := a.open()
			if err != nil {
				return err
			}
			defer application.Close() // nolint:errcheck

			ctx := cmd.Context()
			station, err := resolveStation(ctx, application, strings.Join(args, " "))
			if err != nil {
				return err
			}

			ctrl := controller.NewBoardController(application.Repository)
			if arrivals {
				ctrl.Offer(controller.SetBoardDirection{Direction: controller.BoardArrivals})
			}
			ctrl.Offer(controller.SetBoardCategory{Category: filter})
			ctrl.Offer(controller.LoadBoard{StationCode: station.Code})
			ctrl.Close()

			state := ctrl.State().Get()
			if msg := state.ErrorMessage(); msg != "" {
				return errors.New(msg)
			}

			if a.JSONOutput {
				return format.JSON(state.Entries())
			}
			format.Board(*state.Station(), state.Direction(), state.Entries(), stationNames(ctx, application))
			return nil
		},
	}

	cmd.Flags().BoolVar(&arrivals, "arrivals", false, "Show arrivals instead of departures")
	cmd.Flags().StringVar(&category, "category", "all", "Train category: all, long-distance, or commuter")

	return cmd
}

func parseCategory(s string) (controller.CategoryFilter, error) {
	switch s {
	case "all":
		return controller.CategoryAll, nil
	case "long-distance":
		return controller.CategoryOnlyLongDistance, nil
	case "commuter":
		return controller.CategoryOnlyCommuter, nil
	default:
		return 0, fmt.Errorf("unknown category %q (want all, long-distance, or commuter)", s)
	}
}

func resolveStation(ctx context.Context, application *app.Application, query string) (models.Station, error) {
	stations, err := application.Repository.Stations(ctx)
	if err != nil {
		return models.Station{}, err
	}
	return matchStation(stations, query)
}

// matchStation matches the user's argument against the station list:
// numeric station code first, then exact short code, then a name
// substring.
func matchStation(stations []models.Station, query string) (models.Station, error) {
	if code, err := strconv.Atoi(query); err == nil {
		for _, s := range stations {
			if s.Code == code {
				return s, nil
			}
		}
	}
	for _, s := range stations {
		if strings.EqualFold(s.ShortCode, query) {
			return s, nil
		}
	}
	for _, s := range stations {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(query)) {
			return s, nil
		}
	}
	return models.Station{}, fmt.Errorf("no station matches %q", query)
}

// stationNames returns a display-name lookup backed by the localized
// name mapper, falling back to the raw code when a name is missing.
func stationNames(ctx context.Context, application *app.Application) func(int) string {
	mapper, err := application.Repository.StationNameMapper(ctx)
	return func(code int) string {
		if err == nil {
			if name := mapper.NameFor(code); name != "" {
				return name
			}
		}
		return strconv.Itoa(code)
	}
}
