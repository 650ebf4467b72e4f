package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"railboard.fi/internal/controller"
	"railboard.fi/internal/format"
	"railboard.fi/internal/repository"
)

func NewTrainCmd(a *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "train <number>",
		Short: "Show one train's stops and delay causes",
		Long: `Show the commercial stops of one train run, its current position, and
any delay causes. Without --date the latest run of the train is shown.

Examples:
  railboard train 59
  railboard train 59 --date 2024-03-15
  railboard train 8549 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("train number %q is not numeric", args[0])
			}

			application, err := a.open()
			if err != nil {
				return err
			}
			defer application.Close() // nolint:errcheck

			ctrl := controller.NewTrainController(application.Repository, application.Locale())
			ctrl.Offer(controller.LoadTrain{Number: number, DepartureDate: date})
			ctrl.Close()

			state := ctrl.State().Get()
			if msg := state.ErrorMessage(); msg != "" {
				return errors.New(msg)
			}

			if a.JSONOutput {
				return format.JSON(struct {
					Train  any      `json:"train"`
					Stops  any      `json:"stops"`
					Causes []string `json:"delayCauses,omitempty"`
				}{Train: state.Train(), Stops: state.Stops(), Causes: state.CauseNames()})
			}
			format.TrainDetails(*state.Train(), state.Stops(), state.CurrentStop(), state.CauseNames(), stationNames(cmd.Context(), application))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", repository.LatestDeparture, "Departure date (YYYY-MM-DD) of the run to show")

	return cmd
}
