package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"railboard.fi/internal/controller"
	"railboard.fi/internal/format"
)

func NewStationsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stations [query]",
		Short: "List passenger stations",
		Long: `List the passenger stations of the Finnish rail network. An optional
query filters by name substring or exact short code.

Examples:
  railboard stations
  railboard stations helsinki
  railboard stations TPE --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := a.open()
			if err != nil {
				return err
			}
			defer application.Close() // nolint:errcheck

			ctrl := controller.NewStationsController(application.Repository)
			if len(args) > 0 {
				ctrl.Offer(controller.FilterStations{Query: strings.Join(args, " ")})
			}
			ctrl.Offer(controller.LoadStations{})
			ctrl.Close()

			state := ctrl.State().Get()
			if msg := state.ErrorMessage(); msg != "" {
				return errors.New(msg)
			}

			if a.JSONOutput {
				return format.JSON(state.Stations())
			}
			format.Stations(state.Stations())
			return nil
		},
	}

	return cmd
}
