// Package cli implements the railboard command line interface on top
// of the same repository and controllers the HTTP server uses.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"railboard.fi/internal/app"
	"railboard.fi/internal/logging"
)

// App carries the flag values shared across commands.
type App struct {
	ConfigPath string
	JSONOutput bool
	Verbose    bool
}

func Execute() error {
	a := &App{}
	return NewRootCmd(a).Execute()
}

func NewRootCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "railboard",
		Short: "Finnish railway timetables from the command line",
		Long: `railboard — live timetables for the Finnish rail network.

List passenger stations, show a station's departure or arrival board,
and follow a single train's run. Data comes from the open Digitraffic
API; no key required.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", "", "Path to a TOML configuration file")
	cmd.PersistentFlags().BoolVar(&a.JSONOutput, "json", false, "Output in JSON format (for agent/machine consumption)")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", false, "Log repository activity to stderr")

	cmd.AddCommand(NewStationsCmd(a))
	cmd.AddCommand(NewBoardCmd(a))
	cmd.AddCommand(NewTrainCmd(a))

	return cmd
}

// open builds the shared application from the configured file, or from
// defaults when no file is given.
func (a *App) open() (*app.Application, error) {
	cfg, err := app.LoadConfig(a.ConfigPath)
	if err != nil {
		return nil, err
	}

	var out io.Writer = io.Discard
	level := slog.LevelWarn
	if a.Verbose {
		out = os.Stderr
		level = slog.LevelDebug
	}

	return app.NewApplication(cfg, logging.NewStructuredLogger(out, level))
}
