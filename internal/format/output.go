// Package format renders stations, boards, and train details for the
// terminal. Every printer has a JSON escape hatch via JSON.
package format

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"railboard.fi/internal/controller"
	"railboard.fi/internal/models"
)

var (
	bold   = color.New(color.Bold)
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	cyan   = color.New(color.FgCyan)
	dim    = color.New(color.Faint)
)

// JSON outputs any value as formatted JSON.
func JSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Stations prints the station list in human-readable format.
func Stations(stations []models.Station) {
	if len(stations) == 0 {
		dim.Println("No stations found.")
		return
	}

	bold.Printf("🚉 %d station(s)\n", len(stations))
	fmt.Println(strings.Repeat("─", 60))

	for _, s := range stations {
		fmt.Printf("  %-30s ", s.Name)
		cyan.Printf("%-6s", s.ShortCode)
		dim.Printf(" (%d)\n", s.Code)
	}
	fmt.Println()
}

// Board prints a station board in human-readable format. nameFor
// resolves station codes to display names for the other end of each
// train's run.
func Board(station models.Station, direction controller.BoardDirection, entries []controller.BoardEntry, nameFor func(int) string) {
	verb := "Departures"
	if direction == controller.BoardArrivals {
		verb = "Arrivals"
	}
	bold.Printf("📍 %s — %s\n", station.Name, verb)
	fmt.Println(strings.Repeat("─", 60))

	if len(entries) == 0 {
		dim.Println("No trains found.")
		return
	}

	for _, e := range entries {
		other := endpointName(e.Train, direction, nameFor)
		fmt.Printf("  %-8s %-22s %s", e.Train.Name(), other, entryTime(e, direction))
		if track := entryTrack(e, direction); track != "" {
			dim.Printf("  [track %s]", track)
		}
		if e.Train.IsCancelled {
			red.Print("  ✗ cancelled")
		}
		fmt.Println()
	}
	fmt.Println()
}

// TrainDetails prints one train's commercial stops and delay causes.
func TrainDetails(train models.Train, stops []models.Stop, current *models.Stop, causes []string, nameFor func(int) string) {
	bold.Printf("🚆 %s", train.Name())
	dim.Printf("  (%s)\n", train.DepartureDate)
	fmt.Println(strings.Repeat("─", 60))

	if train.IsCancelled {
		red.Println("  ✗ cancelled")
	}

	for _, stop := range stops {
		marker := "  "
		if current != nil && stop.StationCode() == current.StationCode() &&
			stop.Arrival == current.Arrival && stop.Departure == current.Departure {
			marker = green.Sprint("▶ ")
		}
		fmt.Printf("  %s%-25s %s\n", marker, nameFor(stop.StationCode()), stopTimes(stop))
	}

	if len(causes) > 0 {
		yellow.Printf("\n⚠️  %d delay cause(s):\n", len(causes))
		for _, cause := range causes {
			yellow.Printf("  • %s\n", cause)
		}
	}
	fmt.Println()
}

func endpointName(train models.Train, direction controller.BoardDirection, nameFor func(int) string) string {
	if len(train.Timetable) == 0 {
		return "?"
	}
	row := train.Timetable[len(train.Timetable)-1]
	if direction == controller.BoardArrivals {
		row = train.Timetable[0]
	}
	return nameFor(row.StationCode)
}

func entryTime(e controller.BoardEntry, direction controller.BoardDirection) string {
	row := e.Stop.Departure
	if direction == controller.BoardArrivals {
		row = e.Stop.Arrival
	}
	if row == nil {
		return ""
	}
	scheduled := clock(row.ScheduledTime)
	switch {
	case row.ActualTime != nil && row.DifferenceInMinutes > 0:
		return fmt.Sprintf("%s %s", scheduled, red.Sprintf("+%d min", row.DifferenceInMinutes))
	case row.ActualTime != nil:
		return fmt.Sprintf("%s %s", scheduled, green.Sprint("✓"))
	case row.EstimatedTime != nil && row.DifferenceInMinutes > 0:
		return fmt.Sprintf("%s %s", scheduled, yellow.Sprintf("~+%d min", row.DifferenceInMinutes))
	default:
		return scheduled
	}
}

func entryTrack(e controller.BoardEntry, direction controller.BoardDirection) string {
	row := e.Stop.Departure
	if direction == controller.BoardArrivals {
		row = e.Stop.Arrival
	}
	if row == nil {
		return ""
	}
	return row.Track
}

func stopTimes(stop models.Stop) string {
	var parts []string
	if stop.Arrival != nil {
		parts = append(parts, fmt.Sprintf("arr %s", clock(stop.Arrival.ScheduledTime)))
	}
	if stop.Departure != nil {
		parts = append(parts, fmt.Sprintf("dep %s", clock(stop.Departure.ScheduledTime)))
	}
	return strings.Join(parts, "  ")
}

func clock(t time.Time) string {
	return t.Local().Format("15:04")
}
