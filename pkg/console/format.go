package console

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bahnboard/bahnboard/pkg/iris"
	"github.com/fatih/color"
	"golang.org/x/exp/slices"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	blue   = color.New(color.FgBlue).SprintFunc()
	struck = color.New(color.FgRed, color.CrossedOut).SprintFunc()
)

const clockFormat = "15:04"

func formatStationDetails(station iris.StationDetails) string {
	return fmt.Sprintf("%s (%s - %s)", green(station.Name), cyan(fmt.Sprint(station.Eva)), blue(station.DS100))
}

// invalidIf strikes value through and appends its replacement when the
// condition holds.
func invalidIf(value string, invalid bool, replacement string) string {
	if !invalid {
		return value
	}
	if replacement == "" {
		return struck(value)
	}

	return fmt.Sprintf("%s %s", struck(value), replacement)
}

func formatChangeable(planned string, actual string) string {
	return invalidIf(planned, planned != actual, actual)
}

func formatDelay(planned time.Time, actual time.Time) string {
	minutes := int(math.Round(actual.Sub(planned).Minutes()))

	switch {
	case minutes > 0:
		return red(fmt.Sprintf("+%d min", minutes))
	case minutes < 0:
		return green(fmt.Sprintf("%d min", minutes))
	default:
		return ""
	}
}

func formatEventTime(event iris.StopEvent) string {
	return strings.TrimRight(fmt.Sprintf("%s %s",
		formatChangeable(event.PlannedTime.Format(clockFormat), event.Time.Format(clockFormat)),
		formatDelay(event.PlannedTime, event.Time)), " ")
}

// formatRoute renders the planned route, striking through stations the merged
// route no longer contains.
func formatRoute(planned []string, actual []string, currentStation string) string {
	var route []string
	for _, station := range planned {
		formatted := station
		if station == currentStation {
			formatted = green(station)
		}
		if actual != nil && !slices.Contains(actual, station) {
			formatted = struck(station)
		}
		route = append(route, formatted)
	}

	return strings.Join(route, " -> ")
}

func formatMessages(stop iris.Stop) string {
	var arrivalMessages []iris.Message
	var departureMessages []iris.Message
	if stop.Arrival != nil {
		arrivalMessages = stop.Arrival.Messages
	}
	if stop.Departure != nil {
		departureMessages = stop.Departure.Messages
	}

	var lines []string
	for _, message := range iris.MergeMessages(stop.Messages, arrivalMessages, departureMessages) {
		if message.Text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", green(message.TimeSent.Format(clockFormat)), message.Text))
	}

	if len(lines) == 0 {
		return ""
	}

	return fmt.Sprintf("\n\n%s", strings.Join(lines, "\n"))
}

func formatStop(stop iris.Stop, showRoute bool, showMessages bool, currentStation string) string {
	designator := fmt.Sprint(stop.Train.Number)
	if stop.Train.Line != "" {
		designator = stop.Train.Line
	}

	class := string(stop.Train.Class)
	if class == "" {
		class = "UNKNOWN"
	}

	str := fmt.Sprintf("%s (%s) -> %s",
		cyan(fmt.Sprintf("%s %s", stop.Train.Type, designator)),
		green(class),
		formatChangeable(stop.PlannedDestination, stop.Destination))

	str += fmt.Sprintf("\n  Platform %s", cyan(formatChangeable(stop.PlannedPlatform, stop.Platform)))

	if stop.Arrival != nil {
		str += invalidIf(
			fmt.Sprintf("\n  Arrival: %s", formatEventTime(*stop.Arrival)),
			stop.Arrival.Cancelled,
			red("Cancelled"))
	}

	if stop.Departure != nil {
		str += invalidIf(
			fmt.Sprintf("\n  Departure: %s", formatEventTime(*stop.Departure)),
			stop.Departure.Cancelled,
			red("Cancelled"))
	}

	if showRoute && stop.PlannedRoute != nil {
		str += fmt.Sprintf("\n  Route: %s", formatRoute(stop.PlannedRoute, stop.Route, currentStation))
	}

	if showMessages {
		str += formatMessages(stop)
	}

	return str
}
