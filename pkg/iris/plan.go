package iris

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// ParseTimetable converts one hourly planned-schedule document into the
// station identity plus its planned stops. The full route is only retained on
// the stops when includeRoute is set; the planned destination is derived from
// it either way.
func ParseTimetable(eva int, document string, includeRoute bool) (*Timetable, error) {
	var timetableDoc timetableDocument
	if err := xml.Unmarshal([]byte(document), &timetableDoc); err != nil {
		return nil, fmt.Errorf("invalid plan document: %w", err)
	}

	stationName := timetableDoc.Station

	var stops []PlannedStop
	for _, stop := range timetableDoc.Stops {
		if stop.ID == "" {
			return nil, fmt.Errorf("plan document for %s contains a stop without an id", stationName)
		}
		if stop.Label == nil || stop.Label.Category == "" {
			return nil, fmt.Errorf("stop %s has no train label", stop.ID)
		}

		// The train number is informational, a non-numeric value is kept as zero.
		number, _ := strconv.Atoi(stop.Label.Number)

		var line string
		var platform string
		var route []string

		if stop.Arrival != nil {
			line = stop.Arrival.Line
			platform = stop.Arrival.PlannedPlatform
			route = append(route, splitPath(stop.Arrival.PlannedPath)...)
		}

		route = append(route, stationName)

		if stop.Departure != nil {
			if line == "" {
				line = stop.Departure.Line
			}
			if platform == "" {
				platform = stop.Departure.PlannedPlatform
			}
			route = append(route, splitPath(stop.Departure.PlannedPath)...)
		}

		arrival, err := parsePlannedEvent(stop.ID, stop.Arrival)
		if err != nil {
			return nil, err
		}
		departure, err := parsePlannedEvent(stop.ID, stop.Departure)
		if err != nil {
			return nil, err
		}

		plannedStop := PlannedStop{
			ID:              stop.ID,
			PlannedPlatform: platform,
			Train: Train{
				Type:   stop.Label.Category,
				Line:   line,
				Number: number,
				Class:  parseTrainClass(stop.Label.Filter),
			},
			Arrival:            arrival,
			Departure:          departure,
			PlannedDestination: route[len(route)-1],
		}

		if includeRoute {
			plannedStop.PlannedRoute = route
		}

		stops = append(stops, plannedStop)
	}

	return &Timetable{
		Station: Station{
			Name: stationName,
			Eva:  eva,
		},
		Stops: stops,
	}, nil
}

func parsePlannedEvent(stopID string, event *eventElement) (*PlannedEvent, error) {
	if event == nil {
		return nil, nil
	}

	if event.PlannedTime == "" {
		return nil, fmt.Errorf("stop %s has no planned time", stopID)
	}

	plannedTime, err := parseFeedTime(event.PlannedTime)
	if err != nil {
		return nil, fmt.Errorf("stop %s: %w", stopID, err)
	}

	return &PlannedEvent{PlannedTime: plannedTime}, nil
}

func parseTrainClass(filter string) TrainClass {
	switch filter {
	case "F":
		return TrainClassLongDistance
	case "N":
		return TrainClassRegional
	case "S":
		return TrainClassSuburban
	default:
		return TrainClassUnknown
	}
}
