package iris

import (
	"encoding/xml"
	"fmt"
)

// ParseChanges converts one full-change document into per-stop change
// records. Arrival and departure deltas are independent: either side may
// carry a new time, a cancellation or a changed path on its own.
func ParseChanges(document string, includeMessages bool) ([]StopChange, error) {
	var timetableDoc timetableDocument
	if err := xml.Unmarshal([]byte(document), &timetableDoc); err != nil {
		return nil, fmt.Errorf("invalid change document: %w", err)
	}

	stationName := timetableDoc.Station

	var changes []StopChange
	for _, stop := range timetableDoc.Stops {
		if stop.ID == "" {
			return nil, fmt.Errorf("change document for %s contains a stop without an id", stationName)
		}

		arrival, err := parseChangeEvent(stop.ID, stop.Arrival, includeMessages)
		if err != nil {
			return nil, err
		}
		departure, err := parseChangeEvent(stop.ID, stop.Departure, includeMessages)
		if err != nil {
			return nil, err
		}

		var platform string
		if stop.Arrival != nil {
			platform = stop.Arrival.ChangedPlatform
		}
		if platform == "" && stop.Departure != nil {
			platform = stop.Departure.ChangedPlatform
		}

		// The changed route as currently reported: arrival leg, this station
		// unless the train no longer arrives here, then the departure leg. A
		// destination only meaningfully changes when that route contains more
		// than this station alone.
		var route []string
		if arrival != nil {
			route = append(route, arrival.ChangedPath...)
		}
		if arrival == nil || !arrival.Cancelled {
			route = append(route, stationName)
		}
		if departure != nil {
			route = append(route, departure.ChangedPath...)
		}

		var destination string
		if len(route) > 1 {
			destination = route[len(route)-1]
		}

		var messages []Message
		if includeMessages {
			messages = parseMessages(stop.Messages)
		}

		changes = append(changes, StopChange{
			ID:          stop.ID,
			Platform:    platform,
			Messages:    messages,
			Destination: destination,
			Arrival:     arrival,
			Departure:   departure,
		})
	}

	return changes, nil
}

func parseChangeEvent(stopID string, event *eventElement, includeMessages bool) (*ChangeEvent, error) {
	if event == nil {
		return nil, nil
	}

	changedTime, err := parseFeedTime(event.ChangedTime)
	if err != nil {
		return nil, fmt.Errorf("stop %s: %w", stopID, err)
	}

	var messages []Message
	if includeMessages {
		messages = parseMessages(event.Messages)
	}

	return &ChangeEvent{
		Time:        changedTime,
		Messages:    messages,
		Cancelled:   event.ChangedStatus == "c",
		ChangedPath: splitPath(event.ChangedPath),
	}, nil
}
