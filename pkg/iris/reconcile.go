package iris

import (
	"time"

	"golang.org/x/exp/slices"
)

// ReconcileStops merges planned stops with the change records matching their
// ids into the effective per-stop view. Change records without a planned
// counterpart are not surfaced. The result is a pure function of its inputs.
func ReconcileStops(planned []PlannedStop, changes []StopChange, currentStation string) []Stop {
	changesByID := make(map[string]*StopChange, len(changes))
	for i := range changes {
		changesByID[changes[i].ID] = &changes[i]
	}

	var stops []Stop
	for _, plannedStop := range planned {
		stops = append(stops, reconcileStop(plannedStop, changesByID[plannedStop.ID], currentStation))
	}

	return stops
}

func reconcileStop(plannedStop PlannedStop, change *StopChange, currentStation string) Stop {
	var arrivalChange *ChangeEvent
	var departureChange *ChangeEvent
	if change != nil {
		arrivalChange = change.Arrival
		departureChange = change.Departure
	}

	arrival := reconcileEvent(plannedStop.Arrival, arrivalChange)
	departure := reconcileEvent(plannedStop.Departure, departureChange)

	stop := Stop{
		ID:                 plannedStop.ID,
		Train:              plannedStop.Train,
		PlannedPlatform:    plannedStop.PlannedPlatform,
		Platform:           plannedStop.PlannedPlatform,
		PlannedDestination: plannedStop.PlannedDestination,
		Destination:        plannedStop.PlannedDestination,
		PlannedRoute:       plannedStop.PlannedRoute,
		Arrival:            arrival,
		Departure:          departure,
	}

	if change != nil {
		if change.Platform != "" {
			stop.Platform = change.Platform
		}
		if change.Destination != "" {
			stop.Destination = change.Destination
		}
		stop.Messages = change.Messages
	}

	var arrivalPath []string
	var departurePath []string
	if arrivalChange != nil {
		arrivalPath = arrivalChange.ChangedPath
	}
	if departureChange != nil {
		departurePath = departureChange.ChangedPath
	}

	stop.Route = mergeRoute(plannedStop.PlannedRoute, arrivalPath, departurePath, currentStation, arrival != nil && arrival.Cancelled)

	return stop
}

// reconcileEvent computes the effective view of one side. Without a change
// the effective time is the planned time and the side is not cancelled.
func reconcileEvent(planned *PlannedEvent, change *ChangeEvent) *StopEvent {
	if planned == nil {
		return nil
	}

	event := &StopEvent{
		PlannedTime: planned.PlannedTime,
		Time:        planned.PlannedTime,
	}

	if change != nil {
		if !change.Time.IsZero() {
			event.Time = change.Time
		}
		event.Messages = change.Messages
		event.Cancelled = change.Cancelled
	}

	return event
}

// mergeRoute reconstructs the effective route from the planned route and the
// independently reported per-leg changed paths. A cancelled arrival means the
// train terminates before this station, so only its changed arrival path is
// shown.
func mergeRoute(plannedRoute []string, arrivalChangedPath []string, departureChangedPath []string, currentStation string, arrivalCancelled bool) []string {
	if plannedRoute == nil {
		return nil
	}
	if arrivalChangedPath == nil && departureChangedPath == nil {
		return plannedRoute
	}
	if arrivalCancelled {
		return arrivalChangedPath
	}

	// The planned route always carries the current station, spliced in at the
	// arrival/departure boundary by the plan parser.
	index := slices.Index(plannedRoute, currentStation)
	if index < 0 {
		return plannedRoute
	}

	arrivalRoute := plannedRoute[:index]
	departureRoute := plannedRoute[index+1:]

	if arrivalChangedPath != nil {
		arrivalRoute = arrivalChangedPath
	}
	if departureChangedPath != nil {
		departureRoute = departureChangedPath
	}

	merged := make([]string, 0, len(arrivalRoute)+1+len(departureRoute))
	merged = append(merged, arrivalRoute...)
	merged = append(merged, currentStation)
	merged = append(merged, departureRoute...)

	return merged
}

// StopTime is the effective time a stop is ordered and filtered by: the
// arrival when the train arrives here, otherwise the departure.
func StopTime(stop Stop) time.Time {
	if stop.Arrival != nil {
		return stop.Arrival.Time
	}
	if stop.Departure != nil {
		return stop.Departure.Time
	}

	return time.Time{}
}
