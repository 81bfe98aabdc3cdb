package iris

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// Timetable assembles the reconciled timetable for one station over a time
// window. The window defaults to [now, now+2h] and may span at most 12 hours.
//
// Hourly plan documents and the change document have no ordering dependency
// on each other, so all fetches run concurrently and join before
// reconciliation. Any failed fetch or parse fails the whole request; a
// partially reconciled timetable would misrepresent live platform and
// cancellation data.
func (c *Client) Timetable(ctx context.Context, eva int, options Options) (*Result, error) {
	start := options.StartDate
	if start.IsZero() {
		start = time.Now()
	}

	end := options.EndDate
	if end.IsZero() {
		end = start.Add(2 * time.Hour)
	}

	if !end.After(start) {
		return nil, NewUserError("End date must be after start date")
	}
	if end.Sub(start) > 12*time.Hour {
		return nil, NewUserError("End date must be within 12 hours of start date")
	}

	var buckets []time.Time
	for date := start; !date.After(end); date = date.Add(time.Hour) {
		buckets = append(buckets, date)
	}

	timetables := make([]*Timetable, len(buckets))
	var changes []StopChange

	fetchPool := pool.New().WithErrors()

	for index, bucket := range buckets {
		fetchPool.Go(func() error {
			document, err := c.FetchPlan(ctx, eva, bucket)
			if err != nil {
				return err
			}

			timetable, err := ParseTimetable(eva, document, options.IncludeRoute)
			if err != nil {
				return err
			}

			timetables[index] = timetable
			return nil
		})
	}

	fetchPool.Go(func() error {
		document, err := c.FetchChanges(ctx, eva)
		if err != nil {
			return err
		}

		parsed, err := ParseChanges(document, options.IncludeMessages)
		if err != nil {
			return err
		}

		changes = parsed
		return nil
	})

	if err := fetchPool.Wait(); err != nil {
		return nil, err
	}

	station := timetables[0].Station
	if station.Name == "" {
		return nil, NewUserError("Station not found")
	}

	var plannedStops []PlannedStop
	for _, timetable := range timetables {
		plannedStops = append(plannedStops, timetable.Stops...)
	}

	stops := ReconcileStops(plannedStops, changes, station.Name)

	var windowStops []Stop
	for _, stop := range stops {
		stopTime := StopTime(stop)

		if !stopTime.Before(start) && !stopTime.After(end) {
			windowStops = append(windowStops, stop)
		}
	}

	sort.SliceStable(windowStops, func(i, j int) bool {
		return StopTime(windowStops[i]).Before(StopTime(windowStops[j]))
	})

	log.Debug().
		Int("eva", eva).
		Int("hours", len(buckets)).
		Int("planned", len(plannedStops)).
		Int("changes", len(changes)).
		Int("stops", len(windowStops)).
		Msg("Assembled timetable window")

	return &Result{
		Station: station,
		Stops:   windowStops,
	}, nil
}
