package iris

import (
	"time"
)

// TrainClass is the coarse service class the feed reports on the train label.
type TrainClass string

const (
	TrainClassLongDistance TrainClass = "LONG_DISTANCE"
	TrainClassRegional     TrainClass = "REGIONAL"
	TrainClassSuburban     TrainClass = "SUBURBAN"
	TrainClassUnknown      TrainClass = ""
)

// Station is the minimal station identity carried on every timetable result.
type Station struct {
	Name string `json:"name" groups:"basic"`
	Eva  int    `json:"eva" groups:"basic"`
}

// StationDetails is the full station record returned by a station lookup.
type StationDetails struct {
	Name      string   `json:"name" groups:"basic"`
	Eva       int      `json:"eva" groups:"basic"`
	DS100     string   `json:"ds100" groups:"basic"`
	DB        bool     `json:"db" groups:"basic"`
	Platforms []string `json:"platforms" groups:"basic"`

	// Meta lists related stations sharing the same physical site.
	Meta []StationDetails `json:"meta,omitempty" groups:"basic"`
}

// Train identifies the service calling at a stop.
type Train struct {
	Type   string     `json:"type" groups:"basic"`
	Line   string     `json:"line,omitempty" groups:"basic"`
	Number int        `json:"number" groups:"basic"`
	Class  TrainClass `json:"class,omitempty" groups:"basic"`
}

// Timetable is one parsed hourly plan document.
type Timetable struct {
	Station Station
	Stops   []PlannedStop
}

// PlannedEvent carries the scheduled side of an arrival or departure.
type PlannedEvent struct {
	PlannedTime time.Time
}

// PlannedStop is one scheduled stop as published in an hourly plan document.
type PlannedStop struct {
	ID                 string
	PlannedPlatform    string
	Train              Train
	Arrival            *PlannedEvent
	Departure          *PlannedEvent
	PlannedDestination string
	PlannedRoute       []string
}

// ChangeEvent is the live delta for one side (arrival or departure) of a stop.
// A zero Time means the feed has not confirmed a new time yet.
type ChangeEvent struct {
	Time        time.Time
	Messages    []Message
	Cancelled   bool
	ChangedPath []string
}

// StopChange is the live delta for one stop id from the full-change document.
type StopChange struct {
	ID          string
	Platform    string
	Messages    []Message
	Destination string
	Arrival     *ChangeEvent
	Departure   *ChangeEvent
}

// Message is a free-text operational notice attached to a stop or event.
// Value is the numeric feed code; Text is its resolved description, empty when
// the code is zero or unknown.
type Message struct {
	ID       string    `json:"id" groups:"messages"`
	Type     string    `json:"type" groups:"messages"`
	Value    int       `json:"value" groups:"messages"`
	Text     string    `json:"text,omitempty" groups:"messages"`
	Category string    `json:"category,omitempty" groups:"messages"`
	Priority int       `json:"priority,omitempty" groups:"messages"`
	TimeSent time.Time `json:"timeSent,omitempty" groups:"messages"`
}

// StopEvent is the reconciled view of one side of a stop. Time equals
// PlannedTime whenever no change has been reported for that side.
type StopEvent struct {
	PlannedTime time.Time `json:"plannedTime" groups:"basic"`
	Time        time.Time `json:"time" groups:"basic"`
	Messages    []Message `json:"messages,omitempty" groups:"messages"`
	Cancelled   bool      `json:"cancelled" groups:"basic"`
}

// Stop is the reconciled, user-facing view of one planned stop with any live
// changes applied on top.
type Stop struct {
	ID                 string     `json:"id" groups:"basic"`
	Train              Train      `json:"train" groups:"basic"`
	PlannedPlatform    string     `json:"plannedPlatform" groups:"basic"`
	Platform           string     `json:"platform" groups:"basic"`
	Messages           []Message  `json:"messages,omitempty" groups:"messages"`
	PlannedRoute       []string   `json:"plannedRoute,omitempty" groups:"route"`
	Route              []string   `json:"route,omitempty" groups:"route"`
	PlannedDestination string     `json:"plannedDestination" groups:"basic"`
	Destination        string     `json:"destination" groups:"basic"`
	Arrival            *StopEvent `json:"arrival" groups:"basic"`
	Departure          *StopEvent `json:"departure" groups:"basic"`
}

// Options controls a timetable window request.
type Options struct {
	StartDate       time.Time
	EndDate         time.Time
	IncludeRoute    bool
	IncludeMessages bool
}

// Result is an assembled timetable window for one station.
type Result struct {
	Station Station `json:"station" groups:"basic"`
	Stops   []Stop  `json:"stops" groups:"basic"`
}
