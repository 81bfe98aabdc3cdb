package iris

import (
	"encoding/xml"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Wire structs for the IRIS XML documents. Attribute names are kept exactly
// as the feed publishes them.

type timetableDocument struct {
	XMLName xml.Name      `xml:"timetable"`
	Station string        `xml:"station,attr"`
	Stops   []stopElement `xml:"s"`
}

type stopElement struct {
	ID        string           `xml:"id,attr"`
	Label     *trainLabel      `xml:"tl"`
	Arrival   *eventElement    `xml:"ar"`
	Departure *eventElement    `xml:"dp"`
	Messages  []messageElement `xml:"m"`
}

type trainLabel struct {
	Category string `xml:"c,attr"`
	Number   string `xml:"n,attr"`
	Filter   string `xml:"f,attr"`
	TripType string `xml:"t,attr"`
	Owner    string `xml:"o,attr"`
}

type eventElement struct {
	PlannedTime     string           `xml:"pt,attr"`
	ChangedTime     string           `xml:"ct,attr"`
	PlannedPlatform string           `xml:"pp,attr"`
	ChangedPlatform string           `xml:"cp,attr"`
	PlannedPath     string           `xml:"ppth,attr"`
	ChangedPath     string           `xml:"cpth,attr"`
	Line            string           `xml:"l,attr"`
	ChangedStatus   string           `xml:"cs,attr"`
	Messages        []messageElement `xml:"m"`
}

type messageElement struct {
	ID       string `xml:"id,attr"`
	Type     string `xml:"t,attr"`
	Code     string `xml:"c,attr"`
	Category string `xml:"cat,attr"`
	Priority string `xml:"p,attr"`
	TimeSent string `xml:"ts,attr"`
}

type stationsDocument struct {
	XMLName  xml.Name         `xml:"stations"`
	Stations []stationElement `xml:"station"`
}

type stationElement struct {
	Name      string `xml:"name,attr"`
	Eva       int    `xml:"eva,attr"`
	DS100     string `xml:"ds100,attr"`
	DB        string `xml:"db,attr"`
	Platforms string `xml:"p,attr"`
	Meta      string `xml:"meta,attr"`
}

const feedTimeFormat = "0601021504"

var (
	feedLocationOnce sync.Once
	feedLocation     *time.Location
)

// FeedLocation is the fixed local timezone all feed timestamps are encoded in.
func FeedLocation() *time.Location {
	feedLocationOnce.Do(func() {
		var err error
		feedLocation, err = time.LoadLocation("Europe/Berlin")
		if err != nil {
			feedLocation = time.Local
		}
	})

	return feedLocation
}

// parseFeedTime decodes the feed's yyMMddHHmm timestamps. The empty string is
// an absent optional attribute and decodes to the zero time.
func parseFeedTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.ParseInLocation(feedTimeFormat, value, FeedLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid feed timestamp %q: %w", value, err)
	}

	return parsed, nil
}

// splitPath splits a pipe-delimited station path attribute. The empty string
// is an absent path and yields nil.
func splitPath(value string) []string {
	if value == "" {
		return nil
	}

	return strings.Split(value, "|")
}
