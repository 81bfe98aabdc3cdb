package iris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planDocument = `<timetable station='München Hbf'>
<s id='2766036629955109715-2508291210-6'>
<tl f='N' t='p' o='800725' c='RB' n='59438'/>
<ar pt='2508291210' pp='11' l='16' ppth='Nürnberg Hbf|Ingolstadt Hbf'/>
<dp pt='2508291212' pp='11' l='16' ppth='München Ost'/>
</s>
<s id='5456679218246877423-2508291220-8'>
<tl f='F' t='p' o='80' c='ICE' n='591'/>
<ar pt='2508291220' pp='18' ppth='Essen Hbf|Duisburg Hbf|Düsseldorf Hbf'/>
</s>
<s id='8374625172930461118-2508291236-1'>
<tl f='S' t='p' o='800725' c='S' n='6876'/>
<dp pt='2508291236' pp='2' l='3' ppth='München-Pasing|Mammendorf'/>
</s>
</timetable>`

func TestParseTimetable(t *testing.T) {
	timetable, err := ParseTimetable(8000261, planDocument, false)
	require.NoError(t, err)

	assert.Equal(t, Station{Name: "München Hbf", Eva: 8000261}, timetable.Station)
	require.Len(t, timetable.Stops, 3)

	regional := timetable.Stops[0]
	assert.Equal(t, "2766036629955109715-2508291210-6", regional.ID)
	assert.Equal(t, Train{Type: "RB", Line: "16", Number: 59438, Class: TrainClassRegional}, regional.Train)
	assert.Equal(t, "11", regional.PlannedPlatform)
	require.NotNil(t, regional.Arrival)
	require.NotNil(t, regional.Departure)
	assert.Equal(t, time.Date(2025, 8, 29, 12, 10, 0, 0, FeedLocation()), regional.Arrival.PlannedTime)
	assert.Equal(t, time.Date(2025, 8, 29, 12, 12, 0, 0, FeedLocation()), regional.Departure.PlannedTime)
	assert.Equal(t, "München Ost", regional.PlannedDestination)
	assert.Nil(t, regional.PlannedRoute)

	// A terminating train has the current station as its destination.
	longDistance := timetable.Stops[1]
	assert.Equal(t, TrainClassLongDistance, longDistance.Train.Class)
	assert.Empty(t, longDistance.Train.Line)
	assert.Nil(t, longDistance.Departure)
	assert.Equal(t, "München Hbf", longDistance.PlannedDestination)

	suburban := timetable.Stops[2]
	assert.Equal(t, TrainClassSuburban, suburban.Train.Class)
	assert.Equal(t, "3", suburban.Train.Line)
	assert.Nil(t, suburban.Arrival)
	assert.Equal(t, "2", suburban.PlannedPlatform)
	assert.Equal(t, "Mammendorf", suburban.PlannedDestination)
}

func TestParseTimetableIncludeRoute(t *testing.T) {
	timetable, err := ParseTimetable(8000261, planDocument, true)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Nürnberg Hbf", "Ingolstadt Hbf", "München Hbf", "München Ost"},
		timetable.Stops[0].PlannedRoute)
	assert.Equal(t,
		[]string{"Essen Hbf", "Duisburg Hbf", "Düsseldorf Hbf", "München Hbf"},
		timetable.Stops[1].PlannedRoute)
	assert.Equal(t,
		[]string{"München Hbf", "München-Pasing", "Mammendorf"},
		timetable.Stops[2].PlannedRoute)
}

func TestParseTimetableUnclassifiedTrain(t *testing.T) {
	document := `<timetable station='Testheim'>
<s id='1-2508290800-1'><tl t='p' c='BUS' n='100'/><dp pt='2508290800'/></s>
</timetable>`

	timetable, err := ParseTimetable(1, document, false)
	require.NoError(t, err)

	assert.Equal(t, TrainClassUnknown, timetable.Stops[0].Train.Class)
}

func TestParseTimetableErrors(t *testing.T) {
	_, err := ParseTimetable(1, "<timetable", false)
	assert.Error(t, err)

	_, err = ParseTimetable(1, `<timetable station='X'><s id='a'><tl c='RB' n='1'/><ar pt='garbage'/></s></timetable>`, false)
	assert.Error(t, err)

	_, err = ParseTimetable(1, `<timetable station='X'><s id='a'><ar pt='2508291210'/></s></timetable>`, false)
	assert.Error(t, err, "a stop without a train label must fail the document")

	_, err = ParseTimetable(1, `<timetable station='X'><s><tl c='RB' n='1'/><ar pt='2508291210'/></s></timetable>`, false)
	assert.Error(t, err, "a stop without an id must fail the document")

	_, err = ParseTimetable(1, `<timetable station='X'><s id='a'><tl c='RB' n='1'/><ar pp='5'/></s></timetable>`, false)
	assert.Error(t, err, "an arrival without a planned time must fail the document")
}

func TestParseTimetableEmptyDocument(t *testing.T) {
	timetable, err := ParseTimetable(1, "<timetable/>", false)
	require.NoError(t, err)

	assert.Empty(t, timetable.Station.Name)
	assert.Empty(t, timetable.Stops)
}
