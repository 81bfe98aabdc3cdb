package iris

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func documentHandler(document string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(document))
	}
}

func newGatewayClient(server *httptest.Server) *Client {
	return &Client{
		Endpoint:   server.URL,
		HTTPClient: server.Client(),
	}
}

func TestTimetableWindow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/plan/8000261/250829/11", documentHandler(`<timetable station='München Hbf'>
<s id='early'><tl f='S' c='S' n='1'/><dp pt='2508291115' pp='1'/></s>
<s id='mid'><tl f='N' c='RB' n='2'/><dp pt='2508291145' pp='2'/></s>
</timetable>`))
	mux.HandleFunc("/plan/8000261/250829/12", documentHandler(`<timetable station='München Hbf'>
<s id='later'><tl f='F' c='ICE' n='3'/><ar pt='2508291220' pp='18'/><dp pt='2508291222' pp='18'/></s>
</timetable>`))
	mux.HandleFunc("/fchg/8000261", documentHandler(`<timetable station='München Hbf'>
<s id='early'><dp ct='2508291135'/></s>
<s id='mid'><dp ct='2508291240' cp='9'/></s>
</timetable>`))

	server := httptest.NewServer(mux)
	defer server.Close()

	start := time.Date(2025, 8, 29, 11, 30, 0, 0, FeedLocation())

	result, err := newGatewayClient(server).Timetable(context.Background(), 8000261, Options{
		StartDate: start,
		EndDate:   start.Add(90 * time.Minute),
	})
	require.NoError(t, err)

	assert.Equal(t, Station{Name: "München Hbf", Eva: 8000261}, result.Station)

	// "early" was planned before the window but its delay moves it inside;
	// "mid" is delayed past "later". Ordering follows effective times.
	require.Len(t, result.Stops, 3)
	assert.Equal(t, "early", result.Stops[0].ID)
	assert.Equal(t, "later", result.Stops[1].ID)
	assert.Equal(t, "mid", result.Stops[2].ID)

	for _, stop := range result.Stops {
		stopTime := StopTime(stop)
		assert.False(t, stopTime.Before(start))
		assert.False(t, stopTime.After(start.Add(90*time.Minute)))
	}

	assert.Equal(t, "9", result.Stops[2].Platform)
	assert.Equal(t, "2", result.Stops[2].PlannedPlatform)
}

func TestTimetableWindowValidation(t *testing.T) {
	client := NewClient(nil)
	start := time.Date(2025, 8, 29, 11, 30, 0, 0, FeedLocation())

	_, err := client.Timetable(context.Background(), 8000261, Options{
		StartDate: start,
		EndDate:   start.Add(-time.Hour),
	})
	require.Error(t, err)
	assert.True(t, IsUserError(err))
	assert.Equal(t, "End date must be after start date", err.Error())

	_, err = client.Timetable(context.Background(), 8000261, Options{
		StartDate: start,
		EndDate:   start,
	})
	require.Error(t, err)
	assert.True(t, IsUserError(err), "an end date equal to the start date is invalid")

	_, err = client.Timetable(context.Background(), 8000261, Options{
		StartDate: start,
		EndDate:   start.Add(13 * time.Hour),
	})
	require.Error(t, err)
	assert.True(t, IsUserError(err))
	assert.Equal(t, "End date must be within 12 hours of start date", err.Error())
}

func TestTimetableStationNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/plan/", documentHandler("<timetable/>"))
	mux.HandleFunc("/fchg/", documentHandler("<timetable/>"))

	server := httptest.NewServer(mux)
	defer server.Close()

	start := time.Date(2025, 8, 29, 11, 30, 0, 0, FeedLocation())

	_, err := newGatewayClient(server).Timetable(context.Background(), 999, Options{
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	})
	require.Error(t, err)
	assert.True(t, IsUserError(err))
	assert.Equal(t, "Station not found", err.Error())
}

func TestTimetableFailsOnFetchError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/plan/", documentHandler(`<timetable station='X'></timetable>`))
	mux.HandleFunc("/fchg/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	start := time.Date(2025, 8, 29, 11, 30, 0, 0, FeedLocation())

	_, err := newGatewayClient(server).Timetable(context.Background(), 8000261, Options{
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	})
	assert.Error(t, err, "a failed change fetch fails the whole request")
}

func TestTimetableFailsOnParseError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/plan/", documentHandler(`<timetable station='X'><s id='a'><tl c='RB' n='1'/><dp pt='bad'/></s></timetable>`))
	mux.HandleFunc("/fchg/", documentHandler("<timetable/>"))

	server := httptest.NewServer(mux)
	defer server.Close()

	start := time.Date(2025, 8, 29, 11, 30, 0, 0, FeedLocation())

	_, err := newGatewayClient(server).Timetable(context.Background(), 8000261, Options{
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	})
	require.Error(t, err)
	assert.False(t, IsUserError(err), "malformed upstream data is not the caller's fault")
}
