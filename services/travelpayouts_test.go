package services

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLatest_DecodesAndTagsRecords(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/v2/prices/latest", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"origin":"JFK","destination":"LAX","depart_date":"2023-07-15","return_date":"2023-07-22","price":350,"airline":"AA","flight_number":"AA100"},
			{"origin":"JFK","destination":"LAX","depart_date":"2023-07-16","price":380}
		]}`))
	}))
	defer srv.Close()

	c := NewTravelpayoutsClient("test-token", srv.URL, time.Second)
	got, err := c.FetchLatest("JFK", "LAX", "2023-07-15", "2023-07-22")
	require.NoError(t, err)

	assert.Equal(t, "JFK", gotQuery.Get("origin"))
	assert.Equal(t, "LAX", gotQuery.Get("destination"))
	assert.Equal(t, "range", gotQuery.Get("period_type"))
	assert.Equal(t, "2023-07-15", gotQuery.Get("beginning_of_period"))
	assert.Equal(t, "2023-07-22", gotQuery.Get("end_of_period"))
	assert.Equal(t, "100", gotQuery.Get("limit"))
	assert.Equal(t, "test-token", gotQuery.Get("token"))

	require.Len(t, got, 2)
	assert.Equal(t, 350.0, got[0].Price)
	assert.Equal(t, "AA100", got[0].FlightNumber)
	assert.Equal(t, SourceAPI, got[0].Source)
	// Missing fields tolerate as zero values.
	assert.Equal(t, "", got[1].ReturnDate)
	assert.Equal(t, SourceAPI, got[1].Source)
}

func TestFetchLatest_AnyDestinationOmitsParam(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewTravelpayoutsClient("test-token", srv.URL, time.Second)
	got, err := c.FetchLatest("JFK", "any", "2023-07-15", "2023-07-22")
	require.NoError(t, err)

	assert.Empty(t, got)
	assert.False(t, gotQuery.Has("destination"))
}

func TestFetchLatest_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"bad token"}`))
	}))
	defer srv.Close()

	c := NewTravelpayoutsClient("bad", srv.URL, time.Second)
	_, err := c.FetchLatest("JFK", "LAX", "2023-07-15", "2023-07-22")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchLatest_BadJSONIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewTravelpayoutsClient("test-token", srv.URL, time.Second)
	_, err := c.FetchLatest("JFK", "LAX", "2023-07-15", "2023-07-22")

	assert.Error(t, err)
}
