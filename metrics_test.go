package main

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zabeloliver/room-monitor/roomApi/roomClient"
	"github.com/zabeloliver/room-monitor/roomApi/roomStructs"
)

type staticDirectory struct {
	rooms []roomStructs.Room
	err   error
}

func (s *staticDirectory) GetRooms(ctx context.Context) ([]roomStructs.Room, error) {
	return s.rooms, s.err
}

func TestInstrumentedDirectoryWritesGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	dir := &instrumentedDirectory{
		next: &staticDirectory{rooms: []roomStructs.Room{
			{Id: "1", Name: "Jerry's Bedroom", Temperature: "14.9°C", Humidity: "78.3%", PreferredTemp: "15", PreferredHumidity: "n/a"},
		}},
		metrics: m,
	}

	rooms, err := dir.GetRooms(context.Background())
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	assert.InDelta(t, 14.9, testutil.ToFloat64(m.roomTemperature.WithLabelValues("1", "Jerry's Bedroom")), 1e-9)
	assert.InDelta(t, 78.3, testutil.ToFloat64(m.roomHumidity.WithLabelValues("1", "Jerry's Bedroom")), 1e-9)
	assert.InDelta(t, 15, testutil.ToFloat64(m.roomPreferredTemperature.WithLabelValues("1", "Jerry's Bedroom")), 1e-9)
	assert.Equal(t, 0, testutil.CollectAndCount(m.roomPreferredHumidity))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.directoryFetches.WithLabelValues("success")))
}

func TestInstrumentedDirectoryCountsFailures(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	dir := &instrumentedDirectory{next: &staticDirectory{err: &roomClient.StatusError{Code: 503}}, metrics: m}

	_, err := dir.GetRooms(context.Background())
	assert.EqualError(t, err, "Error: 503")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.directoryFetches.WithLabelValues("failure")))
	assert.Equal(t, 0, testutil.CollectAndCount(m.roomTemperature))
}
