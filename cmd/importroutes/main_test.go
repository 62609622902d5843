package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoutes(t *testing.T) {
	csv := strings.Join([]string{
		"train_id,departure_time,arrival_time,station_from,station_to",
		"IR1,2024-01-01T08:00,2024-01-01T10:00,A,B",
		"R202,06:15,07:40,B,C",
	}, "\n")

	routes, err := parseRoutes(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, routes, 2)

	assert.Equal(t, "IR1", routes[0].TrainID)
	assert.Equal(t, "2024-01-01T08:00", routes[0].DepartureTime)
	assert.Equal(t, "2024-01-01T10:00", routes[0].ArrivalTime)
	assert.Equal(t, "A", routes[0].StationFrom)
	assert.Equal(t, "B", routes[0].StationTo)
	assert.Equal(t, "R202", routes[1].TrainID)
}

func TestParseRoutes_ReorderedHeader(t *testing.T) {
	csv := strings.Join([]string{
		"station_from,station_to,train_id,departure_time,arrival_time",
		"A,B,IR1,08:00,10:00",
	}, "\n")

	routes, err := parseRoutes(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "IR1", routes[0].TrainID)
	assert.Equal(t, "A", routes[0].StationFrom)
}

func TestParseRoutes_MissingColumn(t *testing.T) {
	csv := strings.Join([]string{
		"train_id,departure_time,arrival_time,station_from",
		"IR1,08:00,10:00,A",
	}, "\n")

	_, err := parseRoutes(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "station_to")
}

func TestParseRoutes_EmptyFile(t *testing.T) {
	_, err := parseRoutes(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseRoutes_NoRows(t *testing.T) {
	routes, err := parseRoutes(strings.NewReader("train_id,departure_time,arrival_time,station_from,station_to\n"))
	require.NoError(t, err)
	assert.Empty(t, routes)
}
