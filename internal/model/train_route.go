package model

import "time"

// TrainRoute is a timetable entry. Departure and arrival times are
// stored as opaque strings; the system enforces no ordering or format
// between them.
type TrainRoute struct {
	ID            int64     `json:"id"`
	TrainID       string    `json:"train_id"`
	DepartureTime string    `json:"departure_time"`
	ArrivalTime   string    `json:"arrival_time"`
	StationFrom   string    `json:"station_from"`
	StationTo     string    `json:"station_to"`
	CreatedAt     time.Time `json:"created_at"`
}

// TrainRouteUpdate is the set of mutable route fields for partial
// updates. Nil means "leave unchanged".
type TrainRouteUpdate struct {
	TrainID       *string `json:"train_id"`
	DepartureTime *string `json:"departure_time"`
	ArrivalTime   *string `json:"arrival_time"`
	StationFrom   *string `json:"station_from"`
	StationTo     *string `json:"station_to"`
}
