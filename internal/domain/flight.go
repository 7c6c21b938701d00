package domain

import "time"

type Flight struct {
	ID            int64
	From          string
	To            string
	DepartureTime string
	ArrivalTime   string
	Airline       string
	Price         int64
	Duration      string
	Stops         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type FlightFilter struct {
	From string
	To   string
}
