// Package catalog serves the static travel inventory: hotels, destinations,
// activities, holiday packages and the flight schedule used to seed the
// database.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/Domenick1991/happyfares/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Hotel struct {
	ID       int64   `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Image    string  `yaml:"image" json:"image"`
	Location string  `yaml:"location" json:"location"`
	Price    int64   `yaml:"price" json:"price"`
	Rating   float64 `yaml:"rating" json:"rating"`
}

type Destination struct {
	ID          int64  `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Image       string `yaml:"image" json:"image"`
	Description string `yaml:"description" json:"description"`
	Price       int64  `yaml:"price" json:"price"`
}

type Activity struct {
	ID       int64  `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Image    string `yaml:"image" json:"image"`
	Location string `yaml:"location" json:"location"`
	Price    int64  `yaml:"price" json:"price"`
	Duration string `yaml:"duration" json:"duration"`
}

type Package struct {
	ID            int64   `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	DestinationID int64   `yaml:"destination_id" json:"destinationId"`
	HotelID       int64   `yaml:"hotel_id" json:"hotelId"`
	ActivityIDs   []int64 `yaml:"activity_ids" json:"activityIds"`
	Nights        int     `yaml:"nights" json:"nights"`
	Price         int64   `yaml:"price" json:"price"`
	Description   string  `yaml:"description" json:"description"`
}

type seedFlight struct {
	From          string `yaml:"from"`
	To            string `yaml:"to"`
	DepartureTime string `yaml:"departure_time"`
	ArrivalTime   string `yaml:"arrival_time"`
	Airline       string `yaml:"airline"`
	Price         int64  `yaml:"price"`
	Duration      string `yaml:"duration"`
	Stops         int    `yaml:"stops"`
}

type Catalog struct {
	PopularCities []string      `yaml:"popular_cities"`
	Hotels        []Hotel       `yaml:"hotels"`
	Destinations  []Destination `yaml:"destinations"`
	Activities    []Activity    `yaml:"activities"`
	Packages      []Package     `yaml:"packages"`
	Flights       []seedFlight  `yaml:"flights"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	hotels := make(map[int64]bool, len(c.Hotels))
	for _, h := range c.Hotels {
		hotels[h.ID] = true
	}
	destinations := make(map[int64]bool, len(c.Destinations))
	for _, d := range c.Destinations {
		destinations[d.ID] = true
	}
	for _, p := range c.Packages {
		if !hotels[p.HotelID] {
			return fmt.Errorf("package %d references unknown hotel %d", p.ID, p.HotelID)
		}
		if !destinations[p.DestinationID] {
			return fmt.Errorf("package %d references unknown destination %d", p.ID, p.DestinationID)
		}
	}
	return nil
}

// SearchHotels matches location case-insensitively as a substring. An empty
// location returns every hotel.
func (c *Catalog) SearchHotels(location string) []Hotel {
	location = strings.ToLower(strings.TrimSpace(location))
	out := make([]Hotel, 0, len(c.Hotels))
	for _, h := range c.Hotels {
		if location == "" || strings.Contains(strings.ToLower(h.Location), location) {
			out = append(out, h)
		}
	}
	return out
}

func (c *Catalog) Hotel(id int64) (*Hotel, bool) {
	for i := range c.Hotels {
		if c.Hotels[i].ID == id {
			return &c.Hotels[i], true
		}
	}
	return nil, false
}

func (c *Catalog) Package(id int64) (*Package, bool) {
	for i := range c.Packages {
		if c.Packages[i].ID == id {
			return &c.Packages[i], true
		}
	}
	return nil, false
}

func (c *Catalog) SeedFlights() []domain.Flight {
	out := make([]domain.Flight, 0, len(c.Flights))
	for _, f := range c.Flights {
		out = append(out, domain.Flight{
			From:          f.From,
			To:            f.To,
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Airline:       f.Airline,
			Price:         f.Price,
			Duration:      f.Duration,
			Stops:         f.Stops,
		})
	}
	return out
}
