package flights

import (
	"context"
	"log"
	"strings"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	SetFlights(ctx context.Context, filter domain.FlightFilter, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type CreateFlightInput struct {
	From          string
	To            string
	DepartureTime string
	ArrivalTime   string
	Airline       string
	Price         int64
	Duration      string
	Stops         int
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx, filter); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, filter, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	if id <= 0 {
		return nil, domain.NotFoundError{Resource: "flight"}
	}
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		From:          strings.TrimSpace(input.From),
		To:            strings.TrimSpace(input.To),
		DepartureTime: strings.TrimSpace(input.DepartureTime),
		ArrivalTime:   strings.TrimSpace(input.ArrivalTime),
		Airline:       strings.TrimSpace(input.Airline),
		Price:         input.Price,
		Duration:      strings.TrimSpace(input.Duration),
		Stops:         input.Stops,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("invalidate flights cache: %v", err)
		}
	}
	return flight, nil
}

func (in CreateFlightInput) validate() error {
	required := []struct {
		field, value, msg string
	}{
		{"from", in.From, "Departure city is required"},
		{"to", in.To, "Arrival city is required"},
		{"departureTime", in.DepartureTime, "Departure time is required"},
		{"arrivalTime", in.ArrivalTime, "Arrival time is required"},
		{"airline", in.Airline, "Airline is required"},
		{"duration", in.Duration, "Duration is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domain.ValidationError{Field: r.field, Msg: r.msg}
		}
	}
	if in.Price <= 0 {
		return domain.ValidationError{Field: "price", Msg: "Price must be positive"}
	}
	if in.Stops < 0 {
		return domain.ValidationError{Field: "stops", Msg: "Stops cannot be negative"}
	}
	return nil
}

var _ FlightUseCase = (*FlightService)(nil)
