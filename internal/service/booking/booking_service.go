package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/kafka"
	"github.com/Domenick1991/happyfares/internal/repository"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var pricePattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput, userID *int64) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Get(ctx context.Context, id int64, viewer *domain.User) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error)
}

// Cache guards against double submission of the booking form.
type Cache interface {
	AcquireSubmitLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseSubmitLock(ctx context.Context, key string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings     repository.BookingRepository
	cache        Cache
	producer     Producer
	bookingTopic string
	lockTTL      time.Duration
	holdTTL      time.Duration
	now          func() time.Time
}

type CreateBookingInput struct {
	Type       string
	ItemID     int64
	StartDate  string
	EndDate    string
	TotalPrice string
	Status     string
	Details    string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
}

type BookingServiceOption func(*BookingService)

// WithClock overrides time.Now, used by the expiry job tests.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	lockTTL, holdTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		lockTTL:      lockTTL,
		holdTTL:      holdTTL,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput, userID *int64) (*domain.Booking, error) {
	booking, err := input.toBooking()
	if err != nil {
		return nil, err
	}
	booking.UserID = userID
	booking.Reference = uuid.NewString()

	lockKey := input.lockKey()
	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSubmitLock(ctx, lockKey, s.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("acquire submit lock: %w", err)
		}
		if !ok {
			return nil, domain.ConflictError{Resource: "booking", Msg: "This booking is already being submitted"}
		}
		locked = true
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		if locked {
			_ = s.cache.ReleaseSubmitLock(ctx, lockKey)
		}
		return nil, err
	}

	if err := s.publish(ctx, kafka.EventBookingCreated, booking); err != nil {
		log.Printf("WARNING: failed to publish %s for booking %s: %v", kafka.EventBookingCreated, booking.Reference, err)
	}
	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// Get returns the booking when viewer owns it or is an admin.
func (s *BookingService) Get(ctx context.Context, id int64, viewer *domain.User) (*domain.Booking, error) {
	if viewer == nil {
		return nil, domain.UnauthorizedError{Msg: "Unauthorized"}
	}
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !viewer.IsAdmin && !booking.OwnedBy(viewer.ID) {
		return nil, domain.ForbiddenError{Msg: "Unauthorized"}
	}
	return booking, nil
}

func (s *BookingService) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	if _, err := uuid.Parse(reference); err != nil {
		return nil, domain.NotFoundError{Resource: "booking"}
	}
	return s.bookings.GetByReference(ctx, reference)
}

func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, domain.Invalid("Invalid status")
	}
	updated, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, kafka.EventBookingStatusChanged, updated); err != nil {
		log.Printf("WARNING: failed to publish %s for booking %s: %v", kafka.EventBookingStatusChanged, updated.Reference, err)
	}
	return updated, nil
}

// ExpirePendingBookings cancels pending bookings older than the hold window.
func (s *BookingService) ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error) {
	deadline := s.now().Add(-s.holdTTL)
	expired, err := s.bookings.ExpirePendingBefore(ctx, deadline)
	if err != nil {
		return nil, err
	}
	for i := range expired {
		if err := s.publish(ctx, kafka.EventBookingExpired, &expired[i]); err != nil {
			log.Printf("WARNING: failed to publish %s for booking %s: %v", kafka.EventBookingExpired, expired[i].Reference, err)
		}
	}
	return expired, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	return s.producer.Publish(ctx, s.bookingTopic, booking.Reference, NewEvent(eventType, booking))
}

func NewEvent(eventType string, booking *domain.Booking) kafka.BookingEvent {
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		BookingType: string(booking.Type),
		Status:      string(booking.Status),
		Email:       booking.Email,
		FirstName:   booking.FirstName,
		LastName:    booking.LastName,
		TotalPrice:  booking.TotalPrice,
		StartDate:   booking.StartDate,
		EndDate:     booking.EndDate,
		CreatedAt:   booking.CreatedAt,
	}
	if json.Valid([]byte(booking.Details)) {
		event.Details = json.RawMessage(booking.Details)
	}
	return event
}

func (in CreateBookingInput) toBooking() (*domain.Booking, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, domain.ValidationError{Field: "firstName", Msg: "First name is required"}
	}
	if strings.TrimSpace(in.LastName) == "" {
		return nil, domain.ValidationError{Field: "lastName", Msg: "Last name is required"}
	}
	if !domain.ValidEmail(in.Email) {
		return nil, domain.ValidationError{Field: "email", Msg: "Invalid email address"}
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, domain.ValidationError{Field: "phone", Msg: "Phone number is required"}
	}

	bookingType := domain.BookingType(in.Type)
	if !bookingType.Valid() {
		return nil, domain.ValidationError{Field: "type", Msg: "Invalid booking type"}
	}
	if in.ItemID <= 0 {
		return nil, domain.ValidationError{Field: "itemId", Msg: "itemId must be positive"}
	}

	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ValidationError{Field: "startDate", Msg: "startDate must be YYYY-MM-DD"}
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ValidationError{Field: "endDate", Msg: "endDate must be YYYY-MM-DD"}
	}
	if end.Before(start) {
		return nil, domain.ValidationError{Field: "endDate", Msg: "endDate cannot be before startDate"}
	}

	if !pricePattern.MatchString(in.TotalPrice) {
		return nil, domain.ValidationError{Field: "totalPrice", Msg: "totalPrice must be a non-negative amount"}
	}
	var details map[string]json.RawMessage
	if err := json.Unmarshal([]byte(in.Details), &details); err != nil || details == nil {
		return nil, domain.ValidationError{Field: "details", Msg: "details must be a JSON object"}
	}

	status := domain.BookingStatusPending
	if in.Status != "" {
		status = domain.BookingStatus(in.Status)
		if !status.Valid() {
			return nil, domain.Invalid("Invalid status")
		}
	}

	return &domain.Booking{
		Type:       bookingType,
		ItemID:     in.ItemID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		TotalPrice: in.TotalPrice,
		Status:     status,
		Details:    in.Details,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
	}, nil
}

func (in CreateBookingInput) lockKey() string {
	return fmt.Sprintf("%s:%s:%d:%s", strings.ToLower(strings.TrimSpace(in.Email)), in.Type, in.ItemID, in.StartDate)
}

var _ BookingUseCase = (*BookingService)(nil)
