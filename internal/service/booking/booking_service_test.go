package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	if args.Error(0) == nil {
		booking.ID = 11
		booking.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, page domain.Page) ([]domain.Booking, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ExpirePendingBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, deadline)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) AcquireSubmitLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) ReleaseSubmitLock(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Type:       "flight",
		ItemID:     1,
		StartDate:  "2026-12-01",
		EndDate:    "2026-12-08",
		TotalPrice: "499.00",
		Details:    `{"from":"New York","to":"London","departureTime":"10:00 AM","airline":"British Airways"}`,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "Ada@Example.com",
		Phone:      "+44 20 7946 0000",
	}
}

const lockKey = "ada@example.com:flight:1:2026-12-01"

func newService(repo *MockBookingRepository, cache Cache, producer Producer) *BookingService {
	return NewBookingService(repo, cache, producer, "booking_topic", 30*time.Second, time.Hour)
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}
	service := newService(mockRepo, mockCache, mockProducer)

	ctx := context.Background()
	userID := int64(5)

	mockCache.On("AcquireSubmitLock", ctx, lockKey, 30*time.Second).Return(true, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "booking_topic", mock.AnythingOfType("string"), mock.MatchedBy(func(e kafka.BookingEvent) bool {
		return e.Type == kafka.EventBookingCreated && e.BookingID == 11 && e.Status == "pending" && len(e.Details) > 0
	})).Return(nil).Once()

	booking, err := service.CreateBooking(ctx, validInput(), &userID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.BookingTypeFlight, booking.Type)
	assert.True(t, booking.OwnedBy(5))
	assert.Len(t, booking.Reference, 36)
	assert.Equal(t, "Ada@Example.com", booking.Email)

	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
	mockCache.AssertNotCalled(t, "ReleaseSubmitLock", mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_GuestWithExplicitStatus(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo, nil, nil, "", 0, time.Hour)

	input := validInput()
	input.Type = "hotel"
	input.Status = "confirmed"
	input.Details = `{"name":"Grand Hotel","location":"Paris"}`

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()

	booking, err := service.CreateBooking(context.Background(), input, nil)

	require.NoError(t, err)
	assert.Nil(t, booking.UserID)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
}

func TestBookingService_CreateBooking_ValidationErrors(t *testing.T) {
	service := NewBookingService(&MockBookingRepository{}, nil, nil, "", 0, time.Hour)
	ctx := context.Background()

	testCases := []struct {
		name        string
		mutate      func(*CreateBookingInput)
		expectedErr string
	}{
		{"Missing first name", func(in *CreateBookingInput) { in.FirstName = " " }, "First name is required"},
		{"Missing last name", func(in *CreateBookingInput) { in.LastName = "" }, "Last name is required"},
		{"Invalid email", func(in *CreateBookingInput) { in.Email = "ada@" }, "Invalid email address"},
		{"Missing phone", func(in *CreateBookingInput) { in.Phone = "" }, "Phone number is required"},
		{"Unknown type", func(in *CreateBookingInput) { in.Type = "car" }, "Invalid booking type"},
		{"Zero item", func(in *CreateBookingInput) { in.ItemID = 0 }, "itemId must be positive"},
		{"Bad start date", func(in *CreateBookingInput) { in.StartDate = "01/12/2026" }, "startDate must be YYYY-MM-DD"},
		{"Bad end date", func(in *CreateBookingInput) { in.EndDate = "" }, "endDate must be YYYY-MM-DD"},
		{"End before start", func(in *CreateBookingInput) { in.EndDate = "2026-11-30" }, "endDate cannot be before startDate"},
		{"Negative price", func(in *CreateBookingInput) { in.TotalPrice = "-5" }, "totalPrice must be a non-negative amount"},
		{"Price not a number", func(in *CreateBookingInput) { in.TotalPrice = "abc" }, "totalPrice must be a non-negative amount"},
		{"Details not JSON", func(in *CreateBookingInput) { in.Details = "{from:" }, "details must be a JSON object"},
		{"Details array", func(in *CreateBookingInput) { in.Details = `[{"from":"New York"}]` }, "details must be a JSON object"},
		{"Details string", func(in *CreateBookingInput) { in.Details = `"{\"from\":\"New York\"}"` }, "details must be a JSON object"},
		{"Details null", func(in *CreateBookingInput) { in.Details = "null" }, "details must be a JSON object"},
		{"Unknown status", func(in *CreateBookingInput) { in.Status = "active" }, "Invalid status"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			booking, err := service.CreateBooking(ctx, input, nil)
			assert.Nil(t, booking)
			assert.True(t, domain.IsValidation(err))
			assert.EqualError(t, err, tc.expectedErr)
		})
	}
}

func TestBookingService_CreateBooking_AlreadySubmitting(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}
	service := newService(mockRepo, mockCache, &MockProducer{})

	ctx := context.Background()
	mockCache.On("AcquireSubmitLock", ctx, lockKey, 30*time.Second).Return(false, nil).Once()

	booking, err := service.CreateBooking(ctx, validInput(), nil)

	assert.Nil(t, booking)
	assert.True(t, domain.IsConflict(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_LockError(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}
	service := newService(mockRepo, mockCache, &MockProducer{})

	ctx := context.Background()
	mockCache.On("AcquireSubmitLock", ctx, lockKey, 30*time.Second).Return(false, errors.New("redis connection error")).Once()

	booking, err := service.CreateBooking(ctx, validInput(), nil)

	assert.Nil(t, booking)
	assert.ErrorContains(t, err, "redis connection error")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_RepoErrorReleasesLock(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}
	service := newService(mockRepo, mockCache, mockProducer)

	ctx := context.Background()
	mockCache.On("AcquireSubmitLock", ctx, lockKey, 30*time.Second).Return(true, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(errors.New("database error")).Once()
	mockCache.On("ReleaseSubmitLock", ctx, lockKey).Return(nil).Once()

	booking, err := service.CreateBooking(ctx, validInput(), nil)

	assert.Nil(t, booking)
	assert.EqualError(t, err, "database error")
	mockCache.AssertExpectations(t)
	mockProducer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_PublishErrorIsNotFatal(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}
	service := newService(mockRepo, mockCache, mockProducer)

	ctx := context.Background()
	mockCache.On("AcquireSubmitLock", ctx, lockKey, 30*time.Second).Return(true, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "booking_topic", mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()

	booking, err := service.CreateBooking(ctx, validInput(), nil)

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}

func TestBookingService_Get(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo, nil, nil)
	ctx := context.Background()

	owner := int64(5)
	stored := &domain.Booking{ID: 3, UserID: &owner, Status: domain.BookingStatusPending}
	mockRepo.On("GetByID", ctx, int64(3)).Return(stored, nil)
	mockRepo.On("GetByID", ctx, int64(4)).Return(nil, domain.NotFoundError{Resource: "booking"})

	got, err := service.Get(ctx, 3, &domain.User{ID: 5})
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	got, err = service.Get(ctx, 3, &domain.User{ID: 1, IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = service.Get(ctx, 3, &domain.User{ID: 6})
	assert.True(t, domain.IsForbidden(err))

	_, err = service.Get(ctx, 3, nil)
	assert.True(t, domain.IsUnauthorized(err))

	_, err = service.Get(ctx, 4, &domain.User{ID: 5})
	assert.True(t, domain.IsNotFound(err))
}

func TestBookingService_ListForUser(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo, nil, nil)
	ctx := context.Background()

	mockRepo.On("ListByUser", ctx, int64(5)).Return([]domain.Booking{{ID: 1}, {ID: 2}}, nil).Once()

	list, err := service.ListForUser(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBookingService_GetByReference(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo, nil, nil)
	ctx := context.Background()

	ref := "7d9f1c2e-7a53-4b8e-9a0c-0c8f1f5b2d11"
	mockRepo.On("GetByReference", ctx, ref).Return(&domain.Booking{ID: 8, Reference: ref}, nil).Once()

	got, err := service.GetByReference(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ID)

	_, err = service.GetByReference(ctx, "not-a-reference")
	assert.True(t, domain.IsNotFound(err))
	mockRepo.AssertNumberOfCalls(t, "GetByReference", 1)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := newService(mockRepo, nil, mockProducer)
	ctx := context.Background()

	updated := &domain.Booking{ID: 3, Reference: "ref-3", Status: domain.BookingStatusConfirmed, Details: "{}"}
	mockRepo.On("UpdateStatus", ctx, int64(3), domain.BookingStatusConfirmed).Return(updated, nil).Once()
	mockProducer.On("Publish", ctx, "booking_topic", "ref-3", mock.MatchedBy(func(e kafka.BookingEvent) bool {
		return e.Type == kafka.EventBookingStatusChanged && e.Status == "confirmed"
	})).Return(nil).Once()

	got, err := service.UpdateStatus(ctx, 3, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = service.UpdateStatus(ctx, 3, "active")
	assert.EqualError(t, err, "Invalid status")

	mockRepo.On("UpdateStatus", ctx, int64(9), domain.BookingStatusCancelled).Return(nil, domain.NotFoundError{Resource: "booking"}).Once()
	_, err = service.UpdateStatus(ctx, 9, domain.BookingStatusCancelled)
	assert.True(t, domain.IsNotFound(err))

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_ExpirePendingBookings(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	service := NewBookingService(mockRepo, nil, mockProducer, "booking_topic", 0, time.Hour, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	expired := []domain.Booking{
		{ID: 1, Reference: "r1", Status: domain.BookingStatusCancelled},
		{ID: 2, Reference: "r2", Status: domain.BookingStatusCancelled},
	}
	mockRepo.On("ExpirePendingBefore", ctx, now.Add(-time.Hour)).Return(expired, nil).Once()
	mockProducer.On("Publish", ctx, "booking_topic", "r1", mock.MatchedBy(func(e kafka.BookingEvent) bool {
		return e.Type == kafka.EventBookingExpired
	})).Return(nil).Once()
	mockProducer.On("Publish", ctx, "booking_topic", "r2", mock.Anything).Return(errors.New("kafka down")).Once()

	got, err := service.ExpirePendingBookings(ctx)

	require.NoError(t, err)
	assert.Equal(t, expired, got)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_ExpirePendingBookings_RepoError(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo, nil, nil)

	mockRepo.On("ExpirePendingBefore", mock.Anything, mock.Anything).Return(([]domain.Booking)(nil), errors.New("db down")).Once()

	got, err := service.ExpirePendingBookings(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestNewEvent_SkipsInvalidDetails(t *testing.T) {
	event := NewEvent(kafka.EventBookingCreated, &domain.Booking{Reference: "r", Details: "not json"})
	assert.Nil(t, event.Details)
	assert.Equal(t, "r", event.Reference)
}
