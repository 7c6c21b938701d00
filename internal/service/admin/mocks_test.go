package admin

import (
	"context"
	"time"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/service/flights"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
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

type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	return m.Called(ctx, enquiry).Error(0)
}

func (m *MockEnquiryRepository) List(ctx context.Context, page domain.Page) ([]domain.Enquiry, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEnquiryRepository) UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus) (*domain.Enquiry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountAdmins(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) (*domain.User, error) {
	args := m.Called(ctx, id, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockAdminLogRepository struct {
	mock.Mock
}

func (m *MockAdminLogRepository) Create(ctx context.Context, entry *domain.AdminLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAdminLogRepository) List(ctx context.Context, page domain.Page) ([]domain.AdminLog, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.AdminLog), args.Error(1)
}

func (m *MockAdminLogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountBookingsByStatus(ctx context.Context, since time.Time) (map[domain.BookingStatus]int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(map[domain.BookingStatus]int64), args.Error(1)
}

func (m *MockStatsRepository) CountEnquiriesByStatus(ctx context.Context, status domain.EnquiryStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountUsers(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountEnquiries(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) RevenueBetween(ctx context.Context, from, to time.Time) (float64, int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *MockStatsRepository) DailyRevenue(ctx context.Context, since time.Time) ([]domain.RevenuePoint, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]domain.RevenuePoint), args.Error(1)
}

func (m *MockStatsRepository) DailySignups(ctx context.Context, since time.Time) ([]domain.CountPoint, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]domain.CountPoint), args.Error(1)
}

func (m *MockStatsRepository) BookingsByType(ctx context.Context, since time.Time) (map[string]int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockBookingUpdater struct {
	mock.Mock
}

func (m *MockBookingUpdater) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockFlightCreator struct {
	mock.Mock
}

func (m *MockFlightCreator) Create(ctx context.Context, input flights.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}

func (m *MockStatsCache) SetStats(ctx context.Context, stats *domain.AdminStats) error {
	return m.Called(ctx, stats).Error(0)
}
