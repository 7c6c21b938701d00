package api

import (
	"context"

	"github.com/Domenick1991/happyfares/internal/auth"
	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/service/booking"
	"github.com/Domenick1991/happyfares/internal/service/enquiry"
	"github.com/Domenick1991/happyfares/internal/service/flights"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, input flights.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput, userID *int64) (*domain.Booking, error) {
	args := m.Called(ctx, input, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Get(ctx context.Context, id int64, viewer *domain.User) (*domain.Booking, error) {
	args := m.Called(ctx, id, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockEnquiryUseCase struct {
	mock.Mock
}

func (m *MockEnquiryUseCase) Create(ctx context.Context, input enquiry.CreateEnquiryInput) (*domain.Enquiry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, input auth.RegisterInput) (*auth.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (*auth.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockAuthUseCase) Authenticate(ctx context.Context, token string) (*domain.User, *auth.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*auth.Claims), args.Error(2)
}

type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) ListBookings(ctx context.Context, page, limit int) (domain.PageResult[domain.Booking], error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).(domain.PageResult[domain.Booking]), args.Error(1)
}

func (m *MockAdminUseCase) ListEnquiries(ctx context.Context, page, limit int) (domain.PageResult[domain.Enquiry], error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).(domain.PageResult[domain.Enquiry]), args.Error(1)
}

func (m *MockAdminUseCase) ListUsers(ctx context.Context, page, limit int) (domain.PageResult[domain.User], error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).(domain.PageResult[domain.User]), args.Error(1)
}

func (m *MockAdminUseCase) ListLogs(ctx context.Context, page, limit int) (domain.PageResult[domain.AdminLog], error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).(domain.PageResult[domain.AdminLog]), args.Error(1)
}

func (m *MockAdminUseCase) UpdateBookingStatus(ctx context.Context, adminID, id int64, status string) (*domain.Booking, error) {
	args := m.Called(ctx, adminID, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockAdminUseCase) UpdateEnquiryStatus(ctx context.Context, adminID, id int64, status string) (*domain.Enquiry, error) {
	args := m.Called(ctx, adminID, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockAdminUseCase) SetUserAdmin(ctx context.Context, adminID, id int64, isAdmin bool) (*domain.User, error) {
	args := m.Called(ctx, adminID, id, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAdminUseCase) CreateFlight(ctx context.Context, adminID int64, input flights.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, adminID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockAdminUseCase) Stats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}

func (m *MockAdminUseCase) RefreshStats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}

func (m *MockAdminUseCase) Analytics(ctx context.Context, timeframe string) (*domain.Analytics, error) {
	args := m.Called(ctx, timeframe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analytics), args.Error(1)
}
