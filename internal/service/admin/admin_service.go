package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/repository"
	"github.com/Domenick1991/happyfares/internal/service/flights"
)

type AdminUseCase interface {
	ListBookings(ctx context.Context, page, limit int) (domain.PageResult[domain.Booking], error)
	ListEnquiries(ctx context.Context, page, limit int) (domain.PageResult[domain.Enquiry], error)
	ListUsers(ctx context.Context, page, limit int) (domain.PageResult[domain.User], error)
	ListLogs(ctx context.Context, page, limit int) (domain.PageResult[domain.AdminLog], error)
	UpdateBookingStatus(ctx context.Context, adminID, id int64, status string) (*domain.Booking, error)
	UpdateEnquiryStatus(ctx context.Context, adminID, id int64, status string) (*domain.Enquiry, error)
	SetUserAdmin(ctx context.Context, adminID, id int64, isAdmin bool) (*domain.User, error)
	CreateFlight(ctx context.Context, adminID int64, input flights.CreateFlightInput) (*domain.Flight, error)
	Stats(ctx context.Context) (*domain.AdminStats, error)
	RefreshStats(ctx context.Context) (*domain.AdminStats, error)
	Analytics(ctx context.Context, timeframe string) (*domain.Analytics, error)
}

type BookingStatusUpdater interface {
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}

type FlightCreator interface {
	Create(ctx context.Context, input flights.CreateFlightInput) (*domain.Flight, error)
}

type StatsCache interface {
	GetStats(ctx context.Context) (*domain.AdminStats, error)
	SetStats(ctx context.Context, stats *domain.AdminStats) error
}

type Deps struct {
	Bookings  repository.BookingRepository
	Enquiries repository.EnquiryRepository
	Users     repository.UserRepository
	Logs      repository.AdminLogRepository
	Stats     repository.StatsRepository
	Booking   BookingStatusUpdater
	Flights   FlightCreator
	Cache     StatsCache
}

type AdminService struct {
	deps         Deps
	defaultLimit int
	maxLimit     int
	now          func() time.Time
}

func NewAdminService(deps Deps, defaultLimit, maxLimit int) *AdminService {
	return &AdminService{deps: deps, defaultLimit: defaultLimit, maxLimit: maxLimit, now: time.Now}
}

func (s *AdminService) page(page, limit int) domain.Page {
	return domain.NewPage(page, limit, s.defaultLimit, s.maxLimit)
}

func (s *AdminService) ListBookings(ctx context.Context, page, limit int) (domain.PageResult[domain.Booking], error) {
	p := s.page(page, limit)
	return paginate(ctx, p, s.deps.Bookings.List, s.deps.Bookings.Count)
}

func (s *AdminService) ListEnquiries(ctx context.Context, page, limit int) (domain.PageResult[domain.Enquiry], error) {
	p := s.page(page, limit)
	return paginate(ctx, p, s.deps.Enquiries.List, s.deps.Enquiries.Count)
}

func (s *AdminService) ListUsers(ctx context.Context, page, limit int) (domain.PageResult[domain.User], error) {
	p := s.page(page, limit)
	return paginate(ctx, p, s.deps.Users.List, s.deps.Users.Count)
}

func (s *AdminService) ListLogs(ctx context.Context, page, limit int) (domain.PageResult[domain.AdminLog], error) {
	p := s.page(page, limit)
	return paginate(ctx, p, s.deps.Logs.List, s.deps.Logs.Count)
}

func paginate[T any](
	ctx context.Context,
	p domain.Page,
	list func(context.Context, domain.Page) ([]T, error),
	count func(context.Context) (int64, error),
) (domain.PageResult[T], error) {
	items, err := list(ctx, p)
	if err != nil {
		return domain.PageResult[T]{}, err
	}
	total, err := count(ctx)
	if err != nil {
		return domain.PageResult[T]{}, err
	}
	if items == nil {
		items = []T{}
	}
	return domain.PageResult[T]{Items: items, HasMore: p.HasMore(total)}, nil
}

func (s *AdminService) UpdateBookingStatus(ctx context.Context, adminID, id int64, status string) (*domain.Booking, error) {
	updated, err := s.deps.Booking.UpdateStatus(ctx, id, domain.BookingStatus(status))
	if err != nil {
		return nil, err
	}
	s.audit(ctx, adminID, domain.ActionUpdateBookingStatus, "booking", id, map[string]any{"status": status})
	return updated, nil
}

func (s *AdminService) UpdateEnquiryStatus(ctx context.Context, adminID, id int64, status string) (*domain.Enquiry, error) {
	st := domain.EnquiryStatus(status)
	if !st.Valid() {
		return nil, domain.Invalid("Invalid status")
	}
	updated, err := s.deps.Enquiries.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, adminID, domain.ActionUpdateEnquiryStatus, "enquiry", id, map[string]any{"status": status})
	return updated, nil
}

func (s *AdminService) SetUserAdmin(ctx context.Context, adminID, id int64, isAdmin bool) (*domain.User, error) {
	if adminID == id && !isAdmin {
		return nil, domain.Invalid("You cannot remove your own admin access")
	}
	updated, err := s.deps.Users.SetAdmin(ctx, id, isAdmin)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, adminID, domain.ActionUpdateUserRole, "user", id, map[string]any{"isAdmin": isAdmin})
	return updated, nil
}

func (s *AdminService) CreateFlight(ctx context.Context, adminID int64, input flights.CreateFlightInput) (*domain.Flight, error) {
	flight, err := s.deps.Flights.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, adminID, domain.ActionCreateFlight, "flight", flight.ID, map[string]any{
		"from":    flight.From,
		"to":      flight.To,
		"airline": flight.Airline,
		"price":   flight.Price,
	})
	return flight, nil
}

// audit records the mutation; a failed write is logged and does not undo it.
func (s *AdminService) audit(ctx context.Context, adminID int64, action, entityType string, entityID int64, details map[string]any) {
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}
	entry := &domain.AdminLog{
		AdminID:    adminID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    string(payload),
	}
	if err := s.deps.Logs.Create(ctx, entry); err != nil {
		log.Printf("admin log %s %s#%d by admin %d: %v", action, entityType, entityID, adminID, err)
	}
}

// Stats serves the dashboard counters from cache when fresh.
func (s *AdminService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	if s.deps.Cache != nil {
		if cached, err := s.deps.Cache.GetStats(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}
	return s.RefreshStats(ctx)
}

func (s *AdminService) RefreshStats(ctx context.Context) (*domain.AdminStats, error) {
	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}
	if s.deps.Cache != nil {
		if err := s.deps.Cache.SetStats(ctx, stats); err != nil {
			log.Printf("cache admin stats: %v", err)
		}
	}
	return stats, nil
}

func (s *AdminService) computeStats(ctx context.Context) (*domain.AdminStats, error) {
	var allTime time.Time
	users, err := s.deps.Stats.CountUsers(ctx, allTime)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	byStatus, err := s.deps.Stats.CountBookingsByStatus(ctx, allTime)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	newEnquiries, err := s.deps.Stats.CountEnquiriesByStatus(ctx, domain.EnquiryStatusNew)
	if err != nil {
		return nil, fmt.Errorf("count enquiries: %w", err)
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	revenue, _, err := s.deps.Stats.RevenueBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}

	return &domain.AdminStats{
		TotalUsers:     users,
		ActiveBookings: byStatus[domain.BookingStatusConfirmed],
		NewEnquiries:   newEnquiries,
		MonthlyRevenue: fmt.Sprintf("%.2f", revenue),
	}, nil
}

// TimeframeStart maps 7d, 30d, 90d and 1y to the window start; anything
// else falls back to 7d.
func TimeframeStart(timeframe string, now time.Time) time.Time {
	switch timeframe {
	case "30d":
		return now.AddDate(0, 0, -30)
	case "90d":
		return now.AddDate(0, 0, -90)
	case "1y":
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// Analytics reports every figure over the same window, from the timeframe
// start until now.
func (s *AdminService) Analytics(ctx context.Context, timeframe string) (*domain.Analytics, error) {
	now := s.now()
	since := TimeframeStart(timeframe, now)

	revenue, count, err := s.deps.Stats.RevenueBetween(ctx, since, now)
	if err != nil {
		return nil, fmt.Errorf("revenue: %w", err)
	}
	users, err := s.deps.Stats.CountUsers(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	enquiries, err := s.deps.Stats.CountEnquiries(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("count enquiries: %w", err)
	}
	daily, err := s.deps.Stats.DailyRevenue(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("daily revenue: %w", err)
	}
	signups, err := s.deps.Stats.DailySignups(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("daily signups: %w", err)
	}
	byStatus, err := s.deps.Stats.CountBookingsByStatus(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	byType, err := s.deps.Stats.BookingsByType(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("bookings by type: %w", err)
	}

	avg := 0.0
	if count > 0 {
		avg = round2(revenue / float64(count))
	}
	if daily == nil {
		daily = []domain.RevenuePoint{}
	}
	if signups == nil {
		signups = []domain.CountPoint{}
	}
	if byType == nil {
		byType = map[string]int64{}
	}

	return &domain.Analytics{
		Overview: domain.AnalyticsOverview{
			TotalRevenue:    round2(revenue),
			TotalBookings:   count,
			TotalUsers:      users,
			TotalEnquiries:  enquiries,
			AvgBookingValue: avg,
		},
		Trends: domain.AnalyticsTrends{
			Revenue:    daily,
			UserGrowth: signups,
			BookingStatus: domain.BookingStatusBreakdown{
				Pending:   byStatus[domain.BookingStatusPending],
				Confirmed: byStatus[domain.BookingStatusConfirmed],
				Cancelled: byStatus[domain.BookingStatusCancelled],
			},
			PopularTypes: byType,
		},
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var _ AdminUseCase = (*AdminService)(nil)
