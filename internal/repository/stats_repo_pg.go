package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository runs the aggregate queries behind the admin dashboard.
// Counts taking since only include rows created at or after it; the zero
// time counts everything.
type StatsRepository interface {
	CountBookingsByStatus(ctx context.Context, since time.Time) (map[domain.BookingStatus]int64, error)
	CountEnquiriesByStatus(ctx context.Context, status domain.EnquiryStatus) (int64, error)
	CountUsers(ctx context.Context, since time.Time) (int64, error)
	CountEnquiries(ctx context.Context, since time.Time) (int64, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (float64, int64, error)
	DailyRevenue(ctx context.Context, since time.Time) ([]domain.RevenuePoint, error)
	DailySignups(ctx context.Context, since time.Time) ([]domain.CountPoint, error)
	BookingsByType(ctx context.Context, since time.Time) (map[string]int64, error)
}

type PGStatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) StatsRepository {
	return &PGStatsRepository{db: db}
}

// Prices are stored as text; rows whose price does not parse as a number are ignored.
const numericPrice = `CASE WHEN total_price ~ '^[0-9]+(\.[0-9]+)?$' THEN total_price::numeric ELSE 0 END`

func (r *PGStatsRepository) CountBookingsByStatus(ctx context.Context, since time.Time) (map[domain.BookingStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, count(*) FROM bookings WHERE created_at >= $1 GROUP BY status`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int64)
	for rows.Next() {
		var status domain.BookingStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *PGStatsRepository) CountEnquiriesByStatus(ctx context.Context, status domain.EnquiryStatus) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM enquiries WHERE status=$1`, status).Scan(&n)
	return n, err
}

func (r *PGStatsRepository) CountUsers(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM users WHERE created_at >= $1`, since).Scan(&n)
	return n, err
}

func (r *PGStatsRepository) CountEnquiries(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM enquiries WHERE created_at >= $1`, since).Scan(&n)
	return n, err
}

// RevenueBetween sums booking prices created in [from, to) and returns the sum and the booking count.
func (r *PGStatsRepository) RevenueBetween(ctx context.Context, from, to time.Time) (float64, int64, error) {
	var sum float64
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(`+numericPrice+`), 0)::float8, count(*)
		FROM bookings WHERE created_at >= $1 AND created_at < $2`, from, to).Scan(&sum, &n)
	return sum, n, err
}

func (r *PGStatsRepository) DailyRevenue(ctx context.Context, since time.Time) ([]domain.RevenuePoint, error) {
	rows, err := r.db.Query(ctx, `SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS day,
			COALESCE(SUM(`+numericPrice+`), 0)::float8
		FROM bookings WHERE created_at >= $1
		GROUP BY day ORDER BY day`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]domain.RevenuePoint, 0)
	for rows.Next() {
		var p domain.RevenuePoint
		if err := rows.Scan(&p.Date, &p.Revenue); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *PGStatsRepository) DailySignups(ctx context.Context, since time.Time) ([]domain.CountPoint, error) {
	rows, err := r.db.Query(ctx, `SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS day, count(*)
		FROM users WHERE created_at >= $1
		GROUP BY day ORDER BY day`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]domain.CountPoint, 0)
	for rows.Next() {
		var p domain.CountPoint
		if err := rows.Scan(&p.Date, &p.Count); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *PGStatsRepository) BookingsByType(ctx context.Context, since time.Time) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT type, count(*) FROM bookings WHERE created_at >= $1 GROUP BY type`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var t string
		var n int64
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[t] = n
	}
	return counts, rows.Err()
}

var _ StatsRepository = (*PGStatsRepository)(nil)
