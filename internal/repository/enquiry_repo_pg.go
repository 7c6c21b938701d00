package repository

import (
	"context"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) error
	List(ctx context.Context, page domain.Page) ([]domain.Enquiry, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus) (*domain.Enquiry, error)
}

type PGEnquiryRepository struct {
	db *pgxpool.Pool
}

func NewEnquiryRepository(db *pgxpool.Pool) EnquiryRepository {
	return &PGEnquiryRepository{db: db}
}

const enquiryColumns = `id, name, email, message, status, created_at, updated_at`

func scanEnquiry(row pgx.Row) (*domain.Enquiry, error) {
	var e domain.Enquiry
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Message, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PGEnquiryRepository) Create(ctx context.Context, e *domain.Enquiry) error {
	return r.db.QueryRow(ctx, `INSERT INTO enquiries (name, email, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`, e.Name, e.Email, e.Message, e.Status).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *PGEnquiryRepository) List(ctx context.Context, page domain.Page) ([]domain.Enquiry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+enquiryColumns+` FROM enquiries ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enquiries := make([]domain.Enquiry, 0)
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, *e)
	}
	return enquiries, rows.Err()
}

func (r *PGEnquiryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM enquiries`).Scan(&n)
	return n, err
}

func (r *PGEnquiryRepository) UpdateStatus(ctx context.Context, id int64, status domain.EnquiryStatus) (*domain.Enquiry, error) {
	e, err := scanEnquiry(r.db.QueryRow(ctx, `UPDATE enquiries SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+enquiryColumns, status, id))
	if err != nil {
		return nil, mapErr("enquiry", err)
	}
	return e, nil
}

var _ EnquiryRepository = (*PGEnquiryRepository)(nil)
