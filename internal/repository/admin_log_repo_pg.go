package repository

import (
	"context"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminLogRepository interface {
	Create(ctx context.Context, entry *domain.AdminLog) error
	List(ctx context.Context, page domain.Page) ([]domain.AdminLog, error)
	Count(ctx context.Context) (int64, error)
}

type PGAdminLogRepository struct {
	db *pgxpool.Pool
}

func NewAdminLogRepository(db *pgxpool.Pool) AdminLogRepository {
	return &PGAdminLogRepository{db: db}
}

func (r *PGAdminLogRepository) Create(ctx context.Context, l *domain.AdminLog) error {
	return r.db.QueryRow(ctx, `INSERT INTO admin_logs (admin_id, action, entity_type, entity_id, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`, l.AdminID, l.Action, l.EntityType, l.EntityID, l.Details).
		Scan(&l.ID, &l.CreatedAt)
}

func (r *PGAdminLogRepository) List(ctx context.Context, page domain.Page) ([]domain.AdminLog, error) {
	rows, err := r.db.Query(ctx, `SELECT id, admin_id, action, entity_type, entity_id, details, created_at
		FROM admin_logs ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]domain.AdminLog, 0)
	for rows.Next() {
		var l domain.AdminLog
		if err := rows.Scan(&l.ID, &l.AdminID, &l.Action, &l.EntityType, &l.EntityID, &l.Details, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *PGAdminLogRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM admin_logs`).Scan(&n)
	return n, err
}

var _ AdminLogRepository = (*PGAdminLogRepository)(nil)
