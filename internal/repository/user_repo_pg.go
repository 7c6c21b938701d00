package repository

import (
	"context"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, page domain.Page) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
	SetAdmin(ctx context.Context, id int64, isAdmin bool) (*domain.User, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

const userColumns = `id, username, password, email, is_admin, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PGUserRepository) Create(ctx context.Context, u *domain.User) error {
	err := r.db.QueryRow(ctx, `INSERT INTO users (username, password, email, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`, u.Username, u.PasswordHash, u.Email, u.IsAdmin).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return mapErr("user", err)
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
	if err != nil {
		return nil, mapErr("user", err)
	}
	return u, nil
}

func (r *PGUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username=$1`, username))
	if err != nil {
		return nil, mapErr("user", err)
	}
	return u, nil
}

func (r *PGUserRepository) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *PGUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}

func (r *PGUserRepository) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM users WHERE is_admin`).Scan(&n)
	return n, err
}

func (r *PGUserRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `UPDATE users SET is_admin=$1, updated_at=now() WHERE id=$2 RETURNING `+userColumns, isAdmin, id))
	if err != nil {
		return nil, mapErr("user", err)
	}
	return u, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
