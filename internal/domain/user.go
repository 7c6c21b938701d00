package domain

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
