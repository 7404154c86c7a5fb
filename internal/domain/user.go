package domain

import "time"

// User represents an authenticated account. Users are created once at
// registration and never updated or deleted.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
