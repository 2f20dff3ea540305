package auth

import "time"

// User is a domain entity representing an account holder.
// PasswordHash never leaves the backend: presenters must not serialize it.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
