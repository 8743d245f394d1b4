package domain

import (
	"context"
	"errors"
	"time"
)

// User roles
const (
	RoleApplicant = "applicant"
	RoleAdmin     = "admin"
)

var ErrDuplicateEmail = errors.New("user with this email already exists")

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	// Register creates an account and returns it with a signed token.
	// The account becomes an admin only when adminSecret matches the
	// configured signup secret.
	Register(ctx context.Context, name, email, password, adminSecret string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
