package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Company      string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Registration struct {
	Name     string `validate:"required,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// ProfilePatch carries a partial profile update. Empty strings keep the stored value.
type ProfilePatch struct {
	Name    string `validate:"omitempty,max=50"`
	Email   string `validate:"omitempty,email"`
	Phone   string `validate:"omitempty,max=20"`
	Company string `validate:"omitempty,max=100"`
	Address string `validate:"omitempty,max=200"`
}

type PasswordChange struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=6"`
}

// Session is the result of a successful register or login.
type Session struct {
	User  User
	Token string
}
