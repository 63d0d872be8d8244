package models

import (
	"crypto/subtle"
	"time"
)

type UserRole string

const (
	RoleBuyer   UserRole = "buyer"
	RoleSeller  UserRole = "seller"
	RoleAgent   UserRole = "agent"
	RoleBuilder UserRole = "builder"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether r is one of the known roles
func (r UserRole) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAgent, RoleBuilder, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// PasswordMatches compares the stored password with the candidate.
// Passwords are opaque strings compared by equality.
func (u *User) PasswordMatches(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(u.Password), []byte(candidate)) == 1
}

// UserInput is the registration payload
type UserInput struct {
	Username string   `json:"username" binding:"required,min=3"`
	Password string   `json:"password" binding:"required,min=6"`
	Email    string   `json:"email" binding:"required,email"`
	Name     string   `json:"name" binding:"required"`
	Phone    *string  `json:"phone"`
	Role     UserRole `json:"role" binding:"omitempty,oneof=buyer seller agent builder admin"`
}

// UserUpdate carries the user fields that may change after registration
type UserUpdate struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Phone *string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
