package model

import "github.com/google/uuid"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

// AuthUser is the identity resolved from a verified token. It is attached to
// the request context by the auth middleware and never re-fetched from
// storage there.
type AuthUser struct {
	ID    uuid.UUID
	Email string
}
