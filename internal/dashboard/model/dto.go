// Package model provides request and response types for the admin dashboard.
package model

import (
	"errors"
	"time"

	"github.com/festy23/tournament_portal/internal/admin"
	"github.com/festy23/tournament_portal/internal/model"
)

// ErrSelfDelete is returned when an admin tries to delete their own account.
var ErrSelfDelete = errors.New("cannot delete the signed-in admin")

// LoginRequest is the body of POST /admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Session   model.Session `json:"session"`
}

// PasswordResponse is returned after a password change. A fresh token is
// issued once the forced-change flag is cleared.
type PasswordResponse struct {
	admin.Outcome
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ImageResponse carries a processed upload, ready for an entity's image field.
type ImageResponse struct {
	DataURI string `json:"data_uri"`
}

// OutcomeError is the body of a write the backend rejected: the usual
// error envelope plus the outcome, so the form can stay open with its
// draft id.
type OutcomeError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Outcome admin.Outcome `json:"outcome"`
}
