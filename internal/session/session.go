// Package session issues and verifies signed dashboard session tokens.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/festy23/tournament_portal/internal/config"
	"github.com/festy23/tournament_portal/internal/model"
)

const issuer = "tournament-portal"

// ErrInvalidToken is returned for tokens that are malformed, forged or expired.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the token payload.
type Claims struct {
	jwt.RegisteredClaims
	Name               string `json:"name"`
	MustChangePassword bool   `json:"must_change_password"`
}

// Manager signs and verifies tokens with a shared HS256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

// NewManager creates a Manager. A nil clock means the real clock.
func NewManager(cfg config.AuthConfig, clock clockwork.Clock) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Manager{secret: []byte(cfg.Secret), ttl: cfg.TTL, clock: clock}
}

// Issue signs a token for s and returns it with its expiry.
func (m *Manager) Issue(s model.Session) (string, time.Time, error) {
	now := m.clock.Now()
	expires := now.Add(m.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   s.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Name:               s.Name,
		MustChangePassword: s.MustChangePassword,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expires, nil
}

// Parse verifies a token and returns the session it carries.
func (m *Manager) Parse(token string) (model.Session, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return model.Session{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return model.Session{
		Name:               claims.Name,
		Email:              claims.Subject,
		MustChangePassword: claims.MustChangePassword,
	}, nil
}
