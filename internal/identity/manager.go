// Package identity is the single authority for password hashing and
// session-token issuance/verification. Everything else that needs to know
// "who is calling" goes through here.
package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/irohit373/AlignTODO/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// Identity is the decoded result of a verified session token.
type Identity struct {
	UserID string
	Email  string
}

// Manager holds the immutable signing secret and hashing parameters,
// loaded once at process start.
type Manager struct {
	secret        []byte
	tokenTTL      time.Duration
	bcryptCost    int
	secureCookies bool
}

func NewManager(secret []byte, bcryptCost int, secureCookies bool) (*Manager, error) {
	if len(secret) == 0 {
		return nil, errors.New("signing secret is empty")
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Manager{
		secret:        secret,
		tokenTTL:      defaultTokenTTL,
		bcryptCost:    bcryptCost,
		secureCookies: secureCookies,
	}, nil
}

// HashPassword runs the plaintext through bcrypt with the configured cost.
// bcrypt salts internally, so two calls with the same input differ.
func (m *Manager) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
// A malformed hash is just a mismatch, never an error.
func (m *Manager) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs a session token asserting the given account identity,
// valid for 7 days from now.
func (m *Manager) IssueToken(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry and returns the embedded
// identity. Every failure mode collapses to domain.ErrTokenInvalid:
// callers must not learn whether the token was expired, forged, or
// malformed, because the remediation (re-authenticate) is the same.
func (m *Manager) VerifyToken(raw string) (*Identity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, domain.ErrTokenInvalid
	}
	email, _ := claims["email"].(string)

	return &Identity{UserID: userID, Email: email}, nil
}
