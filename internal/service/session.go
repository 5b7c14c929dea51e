package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/a6w/mapmo/internal/errs"
)

// SessionService issues and verifies the HS256 tokens that bind an owner
// session. The token subject is the owner id every repository call is
// scoped to.
type SessionService struct {
	signKey   []byte
	accessTTL time.Duration
}

// NewSessionService constructs SessionService with the signing key and token TTL.
func NewSessionService(signKey []byte, accessTTL time.Duration) *SessionService {
	return &SessionService{signKey: signKey, accessTTL: accessTTL}
}

// IssueToken creates a signed token for the given owner id.
func (s *SessionService) IssueToken(ownerID string) (string, time.Time, error) {
	if ownerID == "" {
		return "", time.Time{}, errors.New("validation: empty ownerID")
	}
	now := time.Now()
	exp := now.Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   ownerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}

// ParseToken verifies a token and returns the owner id it was issued for.
// Any verification failure maps to errs.ErrUnauthorized.
func (s *SessionService) ParseToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return "", errs.ErrUnauthorized
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errs.ErrUnauthorized
	}
	return claims.Subject, nil
}
