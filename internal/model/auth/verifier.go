package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

type claims struct {
	jwt.RegisteredClaims
	UserID string
}

type config interface {
	Secret() string
	TTLMinutes() int64
}

// Service issues and verifies bearer tokens. Verification is a pure check
// against the process secret; no revocation list is kept.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func New(cfg config) *Service {
	return &Service{
		secret: []byte(cfg.Secret()),
		ttl:    time.Duration(cfg.TTLMinutes()) * time.Minute,
	}
}

func (s *Service) Issue(identity string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: identity,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "issue token")
	}
	return signed, nil
}

// Verify returns the identity embedded in the token. Expired tokens are
// distinguished from malformed or tampered ones internally only; the boundary
// maps both to the same rejection.
func (s *Service) Verify(token string) (string, error) {
	if token == "" {
		return "", customerr.ErrMissingCredential
	}

	parsed := &claims{}
	tok, err := jwt.ParseWithClaims(token, parsed, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", customerr.ErrExpiredCredential
		}
		return "", customerr.ErrInvalidCredential
	}
	if !tok.Valid || parsed.UserID == "" {
		return "", customerr.ErrInvalidCredential
	}

	return parsed.UserID, nil
}
