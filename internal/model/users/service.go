package users

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/user"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

const saltLength = 16

type accountStore interface {
	SaveUser(ctx context.Context, rec user.Record) error
	GetUserByLogin(ctx context.Context, login string) (user.Record, error)
}

type tokenIssuer interface {
	Issue(identity string) (string, error)
}

// Service registers accounts and mints tokens at login. The rest of the
// system only ever sees the opaque identity carried inside the token.
type Service struct {
	storage accountStore
	tokens  tokenIssuer
}

func New(storage accountStore, tokens tokenIssuer) *Service {
	return &Service{storage: storage, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, login, password string) (string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return "", customerr.ErrWrongCredentials
	}

	_, err := s.storage.GetUserByLogin(ctx, login)
	if err == nil {
		return "", customerr.ErrLoginAlreadyExists
	}
	if !errors.Is(err, customerr.ErrUserNotFound) {
		return "", errors.Wrap(err, "register")
	}

	salt := make([]byte, saltLength)
	if _, err = rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "register")
	}

	rec := user.Record{
		ID:           uuid.NewString(),
		Login:        login,
		PasswordHash: hashPassword(password, salt),
		Salt:         salt,
	}
	if err = s.storage.SaveUser(ctx, rec); err != nil {
		return "", errors.Wrap(err, "register")
	}

	logger.Info("user registered", zap.String("login", login))
	return rec.ID, nil
}

func (s *Service) Login(ctx context.Context, login, password string) (string, error) {
	rec, err := s.storage.GetUserByLogin(ctx, strings.TrimSpace(login))
	if errors.Is(err, customerr.ErrUserNotFound) {
		return "", customerr.ErrWrongCredentials
	}
	if err != nil {
		return "", errors.Wrap(err, "login")
	}

	if subtle.ConstantTimeCompare(hashPassword(password, rec.Salt), rec.PasswordHash) != 1 {
		return "", customerr.ErrWrongCredentials
	}

	token, err := s.tokens.Issue(rec.ID)
	if err != nil {
		return "", errors.Wrap(err, "login")
	}
	return token, nil
}

func hashPassword(password string, salt []byte) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return h.Sum(nil)
}
