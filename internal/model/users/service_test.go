package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/user"
	"max.ks1230/expense-ledger/internal/model/auth"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/storage"
)

type authConfig struct{}

func (authConfig) Secret() string    { return "test-secret" }
func (authConfig) TTLMinutes() int64 { return 60 }

func newTestService() (*Service, *auth.Service) {
	verifier := auth.New(authConfig{})
	return New(storage.NewInMemStorage(), verifier), verifier
}

func Test_OnRegisterAndLogin_ShouldIssueTokenForSameIdentity(t *testing.T) {
	ctx := context.Background()
	service, verifier := newTestService()

	id, err := service.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	token, err := service.Login(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	identity, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, identity)
}

func Test_OnDuplicateLogin_ShouldFailRegistration(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	_, err := service.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	_, err = service.Register(ctx, "alice", "another-pass")
	assert.ErrorIs(t, err, customerr.ErrLoginAlreadyExists)
}

// racingStore loses the login lookup race: the account does not exist at
// lookup time but the insert hits an already-taken login.
type racingStore struct {
	*storage.InMemStorage
}

func (racingStore) SaveUser(_ context.Context, _ user.Record) error {
	return customerr.ErrLoginAlreadyExists
}

func Test_OnRacedRegistration_ShouldSurfaceConflictFromStore(t *testing.T) {
	ctx := context.Background()
	service := New(racingStore{storage.NewInMemStorage()}, auth.New(authConfig{}))

	_, err := service.Register(ctx, "alice", "s3cret-pass")
	assert.ErrorIs(t, err, customerr.ErrLoginAlreadyExists)
}

func Test_OnWrongPassword_ShouldFailLogin(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	_, err := service.Register(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)

	_, err = service.Login(ctx, "alice", "wrong-pass")
	assert.ErrorIs(t, err, customerr.ErrWrongCredentials)
}

func Test_OnUnknownLogin_ShouldFailLogin(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	_, err := service.Login(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, customerr.ErrWrongCredentials)
}

func Test_OnBlankLogin_ShouldFailRegistration(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	_, err := service.Register(ctx, "   ", "s3cret-pass")
	assert.ErrorIs(t, err, customerr.ErrWrongCredentials)
}
