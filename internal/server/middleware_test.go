package server

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/model/auth"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/ledger"
	"max.ks1230/expense-ledger/internal/model/storage"
	"max.ks1230/expense-ledger/internal/model/summary"
	"max.ks1230/expense-ledger/internal/model/users"
	"max.ks1230/expense-ledger/internal/server/mock"
)

func newMockedServer(verifier tokenVerifier) *Server {
	gin.SetMode(gin.TestMode)
	store := storage.NewInMemStorage()
	issuer := auth.New(authConfig{secret: "test-secret", ttl: 60})
	return New(
		serverConfig{},
		verifier,
		ledger.New(store),
		users.New(store, issuer),
		summary.NewEngine(appConfig{}),
		nil,
	)
}

func Test_OnVerifiedToken_ShouldResolveIdentityThroughGateway(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	verifier := mock.NewTokenVerifierMock(m)
	verifier.VerifyMock.
		Expect("token-abc").
		Return("user-1", nil)

	srv := newMockedServer(verifier)

	w := doRequest(srv, http.MethodGet, "/expenses", "token-abc", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_OnRejectedToken_ShouldNeverInvokeLedger(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	verifier := mock.NewTokenVerifierMock(m)
	verifier.VerifyMock.
		Expect("token-abc").
		Return("", customerr.ErrInvalidCredential)

	srv := newMockedServer(verifier)

	w := doRequest(srv, http.MethodPost, "/expenses", "token-abc", gin.H{
		"title": "x", "amount": 1, "category": "Food", "date": "2024-05-01",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"forbidden"}`, w.Body.String())
}

func Test_OnUnauthenticatedRoutes_ShouldNotTouchVerifier(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	verifier := mock.NewTokenVerifierMock(m)
	srv := newMockedServer(verifier)

	w := doRequest(srv, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, verifier.VerifyAfterCounter())
}

type fakeSummaryCache struct {
	entries     map[string]string
	gets        int
	sets        int
	invalidates int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: make(map[string]string)}
}

func (c *fakeSummaryCache) CacheSummary(owner string, payload string) error {
	c.sets++
	c.entries[owner] = payload
	return nil
}

func (c *fakeSummaryCache) GetSummary(owner string) (string, error) {
	c.gets++
	payload, ok := c.entries[owner]
	if !ok {
		return "", assert.AnError
	}
	return payload, nil
}

func (c *fakeSummaryCache) InvalidateSummary(owner string) error {
	c.invalidates++
	delete(c.entries, owner)
	return nil
}

func Test_OnCachedSummary_ShouldRecomputeTimeAnchoredTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := auth.New(authConfig{secret: "test-secret", ttl: 60})
	store := storage.NewInMemStorage()
	cache := newFakeSummaryCache()
	cache.entries["user-a"] = `{"Food":100}`
	srv := New(
		serverConfig{},
		verifier,
		ledger.New(store),
		users.New(store, verifier),
		summary.NewEngine(appConfig{}),
		cache,
	)

	token, err := verifier.Issue("user-a")
	require.NoError(t, err)

	// the ledger is empty, so the week and month totals are zero no matter
	// what the cache holds; only the category totals come from it
	res := listExpenses(t, srv, token, "")
	assert.Zero(t, res.Summary.Week)
	assert.Zero(t, res.Summary.Month)
	assert.Equal(t, map[string]float64{"Food": 100}, res.Summary.ByCategory)

	today := time.Now().Format(dateLayout)
	createExpense(t, srv, token, "coffee", 3.5, "Food", today)

	refreshed := listExpenses(t, srv, token, "")
	assert.InDelta(t, 3.5, refreshed.Summary.Week, 1e-9)
	assert.InDelta(t, 3.5, refreshed.Summary.Month, 1e-9)
	assert.Equal(t, map[string]float64{"Food": 3.5}, refreshed.Summary.ByCategory)
}

func Test_OnUnfilteredList_ShouldServeSummaryFromCacheUntilInvalidated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := auth.New(authConfig{secret: "test-secret", ttl: 60})
	store := storage.NewInMemStorage()
	cache := newFakeSummaryCache()
	srv := New(
		serverConfig{},
		verifier,
		ledger.New(store),
		users.New(store, verifier),
		summary.NewEngine(appConfig{}),
		cache,
	)

	token, err := verifier.Issue("user-a")
	require.NoError(t, err)

	createExpense(t, srv, token, "groceries", 100, "Food", "2024-05-01")
	assert.Equal(t, 1, cache.invalidates)

	first := listExpenses(t, srv, token, "")
	assert.Equal(t, 1, cache.sets)

	second := listExpenses(t, srv, token, "")
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first.Summary, second.Summary)

	// filtered queries bypass the cache
	gets := cache.gets
	listExpenses(t, srv, token, "?category=Food")
	assert.Equal(t, gets, cache.gets)

	rec := createExpense(t, srv, token, "bus pass", 30, "Transport", "2024-05-02")
	assert.Empty(t, cache.entries)

	w := doRequest(srv, http.MethodDelete, "/expenses/"+strconv.FormatInt(rec.ID, 10), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 3, cache.invalidates)
}
