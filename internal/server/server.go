package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/model/summary"
)

type config interface {
	Port() int
}

type tokenVerifier interface {
	Verify(token string) (string, error)
}

type ledgerService interface {
	Create(ctx context.Context, owner, title string, amount float64, category string, date time.Time) (expense.Record, error)
	Query(ctx context.Context, owner string, filter expense.Filter) ([]expense.Record, error)
	Delete(ctx context.Context, owner string, id int64) error
}

type userService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

type summarizer interface {
	Summarize(records []expense.Record, now time.Time) summary.Summary
}

// SummaryCache caches the per-owner category totals of the unfiltered query.
// A nil cache disables caching; a failing one degrades to recomputing.
type SummaryCache interface {
	CacheSummary(owner string, payload string) error
	GetSummary(owner string) (string, error)
	InvalidateSummary(owner string) error
}

type Server struct {
	router *gin.Engine
	port   int

	verifier tokenVerifier
	ledger   ledgerService
	users    userService
	engine   summarizer
	cache    SummaryCache
}

func New(cfg config, verifier tokenVerifier, ledger ledgerService, users userService, engine summarizer, cache SummaryCache) *Server {
	s := &Server{
		port:     cfg.Port(),
		verifier: verifier,
		ledger:   ledger,
		users:    users,
		engine:   engine,
		cache:    cache,
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.observe, s.trace)

	router.GET("/", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/auth/register", s.handleRegister)
	router.POST("/auth/login", s.handleLogin)

	// every ledger route goes through the gateway; none may be registered
	// outside this group
	ledgerRoutes := router.Group("/expenses", s.authenticate)
	ledgerRoutes.POST("", s.handleCreateExpense)
	ledgerRoutes.GET("", s.handleListExpenses)
	ledgerRoutes.DELETE("/:id", s.handleDeleteExpense)

	s.router = router
	return s
}

func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%d", s.port))
}

// Router exposes the handler tree for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
