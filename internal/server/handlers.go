package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/customerr"
	"max.ks1230/expense-ledger/internal/model/summary"
)

const dateLayout = "2006-01-02"

type credentialsRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createExpenseRequest struct {
	Title    string   `json:"title" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Date     string   `json:"date" binding:"required"`
}

type expenseResponse struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

type listExpensesResponse struct {
	Expenses []expenseResponse `json:"expenses"`
	Summary  summary.Summary   `json:"summary"`
}

func toExpenseResponse(rec expense.Record) expenseResponse {
	return expenseResponse{
		ID:       rec.ID,
		Title:    rec.Title,
		Amount:   rec.Amount,
		Category: rec.Category,
		Date:     rec.Date.Format(dateLayout),
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "expense ledger is running")
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "login and password are required"})
		return
	}

	id, err := s.users.Register(c.Request.Context(), req.Login, req.Password)
	switch {
	case errors.Is(err, customerr.ErrLoginAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "login already taken"})
	case errors.Is(err, customerr.ErrWrongCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "login and password are required"})
	case err != nil:
		s.respondInternal(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "login and password are required"})
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Login, req.Password)
	switch {
	case errors.Is(err, customerr.ErrWrongCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong login or password"})
	case err != nil:
		s.respondInternal(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func (s *Server) handleCreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, amount, category and date are required"})
		return
	}
	if *req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as " + dateLayout})
		return
	}

	owner := identityFromContext(c)
	rec, err := s.ledger.Create(c.Request.Context(), owner, req.Title, *req.Amount, req.Category, date)
	if err != nil {
		s.respondInternal(c, err)
		return
	}

	s.invalidateSummary(owner)
	c.JSON(http.StatusCreated, toExpenseResponse(rec))
}

func (s *Server) handleListExpenses(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	owner := identityFromContext(c)
	records, err := s.ledger.Query(c.Request.Context(), owner, filter)
	if err != nil {
		s.respondInternal(c, err)
		return
	}

	resp := listExpensesResponse{
		Expenses: make([]expenseResponse, 0, len(records)),
		Summary:  s.summaryFor(owner, records, filter.IsEmpty()),
	}
	for _, rec := range records {
		resp.Expenses = append(resp.Expenses, toExpenseResponse(rec))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDeleteExpense(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	owner := identityFromContext(c)
	if err = s.ledger.Delete(c.Request.Context(), owner, id); err != nil {
		s.respondInternal(c, err)
		return
	}

	s.invalidateSummary(owner)
	c.Status(http.StatusNoContent)
}

func parseFilter(c *gin.Context) (expense.Filter, bool) {
	filter := expense.Filter{Category: c.Query("category")}

	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	if (startDate == "") != (endDate == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate must be provided together"})
		return expense.Filter{}, false
	}
	if startDate == "" {
		return filter, true
	}

	var err error
	if filter.From, err = time.Parse(dateLayout, startDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be formatted as " + dateLayout})
		return expense.Filter{}, false
	}
	if filter.To, err = time.Parse(dateLayout, endDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be formatted as " + dateLayout})
		return expense.Filter{}, false
	}
	return filter, true
}

// summaryFor computes the aggregate for the result set. Week and month are
// anchored at query time and recomputed on every read; only the per-category
// totals, which change on writes alone, are served from memcached for the
// unfiltered query. Create and Delete invalidate the cached map, and cache
// trouble falls back to recomputing.
func (s *Server) summaryFor(owner string, records []expense.Record, cacheable bool) summary.Summary {
	res := s.engine.Summarize(records, time.Now())
	if !cacheable || s.cache == nil {
		return res
	}

	if payload, err := s.cache.GetSummary(owner); err == nil {
		var cached map[string]float64
		if err = json.Unmarshal([]byte(payload), &cached); err == nil {
			res.ByCategory = cached
			return res
		}
	}

	payload, err := json.Marshal(res.ByCategory)
	if err == nil {
		err = s.cache.CacheSummary(owner, string(payload))
	}
	if err != nil {
		logger.Warn("failed to cache summary", zap.String("owner", owner), zap.Error(err))
	}
	return res
}

func (s *Server) invalidateSummary(owner string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSummary(owner); err != nil {
		logger.Warn("failed to invalidate summary cache", zap.String("owner", owner), zap.Error(err))
	}
}

func (s *Server) respondInternal(c *gin.Context, err error) {
	var storageErr *customerr.StorageError
	if errors.As(err, &storageErr) {
		logger.Error("storage unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
		return
	}
	logger.Error("request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
