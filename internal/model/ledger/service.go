package ledger

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
)

type recordStore interface {
	SaveExpense(ctx context.Context, owner string, rec expense.Record) (int64, error)
	GetExpenses(ctx context.Context, owner string, filter expense.Filter) ([]expense.Record, error)
	DeleteExpense(ctx context.Context, owner string, id int64) error
}

// Service is the only write/read path to the ledger. Every operation takes
// the verified caller identity; ownership is decided here, never by callers
// or store backends.
type Service struct {
	storage recordStore
}

func New(storage recordStore) *Service {
	return &Service{storage: storage}
}

func (s *Service) Create(ctx context.Context, owner, title string, amount float64, category string, date time.Time) (expense.Record, error) {
	rec := expense.Record{
		Owner:    owner,
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
	}

	id, err := s.storage.SaveExpense(ctx, owner, rec)
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "create expense")
	}
	rec.ID = id

	logger.Info("expense created", zap.String("owner", owner), zap.Int64("id", id))
	return rec, nil
}

func (s *Service) Query(ctx context.Context, owner string, filter expense.Filter) ([]expense.Record, error) {
	recs, err := s.storage.GetExpenses(ctx, owner, filter)
	if err != nil {
		return nil, errors.Wrap(err, "query expenses")
	}
	return recs, nil
}

// Delete removes the record only when it belongs to owner. A missing or
// foreign id is a silent no-op so callers cannot probe other ledgers.
func (s *Service) Delete(ctx context.Context, owner string, id int64) error {
	err := s.storage.DeleteExpense(ctx, owner, id)
	if err != nil {
		return errors.Wrap(err, "delete expense")
	}
	return nil
}
