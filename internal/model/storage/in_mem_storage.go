package storage

import (
	"context"
	"sync"

	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/entity/user"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

// InMemStorage keeps records per owner in insertion order. It backs tests and
// the no-postgres dev mode.
type InMemStorage struct {
	mu       sync.RWMutex
	nextID   int64
	expenses map[string][]expense.Record
	users    map[string]user.Record
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		expenses: make(map[string][]expense.Record),
		users:    make(map[string]user.Record),
	}
}

func (s *InMemStorage) SaveExpense(_ context.Context, owner string, rec expense.Record) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	rec.ID = s.nextID
	rec.Owner = owner
	s.expenses[owner] = append(s.expenses[owner], rec)
	return rec.ID, nil
}

func (s *InMemStorage) GetExpenses(_ context.Context, owner string, filter expense.Filter) ([]expense.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]expense.Record, 0)
	for _, rec := range s.expenses[owner] {
		if filter.Matches(rec) {
			res = append(res, rec)
		}
	}
	return res, nil
}

func (s *InMemStorage) DeleteExpense(_ context.Context, owner string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.expenses[owner]
	for i, rec := range recs {
		if rec.ID == id {
			s.expenses[owner] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *InMemStorage) SaveUser(_ context.Context, rec user.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// same contract as the unique index on users.login
	if _, ok := s.users[rec.Login]; ok {
		return customerr.ErrLoginAlreadyExists
	}
	s.users[rec.Login] = rec
	return nil
}

func (s *InMemStorage) GetUserByLogin(_ context.Context, login string) (user.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[login]
	if !ok {
		return user.Record{}, customerr.ErrUserNotFound
	}
	return rec, nil
}
