package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/entity/user"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

const uniqueViolationCode = pq.ErrorCode("23505")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) SaveExpense(ctx context.Context, owner string, rec expense.Record) (int64, error) {
	query := psql.Insert("expenses").
		Columns("user_id", "title", "amount", "category", "spent_at").
		Values(owner, rec.Title, rec.Amount, rec.Category, rec.Date).
		Suffix("RETURNING id")

	var id int64
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&id)
	if err != nil {
		return 0, &customerr.StorageError{Op: "save expense", Err: err}
	}
	return id, nil
}

func (s *PostgresStorage) GetExpenses(ctx context.Context, owner string, filter expense.Filter) ([]expense.Record, error) {
	query := psql.Select("id", "title", "amount", "category", "spent_at").
		From("expenses").
		Where(sq.Eq{"user_id": owner})

	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": filter.Category})
	}
	if filter.HasRange() {
		query = query.
			Where(sq.GtOrEq{"spent_at": filter.LowerBound()}).
			Where(sq.LtOrEq{"spent_at": filter.UpperBound()})
	}
	// fixed order keeps query results reproducible for a given store state
	query = query.OrderBy("id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, &customerr.StorageError{Op: "get expenses", Err: err}
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	exps := make([]expense.Record, 0)
	for rows.Next() {
		rec := expense.Record{Owner: owner}
		err = rows.Scan(&rec.ID, &rec.Title, &rec.Amount, &rec.Category, &rec.Date)
		if err != nil {
			return nil, &customerr.StorageError{Op: "get expenses", Err: err}
		}
		exps = append(exps, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, &customerr.StorageError{Op: "get expenses", Err: err}
	}

	return exps, nil
}

func (s *PostgresStorage) DeleteExpense(ctx context.Context, owner string, id int64) error {
	query := psql.Delete("expenses").
		Where(sq.Eq{"id": id, "user_id": owner})

	// zero affected rows is fine: delete of a missing or foreign record is a no-op
	_, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return &customerr.StorageError{Op: "delete expense", Err: err}
	}
	return nil
}

func (s *PostgresStorage) SaveUser(ctx context.Context, rec user.Record) error {
	query := psql.Insert("users").
		Columns("id", "login", "password_hash", "salt").
		Values(rec.ID, rec.Login, rec.PasswordHash, rec.Salt)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		// two registrations raced past the login lookup; the unique
		// index on login is what actually decides the winner
		return customerr.ErrLoginAlreadyExists
	}
	if err != nil {
		return &customerr.StorageError{Op: "save user", Err: err}
	}
	return nil
}

func (s *PostgresStorage) GetUserByLogin(ctx context.Context, login string) (user.Record, error) {
	query := psql.Select("id", "login", "password_hash", "salt").
		From("users").
		Where(sq.Eq{"login": login})

	var rec user.Record
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&rec.ID, &rec.Login, &rec.PasswordHash, &rec.Salt)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Record{}, customerr.ErrUserNotFound
	}
	if err != nil {
		return user.Record{}, &customerr.StorageError{Op: "get user", Err: err}
	}
	return rec, nil
}
