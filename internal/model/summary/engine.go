package summary

import (
	"time"

	"max.ks1230/expense-ledger/internal/entity/expense"
)

const weekWindow = 7 * 24 * time.Hour

// Summary is derived from a query result set on every read and never stored.
type Summary struct {
	Week       float64            `json:"week"`
	Month      float64            `json:"month"`
	ByCategory map[string]float64 `json:"byCategory"`
}

type config interface {
	StrictMonthTotal() bool
}

// Engine aggregates a result set. It performs no I/O and cannot fail.
type Engine struct {
	strictMonth bool
}

func NewEngine(cfg config) *Engine {
	return &Engine{strictMonth: cfg.StrictMonthTotal()}
}

// Summarize computes the week, month and per-category totals of records as
// seen at the given instant.
//
// The week total covers a rolling 168-hour window ending at now, not a
// calendar week. The month total matches on month-of-year only, so a record
// from the same month of an earlier year counts too; strict-month-total in
// the config opts into month-and-year matching instead.
func (e *Engine) Summarize(records []expense.Record, now time.Time) Summary {
	res := Summary{ByCategory: make(map[string]float64)}
	for _, rec := range records {
		if now.Sub(rec.Date) < weekWindow {
			res.Week += rec.Amount
		}
		if e.sameMonth(rec.Date, now) {
			res.Month += rec.Amount
		}
		res.ByCategory[rec.Category] += rec.Amount
	}
	return res
}

func (e *Engine) sameMonth(date, now time.Time) bool {
	if date.Month() != now.Month() {
		return false
	}
	return !e.strictMonth || date.Year() == now.Year()
}
