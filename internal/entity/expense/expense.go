package expense

import (
	"time"

	"github.com/jinzhu/now"
)

// Record is a single spending event. Owner is set from the verified caller on
// creation and never changes afterwards.
type Record struct {
	ID       int64
	Owner    string
	Title    string
	Amount   float64
	Category string
	Date     time.Time
}

// Filter narrows a ledger query. Category matches exactly; From and To form an
// inclusive calendar-date range and are either both set or both zero.
type Filter struct {
	Category string
	From     time.Time
	To       time.Time
}

func (f Filter) HasRange() bool {
	return !f.From.IsZero() && !f.To.IsZero()
}

func (f Filter) IsEmpty() bool {
	return f.Category == "" && !f.HasRange()
}

// LowerBound is the first instant inside the date range.
func (f Filter) LowerBound() time.Time {
	return now.New(f.From).BeginningOfDay()
}

// UpperBound is the last instant inside the date range, so a date-only To
// still includes records from any time of that day.
func (f Filter) UpperBound() time.Time {
	return now.New(f.To).EndOfDay()
}

func (f Filter) Matches(rec Record) bool {
	if f.Category != "" && rec.Category != f.Category {
		return false
	}
	if f.HasRange() && (rec.Date.Before(f.LowerBound()) || rec.Date.After(f.UpperBound())) {
		return false
	}
	return true
}
