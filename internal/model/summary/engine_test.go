package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

type testConfig struct {
	strict bool
}

func (c testConfig) StrictMonthTotal() bool { return c.strict }

func Test_OnEmptyRecordSet_ShouldReturnZeroSummary(t *testing.T) {
	engine := NewEngine(testConfig{})

	res := engine.Summarize(nil, time.Now())

	assert.Zero(t, res.Week)
	assert.Zero(t, res.Month)
	assert.Empty(t, res.ByCategory)
	assert.NotNil(t, res.ByCategory)
}

func Test_OnMixedRecords_ShouldSplitWeekAndMonthTotals(t *testing.T) {
	engine := NewEngine(testConfig{})
	now := time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)

	records := []expense.Record{
		{Amount: 100, Category: "Food", Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: 50, Category: "Food", Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: 30, Category: "Transport", Date: now},
	}

	res := engine.Summarize(records, now)

	assert.Equal(t, 30.0, res.Week)
	assert.Equal(t, 80.0, res.Month)
	assert.Equal(t, map[string]float64{"Food": 150, "Transport": 30}, res.ByCategory)
}

func Test_OnWeekWindow_ShouldBeRollingNotCalendarAligned(t *testing.T) {
	engine := NewEngine(testConfig{})
	now := time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)

	records := []expense.Record{
		{Amount: 1, Category: "A", Date: now.Add(-weekWindow + time.Hour)},
		{Amount: 2, Category: "A", Date: now.Add(-weekWindow)},
		{Amount: 4, Category: "A", Date: now.Add(time.Hour)},
	}

	res := engine.Summarize(records, now)

	// exactly 168h ago falls outside; a future-dated record falls inside
	assert.Equal(t, 5.0, res.Week)
}

func Test_OnMonthTotal_ShouldIgnoreYearByDefault(t *testing.T) {
	engine := NewEngine(testConfig{})
	now := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	records := []expense.Record{
		{Amount: 10, Category: "A", Date: time.Date(2019, time.May, 3, 0, 0, 0, 0, time.UTC)},
		{Amount: 20, Category: "A", Date: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)},
		{Amount: 40, Category: "A", Date: time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)},
	}

	res := engine.Summarize(records, now)

	assert.Equal(t, 30.0, res.Month)
}

func Test_OnStrictMonthTotal_ShouldRequireSameYear(t *testing.T) {
	engine := NewEngine(testConfig{strict: true})
	now := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	records := []expense.Record{
		{Amount: 10, Category: "A", Date: time.Date(2019, time.May, 3, 0, 0, 0, 0, time.UTC)},
		{Amount: 20, Category: "A", Date: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)},
	}

	res := engine.Summarize(records, now)

	assert.Equal(t, 20.0, res.Month)
}

func Test_OnZeroValuedRecord_ShouldAggregateWithoutFailing(t *testing.T) {
	engine := NewEngine(testConfig{})
	now := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	records := []expense.Record{
		{Amount: 0, Category: "", Date: now},
		{Amount: 15, Category: "Food", Date: now},
	}

	res := engine.Summarize(records, now)

	assert.Equal(t, 15.0, res.Week)
	assert.Equal(t, map[string]float64{"": 0, "Food": 15}, res.ByCategory)
}
