package airtable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTwoWeekRangeMidWeek(t *testing.T) {
	// Wednesday
	today := time.Date(2025, 8, 13, 15, 30, 0, 0, time.UTC)
	start, end := TwoWeekRange(today)

	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Saturday, end.Weekday())
	assert.Equal(t, 13, int(end.Sub(start).Hours()/24))
	assert.Equal(t, "2025-08-03", start.Format("2006-01-02"))
	assert.Equal(t, "2025-08-16", end.Format("2006-01-02"))
}

func TestTwoWeekRangeOnSunday(t *testing.T) {
	today := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
	start, end := TwoWeekRange(today)

	assert.Equal(t, "2025-08-03", start.Format("2006-01-02"))
	assert.Equal(t, "2025-08-16", end.Format("2006-01-02"))
}

func TestTwoWeekRangeOnSaturday(t *testing.T) {
	today := time.Date(2025, 8, 16, 23, 59, 0, 0, time.UTC)
	start, end := TwoWeekRange(today)

	assert.Equal(t, "2025-08-03", start.Format("2006-01-02"))
	assert.Equal(t, "2025-08-16", end.Format("2006-01-02"))
}

func TestPickupFilterFormula(t *testing.T) {
	start := time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)

	got := PickupFilterFormula(start, end)
	want := "AND(" +
		"OR({Status}='Sent PO',{Status}='PO Confirmed',{Status}='Ready for Pickup!',{Status}='Pickup Scheduled'), " +
		"AND(IS_AFTER({Vendor Ready-Date}, '2025-08-03'), IS_BEFORE({Vendor Ready-Date}, DATEADD('2025-08-16', 1, 'days')))" +
		")"
	assert.Equal(t, want, got)
}
