package airtable

import (
	"fmt"
	"strings"
	"time"
)

// pickupStatuses is the whitelist of procurement statuses that still need
// a pickup scheduled.
var pickupStatuses = []string{
	"Sent PO",
	"PO Confirmed",
	"Ready for Pickup!",
	"Pickup Scheduled",
}

// TwoWeekRange returns the previous calendar week through the current
// calendar week around today, with weeks starting on Sunday. The start is
// always a Sunday, the end the following week's Saturday, 13 days later.
func TwoWeekRange(today time.Time) (start, end time.Time) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	currentSunday := day.AddDate(0, 0, -int(day.Weekday()))
	start = currentSunday.AddDate(0, 0, -7)
	end = start.AddDate(0, 0, 13)
	return start, end
}

// PickupFilterFormula builds the record-store filter expression: the status
// whitelist OR'd together, AND'd with a ready-date range condition.
func PickupFilterFormula(start, end time.Time) string {
	conditions := make([]string, 0, len(pickupStatuses))
	for _, status := range pickupStatuses {
		conditions = append(conditions, fmt.Sprintf("{Status}='%s'", status))
	}
	statusFormula := fmt.Sprintf("OR(%s)", strings.Join(conditions, ","))

	dateFormula := fmt.Sprintf(
		"AND(IS_AFTER({Vendor Ready-Date}, '%s'), IS_BEFORE({Vendor Ready-Date}, DATEADD('%s', 1, 'days')))",
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)

	return fmt.Sprintf("AND(%s, %s)", statusFormula, dateFormula)
}
