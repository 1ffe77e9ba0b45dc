package history

import (
	"time"
)

const (
	PeriodAny        = ""
	PeriodLast7Days  = "last7days"
	PeriodLast30Days = "last30days"
	PeriodAllTime    = "allTime"
)

var Periods = []string{PeriodAny, PeriodLast7Days, PeriodLast30Days, PeriodAllTime}

// After returns the day from which links are listed for the given period, or
// nil when the period does not restrict the creation date.
func After(period string, now time.Time) *time.Time {
	var days int

	switch period {
	case PeriodLast7Days:
		days = 7
	case PeriodLast30Days:
		days = 30
	default:
		return nil
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	after := midnight.AddDate(0, 0, -days)

	return &after
}
