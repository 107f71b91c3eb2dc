package service

import "time"

// WarrantyClass is the derived warranty state of an asset relative to a
// reference day.
type WarrantyClass string

const (
	WarrantyNoDate       WarrantyClass = "no_date"
	WarrantyExpired      WarrantyClass = "expired"
	WarrantyExpiringSoon WarrantyClass = "expiring_soon"
	WarrantyNormal       WarrantyClass = "normal"
)

// DefaultExpiryThresholdDays is the lookahead window for expiring-soon checks.
const DefaultExpiryThresholdDays = 30

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HasExpired reports whether expiry falls strictly before today. Both sides
// are compared at day granularity; time of day never matters.
func HasExpired(expiry *time.Time, today time.Time) bool {
	if expiry == nil {
		return false
	}
	return startOfDay(*expiry).Before(startOfDay(today))
}

// IsExpiringSoon reports whether expiry falls within
// [today, today+thresholdDays], both ends inclusive. An expiry earlier than
// today is not expiring soon, it is expired; the two predicates never overlap.
func IsExpiringSoon(expiry *time.Time, today time.Time, thresholdDays int) bool {
	if expiry == nil {
		return false
	}
	e := startOfDay(*expiry)
	from := startOfDay(today)
	to := from.AddDate(0, 0, thresholdDays)
	return !e.Before(from) && !e.After(to)
}

// ClassifyWarranty collapses the two predicates into a single mutually
// exclusive classification. Expired takes precedence over expiring-soon.
func ClassifyWarranty(expiry *time.Time, today time.Time, thresholdDays int) WarrantyClass {
	switch {
	case expiry == nil:
		return WarrantyNoDate
	case HasExpired(expiry, today):
		return WarrantyExpired
	case IsExpiringSoon(expiry, today, thresholdDays):
		return WarrantyExpiringSoon
	default:
		return WarrantyNormal
	}
}

// DaysUntilExpiry returns whole days from today to expiry at day granularity;
// negative means days overdue.
func DaysUntilExpiry(expiry time.Time, today time.Time) int {
	diff := startOfDay(expiry).Sub(startOfDay(today))
	return int(diff.Hours() / 24)
}
