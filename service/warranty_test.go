package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var refDay = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestHasExpired(t *testing.T) {
	yesterday := refDay.AddDate(0, 0, -1)
	assert.True(t, HasExpired(datePtr(yesterday), refDay))

	// Same calendar day is not expired, whatever the time of day says.
	sameDayLater := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
	assert.False(t, HasExpired(datePtr(sameDayLater), refDay))
	sameDayEarlier := time.Date(2025, time.June, 15, 0, 0, 1, 0, time.UTC)
	assert.False(t, HasExpired(datePtr(sameDayEarlier), refDay))

	assert.False(t, HasExpired(nil, refDay))
}

func TestIsExpiringSoon(t *testing.T) {
	assert.True(t, IsExpiringSoon(datePtr(refDay), refDay, 30), "today is inside the window")
	assert.True(t, IsExpiringSoon(datePtr(refDay.AddDate(0, 0, 10)), refDay, 30))
	assert.True(t, IsExpiringSoon(datePtr(refDay.AddDate(0, 0, 30)), refDay, 30), "window is inclusive")
	assert.False(t, IsExpiringSoon(datePtr(refDay.AddDate(0, 0, 31)), refDay, 30))
	assert.False(t, IsExpiringSoon(datePtr(refDay.AddDate(0, 0, -1)), refDay, 30), "expired is not expiring soon")
	assert.False(t, IsExpiringSoon(nil, refDay, 30))
}

func TestExpiredAndExpiringSoonNeverOverlap(t *testing.T) {
	for offset := -60; offset <= 60; offset++ {
		d := datePtr(refDay.AddDate(0, 0, offset))
		expired := HasExpired(d, refDay)
		soon := IsExpiringSoon(d, refDay, 30)
		assert.False(t, expired && soon, "both true at offset %d", offset)
	}
}

func TestClassifyWarranty(t *testing.T) {
	assert.Equal(t, WarrantyNoDate, ClassifyWarranty(nil, refDay, 30))
	assert.Equal(t, WarrantyExpired, ClassifyWarranty(datePtr(refDay.AddDate(0, 0, -1)), refDay, 30))
	assert.Equal(t, WarrantyExpiringSoon, ClassifyWarranty(datePtr(refDay.AddDate(0, 0, 10)), refDay, 30))
	assert.Equal(t, WarrantyNormal, ClassifyWarranty(datePtr(refDay.AddDate(0, 0, 40)), refDay, 30))
}

func TestDaysUntilExpiry(t *testing.T) {
	assert.Equal(t, 0, DaysUntilExpiry(refDay, refDay))
	assert.Equal(t, 7, DaysUntilExpiry(refDay.AddDate(0, 0, 7), refDay))
	assert.Equal(t, -3, DaysUntilExpiry(refDay.AddDate(0, 0, -3), refDay))
}
