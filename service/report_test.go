package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	rows := sampleRows()
	s := Summarize(rows, refDay)

	assert.Equal(t, 3, s.TotalAssets)
	assert.Equal(t, 2, s.AssignedAssets)
	assert.Equal(t, 1, s.NotAssignedAssets)
	assert.Equal(t, s.TotalAssets, s.AssignedAssets+s.NotAssignedAssets)
	assert.Equal(t, 1, s.ExpiredAssets)
	assert.Equal(t, 1, s.ExpiringSoonAssets)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, refDay)
	assert.Equal(t, Summary{}, s)
}

func TestCountByStatus(t *testing.T) {
	rows := []AssetRow{
		{Status: "Active"}, {Status: "Active"}, {Status: "Disposed"},
	}
	assert.Equal(t, map[string]int{"Active": 2, "Disposed": 1}, CountByStatus(rows))
}

func TestCountByCategory(t *testing.T) {
	rows := []AssetRow{
		{CategoryName: "IT Equipment"},
		{CategoryName: ""},
		{CategoryName: "IT Equipment"},
	}
	got := CountByCategory(rows)
	assert.Equal(t, map[string]int{"IT Equipment": 2, UncategorizedLabel: 1}, got)
}

func TestWarrantyAlerts(t *testing.T) {
	rows := sampleRows()
	alerts := WarrantyAlerts(rows, refDay)

	// Row 2 is expired but Disposed, so only the expiring-soon row remains.
	assert.Len(t, alerts, 1)
	assert.Equal(t, uint(1), alerts[0].ID)
	assert.Equal(t, WarrantyExpiringSoon, alerts[0].Classification)
	assert.Equal(t, 10, alerts[0].DaysRemaining)
}

func TestWarrantyAlertsIncludesExpired(t *testing.T) {
	rows := []AssetRow{
		{ID: 5, Status: "Active", ExpiryDate: DateOf(datePtr(refDay.AddDate(0, 0, -2)))},
		{ID: 6, Status: "Active"}, // no expiry date, no alert
	}
	alerts := WarrantyAlerts(rows, refDay)
	assert.Len(t, alerts, 1)
	assert.Equal(t, WarrantyExpired, alerts[0].Classification)
	assert.Equal(t, -2, alerts[0].DaysRemaining)
}
