package service

import "time"

// Summary holds the headline counts shown on the reports dashboard. Counts
// are computed over the full asset list, not a filtered one.
type Summary struct {
	TotalAssets        int `json:"total_assets"`
	AssignedAssets     int `json:"assigned_assets"`
	NotAssignedAssets  int `json:"not_assigned_assets"`
	ExpiredAssets      int `json:"expired_assets"`
	ExpiringSoonAssets int `json:"expiring_soon_assets"`
}

// Summarize reduces rows to summary counts. Expiring-soon excludes already
// expired assets, so the two counts never overlap, and
// assigned + not assigned always equals total.
func Summarize(rows []AssetRow, today time.Time) Summary {
	s := Summary{TotalAssets: len(rows)}
	for _, r := range rows {
		if r.UserID != nil {
			s.AssignedAssets++
		}
		exp := r.expiryTime()
		if HasExpired(exp, today) {
			s.ExpiredAssets++
		} else if IsExpiringSoon(exp, today, DefaultExpiryThresholdDays) {
			s.ExpiringSoonAssets++
		}
	}
	s.NotAssignedAssets = s.TotalAssets - s.AssignedAssets
	return s
}

// UncategorizedLabel stands in for an empty category in group-by counts.
const UncategorizedLabel = "Uncategorized"

// CountByStatus counts assets per distinct status value.
func CountByStatus(rows []AssetRow) map[string]int {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Status]++
	}
	return counts
}

// CountByCategory counts assets per category name, substituting
// UncategorizedLabel for rows without one.
func CountByCategory(rows []AssetRow) map[string]int {
	counts := make(map[string]int)
	for _, r := range rows {
		name := r.CategoryName
		if name == "" {
			name = UncategorizedLabel
		}
		counts[name]++
	}
	return counts
}

// WarrantyAlert is an asset whose warranty needs attention, annotated with
// its classification and days until expiry (negative = days overdue).
type WarrantyAlert struct {
	AssetRow
	Classification WarrantyClass `json:"warranty_classification"`
	DaysRemaining  int           `json:"days_remaining"`
}

// WarrantyAlerts returns the assets that are expired or expiring within the
// default threshold, in input order. Disposed assets are skipped; their
// warranty state no longer matters.
func WarrantyAlerts(rows []AssetRow, today time.Time) []WarrantyAlert {
	alerts := make([]WarrantyAlert, 0)
	for _, r := range rows {
		if r.Status == "Disposed" {
			continue
		}
		exp := r.expiryTime()
		class := ClassifyWarranty(exp, today, DefaultExpiryThresholdDays)
		if class != WarrantyExpired && class != WarrantyExpiringSoon {
			continue
		}
		alerts = append(alerts, WarrantyAlert{
			AssetRow:       r,
			Classification: class,
			DaysRemaining:  DaysUntilExpiry(*exp, today),
		})
	}
	return alerts
}
