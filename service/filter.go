package service

import (
	"strconv"
	"strings"
	"time"
)

// UnassignedUser is the user_id sentinel selecting assets with no assigned
// user.
const UnassignedUser = "null"

// Recognized expiry_range values.
const (
	ExpiryRangeExpired         = "expired"
	ExpiryRangeExpiringSoon    = "expiring_30_days"
	ExpiryRangeNotExpiringSoon = "not_expiring_soon"
)

// AssetFilter holds independently optional criteria. An empty field means "no
// constraint" for that criterion; set criteria combine with logical AND.
type AssetFilter struct {
	Search         string
	Status         string
	Category       string
	Location       string
	UserID         string
	WarrantyStatus string
	ExpiryRange    string
}

// Apply returns the rows matching every set criterion, preserving input
// order. It never mutates its input and is idempotent.
func (f AssetFilter) Apply(rows []AssetRow, today time.Time) []AssetRow {
	out := make([]AssetRow, 0, len(rows))
	for _, r := range rows {
		if f.matches(r, today) {
			out = append(out, r)
		}
	}
	return out
}

func (f AssetFilter) matches(r AssetRow, today time.Time) bool {
	if f.Search != "" && !matchesSearch(r, f.Search) {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Category != "" && r.CategoryName != f.Category {
		return false
	}
	if f.Location != "" && r.LocationName != f.Location {
		return false
	}
	if f.UserID != "" && !matchesUser(r, f.UserID) {
		return false
	}
	if f.WarrantyStatus != "" && r.WarrantyStatus != f.WarrantyStatus {
		return false
	}
	if f.ExpiryRange != "" && !f.matchesExpiry(r, today) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against every
// searchable text field, including the assigned user's display name.
func matchesSearch(r AssetRow, term string) bool {
	term = strings.ToLower(term)
	fields := []string{
		r.AssetCode, r.SerialNumber, r.AssetType, r.AssetDescription,
		r.Make, r.Model, r.CategoryName, r.LocationName,
	}
	if r.UserName != nil {
		fields = append(fields, *r.UserName)
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchesUser(r AssetRow, selected string) bool {
	if selected == UnassignedUser {
		return r.UserID == nil
	}
	return r.UserID != nil && strconv.FormatUint(uint64(*r.UserID), 10) == selected
}

// matchesExpiry buckets rows by warranty expiry. The three buckets partition
// the dated rows; an unrecognized value is treated as no constraint.
func (f AssetFilter) matchesExpiry(r AssetRow, today time.Time) bool {
	exp := r.expiryTime()
	switch f.ExpiryRange {
	case ExpiryRangeExpired:
		return HasExpired(exp, today)
	case ExpiryRangeExpiringSoon:
		return IsExpiringSoon(exp, today, DefaultExpiryThresholdDays) && !HasExpired(exp, today)
	case ExpiryRangeNotExpiringSoon:
		return !IsExpiringSoon(exp, today, DefaultExpiryThresholdDays) && !HasExpired(exp, today)
	default:
		return true
	}
}
