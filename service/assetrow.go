package service

import (
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date marshals as "YYYY-MM-DD" (null when the pointer is nil), the wire
// format used for capital_date, expiry_date and join_date.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return errors.New("invalid date, expected YYYY-MM-DD")
	}
	d.Time = t
	return nil
}

// DateOf wraps an optional time as a Date, preserving nil.
func DateOf(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{*t}
}

// AssetRow is the denormalized, display-ready form of an asset: the shape the
// API returns for listings and the shape the reporting core (filter engine,
// aggregator, CSV exporter) operates on. CategoryName, LocationName and
// UserName are resolved from the joined records.
type AssetRow struct {
	ID               uint    `json:"id"`
	AssetCode        string  `json:"asset_code"`
	SerialNumber     string  `json:"serial_number"`
	CapitalDate      *Date   `json:"capital_date"`
	Year             *int    `json:"year"`
	AssetType        string  `json:"asset_type"`
	AssetDescription string  `json:"asset_description"`
	Make             string  `json:"make"`
	Model            string  `json:"model"`
	Status           string  `json:"status"`
	Department       string  `json:"department"`
	Division         string  `json:"division"`
	PlantCode        string  `json:"plant_code"`
	WarrantyStatus   string  `json:"warranty_status"`
	ExpiryDate       *Date   `json:"expiry_date"`
	CategoryID       uint    `json:"category_id"`
	CategoryName     string  `json:"category_name"`
	LocationID       uint    `json:"location_id"`
	LocationName     string  `json:"location_name"`
	UserID           *uint   `json:"user_id"`
	UserName         *string `json:"user_name"`
}

func (r AssetRow) expiryTime() *time.Time {
	if r.ExpiryDate == nil {
		return nil
	}
	t := r.ExpiryDate.Time
	return &t
}
