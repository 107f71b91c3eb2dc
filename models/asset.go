package models

import "time"

type Asset struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	AssetCode        string     `gorm:"uniqueIndex;size:100" json:"asset_code"`
	SerialNumber     string     `gorm:"uniqueIndex;size:100" json:"serial_number"`
	CapitalDate      *time.Time `gorm:"type:date" json:"-"`
	Year             *int       `json:"year"`
	AssetType        string     `gorm:"size:100" json:"asset_type"`
	AssetDescription string     `gorm:"size:255" json:"asset_description"`
	Make             string     `gorm:"size:100" json:"make"`
	Model            string     `gorm:"size:100" json:"model"`
	Status           string     `gorm:"size:50" json:"status"` // Active, In Repair, Pending Scrap Approval, Disposed
	Department       string     `gorm:"size:100" json:"department"`
	Division         string     `gorm:"size:100" json:"division"`
	PlantCode        string     `gorm:"size:50" json:"plant_code"`
	WarrantyStatus   string     `gorm:"size:50" json:"warranty_status"` // In Warranty, Out of Warranty
	ExpiryDate       *time.Time `gorm:"type:date" json:"-"`
	CategoryID       uint       `json:"category_id"`
	Category         Category   `json:"category"` // preload
	LocationID       uint       `json:"location_id"`
	Location         Location   `json:"location"` // preload
	UserID           *uint      `json:"user_id"` // nullable, unassigned when nil
	AssignedUser     *User      `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
