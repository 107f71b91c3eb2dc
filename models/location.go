package models

type Location struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"uniqueIndex;size:100" json:"name"`
	Address string `gorm:"size:255" json:"address"`
}
