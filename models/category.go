package models

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:100" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}
