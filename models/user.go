package models

import "time"

// User is an employee assets get assigned to, not a login account (see Admin).
type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	EmpID            string     `gorm:"uniqueIndex;size:50" json:"emp_id"`
	EmpCode          string     `gorm:"uniqueIndex;size:50" json:"emp_code"`
	Name             string     `gorm:"size:100" json:"name"`
	Email            string     `gorm:"uniqueIndex;size:120" json:"email"`
	Role             string     `gorm:"size:50" json:"role"` // Employee, Admin, Manager
	Department       string     `gorm:"size:100" json:"department"`
	Division         string     `gorm:"size:100" json:"division"`
	JoinDate         *time.Time `gorm:"type:date" json:"-"`
	Status           string     `gorm:"size:50" json:"status"` // Active, Inactive, On Leave
	Location         string     `gorm:"size:100" json:"location"`
	PhoneNumber      string     `gorm:"size:20" json:"phone_number"`
	Designation      string     `gorm:"size:100" json:"designation"`
	ReportingManager string     `gorm:"size:100" json:"reporting_manager"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
