package models

import (
	"time"
)

type Employee struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Role        string `json:"role" gorm:"not null"` // manager, server, chef, host
	ContactInfo string `json:"contact_info"`
	Credentials string `json:"-" gorm:"column:credentials"` // bcrypt hash, never serialized
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	Shifts []Shift `json:"shifts,omitempty" gorm:"foreignKey:EmployeeID"`
}

type Shift struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EmployeeID uint      `json:"employee_id" gorm:"not null"`
	StartTime  time.Time `json:"start_time" gorm:"not null"`
	EndTime    time.Time `json:"end_time" gorm:"not null"`
	ShiftType  string    `json:"shift_type"` // morning, evening
}
