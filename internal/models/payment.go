package models

import (
	"time"
)

type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrderID       uint      `json:"order_id" gorm:"not null"`
	PaymentTime   time.Time `json:"payment_time" gorm:"not null"`
	PaymentMethod string    `json:"payment_method" gorm:"not null"` // cash, credit, debit
	Amount        float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	TipAmount     float64   `json:"tip_amount" gorm:"type:decimal(10,2);default:0.00"`
	Status        string    `json:"status" gorm:"default:'completed'"` // pending, completed, refunded
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)
