package models

type Table struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	TableNumber int    `json:"table_number" gorm:"not null"`
	Capacity    int    `json:"capacity" gorm:"not null"`
	Section     string `json:"section" gorm:"not null"`
	Status      string `json:"status" gorm:"default:'available'"` // available, reserved, occupied
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
	TableOccupied  TableStatus = "occupied"
)

// ValidTableStatus reports whether s is one of the known table states.
func ValidTableStatus(s string) bool {
	switch TableStatus(s) {
	case TableAvailable, TableReserved, TableOccupied:
		return true
	}
	return false
}
