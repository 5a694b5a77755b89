package models

type InventoryItem struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"not null"`
	Quantity     float64 `json:"quantity" gorm:"type:decimal(10,2);default:0.00"`
	Unit         string  `json:"unit" gorm:"not null"`
	CostPerUnit  float64 `json:"cost_per_unit" gorm:"type:decimal(10,2);not null"`
	MinThreshold float64 `json:"min_threshold" gorm:"type:decimal(10,2);default:0.00"`
	SupplierInfo string  `json:"supplier_info" gorm:"type:text"`
}
