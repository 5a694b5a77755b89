package models

type MenuItem struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	Name            string  `json:"name" gorm:"not null"`
	Description     string  `json:"description" gorm:"type:text"`
	Price           float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Category        string  `json:"category" gorm:"not null"`
	PrepTimeMinutes int     `json:"prep_time_minutes" gorm:"default:15"`
	IsAvailable     bool    `json:"is_available" gorm:"default:true"`

	Customizations     []MenuItemCustomization `json:"customizations,omitempty" gorm:"foreignKey:MenuItemID"`
	RecipeRequirements []RecipeRequirement     `json:"recipe_requirements,omitempty" gorm:"foreignKey:MenuItemID"`
}

type MenuItemCustomization struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	MenuItemID uint    `json:"menu_item_id" gorm:"not null"`
	Name       string  `json:"name" gorm:"not null"`
	Price      float64 `json:"price" gorm:"type:decimal(10,2);default:0.00"`
	IsActive   bool    `json:"is_active" gorm:"default:true"`
}

// RecipeRequirement links a menu item to the quantity of an inventory item
// consumed per unit sold.
type RecipeRequirement struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	MenuItemID      uint    `json:"menu_item_id" gorm:"not null"`
	InventoryItemID uint    `json:"inventory_item_id" gorm:"not null"`
	Quantity        float64 `json:"quantity" gorm:"type:decimal(10,2);not null"`
}
