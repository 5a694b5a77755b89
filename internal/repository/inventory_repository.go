package repository

import (
	"restaurant_manager/internal/models"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	WithTx(tx *gorm.DB) InventoryRepository
	Create(item *models.InventoryItem) error
	GetByID(id uint) (*models.InventoryItem, error)
	GetAll(lowStockOnly bool) ([]models.InventoryItem, error)
	Update(item *models.InventoryItem) error
	// AdjustQuantity applies a relative delta to the on-hand quantity as a
	// single guarded UPDATE. It reports false when the item is missing or
	// the delta would take the quantity below zero; nothing is written in
	// that case.
	AdjustQuantity(id uint, delta float64) (bool, error)
	CreateRecipeRequirement(req *models.RecipeRequirement) error
	GetRequirementsByMenuItem(menuItemID uint) ([]models.RecipeRequirement, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) WithTx(tx *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: tx}
}

func (r *inventoryRepository) Create(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepository) GetByID(id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) GetAll(lowStockOnly bool) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	query := r.db
	if lowStockOnly {
		query = query.Where("quantity <= min_threshold")
	}
	err := query.Order("name").Find(&items).Error
	return items, err
}

func (r *inventoryRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepository) AdjustQuantity(id uint, delta float64) (bool, error) {
	result := r.db.Model(&models.InventoryItem{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *inventoryRepository) CreateRecipeRequirement(req *models.RecipeRequirement) error {
	return r.db.Create(req).Error
}

func (r *inventoryRepository) GetRequirementsByMenuItem(menuItemID uint) ([]models.RecipeRequirement, error) {
	var requirements []models.RecipeRequirement
	err := r.db.Where("menu_item_id = ?", menuItemID).Find(&requirements).Error
	return requirements, err
}
