package repository

import (
	"restaurant_manager/internal/models"

	"gorm.io/gorm"
)

type MenuRepository interface {
	CreateItem(item *models.MenuItem) error
	GetItemByID(id uint) (*models.MenuItem, error)
	// GetItemWithRecipe loads the menu item together with its recipe
	// requirements in one explicit fetch.
	GetItemWithRecipe(id uint) (*models.MenuItem, error)
	GetItems(category string, availableOnly bool) ([]models.MenuItem, error)
	UpdateItem(item *models.MenuItem) error
	CreateCustomization(customization *models.MenuItemCustomization) error
	GetCustomizationByID(id uint) (*models.MenuItemCustomization, error)
	GetCustomizationsByItem(menuItemID uint) ([]models.MenuItemCustomization, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateItem(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) GetItemByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetItemWithRecipe(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.Preload("RecipeRequirements").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetItems(category string, availableOnly bool) ([]models.MenuItem, error) {
	var items []models.MenuItem
	query := r.db
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}
	err := query.Order("category, name").Find(&items).Error
	return items, err
}

func (r *menuRepository) UpdateItem(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuRepository) CreateCustomization(customization *models.MenuItemCustomization) error {
	return r.db.Create(customization).Error
}

func (r *menuRepository) GetCustomizationByID(id uint) (*models.MenuItemCustomization, error) {
	var customization models.MenuItemCustomization
	err := r.db.First(&customization, id).Error
	if err != nil {
		return nil, err
	}
	return &customization, nil
}

func (r *menuRepository) GetCustomizationsByItem(menuItemID uint) ([]models.MenuItemCustomization, error) {
	var customizations []models.MenuItemCustomization
	err := r.db.Where("menu_item_id = ?", menuItemID).Find(&customizations).Error
	return customizations, err
}
