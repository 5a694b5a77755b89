package services

import (
	"fmt"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"
)

type InventoryService interface {
	GetInventoryItems(lowStockOnly bool) ([]models.InventoryItem, error)
	GetInventoryItem(id uint) (*models.InventoryItem, error)
	CreateInventoryItem(name string, quantity float64, unit string, costPerUnit, minThreshold float64, supplierInfo string) (*models.InventoryItem, error)
	AdjustInventoryLevel(id uint, delta float64) (*models.InventoryItem, error)
	LinkMenuItemToInventory(menuItemID, inventoryItemID uint, quantity float64) (*models.RecipeRequirement, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	menuRepo      repository.MenuRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository, menuRepo repository.MenuRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo, menuRepo: menuRepo}
}

func (s *inventoryService) GetInventoryItems(lowStockOnly bool) ([]models.InventoryItem, error) {
	return s.inventoryRepo.GetAll(lowStockOnly)
}

func (s *inventoryService) GetInventoryItem(id uint) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return item, nil
}

func (s *inventoryService) CreateInventoryItem(name string, quantity float64, unit string, costPerUnit, minThreshold float64, supplierInfo string) (*models.InventoryItem, error) {
	if name == "" || unit == "" {
		return nil, fmt.Errorf("%w: name and unit are required", ErrInvalidInput)
	}
	if quantity < 0 || costPerUnit < 0 || minThreshold < 0 {
		return nil, fmt.Errorf("%w: quantities and costs cannot be negative", ErrInvalidInput)
	}

	item := &models.InventoryItem{
		Name:         name,
		Quantity:     quantity,
		Unit:         unit,
		CostPerUnit:  costPerUnit,
		MinThreshold: minThreshold,
		SupplierInfo: supplierInfo,
	}
	if err := s.inventoryRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustInventoryLevel applies a relative delta; on-hand stock is never set
// absolutely and never goes below zero.
func (s *inventoryService) AdjustInventoryLevel(id uint, delta float64) (*models.InventoryItem, error) {
	ok, err := s.inventoryRepo.AdjustQuantity(id, delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Distinguish a missing item from a shortfall.
		if _, err := s.inventoryRepo.GetByID(id); err != nil {
			return nil, translateNotFound(err)
		}
		return nil, fmt.Errorf("%w: adjustment of %.2f would take inventory item %d below zero",
			ErrInsufficientStock, delta, id)
	}
	return s.inventoryRepo.GetByID(id)
}

func (s *inventoryService) LinkMenuItemToInventory(menuItemID, inventoryItemID uint, quantity float64) (*models.RecipeRequirement, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: recipe quantity must be positive", ErrInvalidInput)
	}
	if _, err := s.menuRepo.GetItemByID(menuItemID); err != nil {
		return nil, translateNotFound(err)
	}
	if _, err := s.inventoryRepo.GetByID(inventoryItemID); err != nil {
		return nil, translateNotFound(err)
	}

	requirement := &models.RecipeRequirement{
		MenuItemID:      menuItemID,
		InventoryItemID: inventoryItemID,
		Quantity:        quantity,
	}
	if err := s.inventoryRepo.CreateRecipeRequirement(requirement); err != nil {
		return nil, err
	}
	return requirement, nil
}
