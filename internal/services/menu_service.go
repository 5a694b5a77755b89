package services

import (
	"fmt"
	"log"
	"time"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"
)

// MenuCache is the read-cache the menu listing is served through; the redis
// client implements it. A nil cache disables caching.
type MenuCache interface {
	SetMenuItems(category string, availableOnly bool, value interface{}, ttl time.Duration) error
	GetMenuItems(category string, availableOnly bool, dest interface{}) error
	InvalidateMenu() error
}

// MenuItemUpdate lists the mutable menu-item fields; nil means leave
// unchanged. Already-placed order items keep their snapshotted price
// regardless of price updates here.
type MenuItemUpdate struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Category        *string  `json:"category"`
	PrepTimeMinutes *int     `json:"prep_time_minutes"`
	IsAvailable     *bool    `json:"is_available"`
}

type MenuService interface {
	GetMenuItems(category string, availableOnly bool) ([]models.MenuItem, error)
	GetMenuItem(id uint) (*models.MenuItem, error)
	CreateMenuItem(name, description string, price float64, category string, prepTimeMinutes int) (*models.MenuItem, error)
	UpdateMenuItem(id uint, update MenuItemUpdate) (*models.MenuItem, error)
	AddCustomizationOption(menuItemID uint, name string, price float64) (*models.MenuItemCustomization, error)
	GetCustomizationOptions(menuItemID uint) ([]models.MenuItemCustomization, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
	cache    MenuCache
	cacheTTL time.Duration
}

func NewMenuService(menuRepo repository.MenuRepository, cache MenuCache, cacheTTL time.Duration) MenuService {
	return &menuService{menuRepo: menuRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *menuService) GetMenuItems(category string, availableOnly bool) ([]models.MenuItem, error) {
	if s.cache != nil {
		var cached []models.MenuItem
		if err := s.cache.GetMenuItems(category, availableOnly, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.menuRepo.GetItems(category, availableOnly)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMenuItems(category, availableOnly, items, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache menu items: %v", err)
		}
	}
	return items, nil
}

func (s *menuService) GetMenuItem(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return item, nil
}

func (s *menuService) CreateMenuItem(name, description string, price float64, category string, prepTimeMinutes int) (*models.MenuItem, error) {
	if name == "" || category == "" {
		return nil, fmt.Errorf("%w: name and category are required", ErrInvalidInput)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if prepTimeMinutes <= 0 {
		prepTimeMinutes = 15
	}

	item := &models.MenuItem{
		Name:            name,
		Description:     description,
		Price:           price,
		Category:        category,
		PrepTimeMinutes: prepTimeMinutes,
		IsAvailable:     true,
	}
	if err := s.menuRepo.CreateItem(item); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return item, nil
}

func (s *menuService) UpdateMenuItem(id uint, update MenuItemUpdate) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
		}
		item.Price = *update.Price
	}
	if update.Category != nil {
		item.Category = *update.Category
	}
	if update.PrepTimeMinutes != nil {
		item.PrepTimeMinutes = *update.PrepTimeMinutes
	}
	if update.IsAvailable != nil {
		item.IsAvailable = *update.IsAvailable
	}

	if err := s.menuRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return item, nil
}

func (s *menuService) AddCustomizationOption(menuItemID uint, name string, price float64) (*models.MenuItemCustomization, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: customization name is required", ErrInvalidInput)
	}
	if _, err := s.menuRepo.GetItemByID(menuItemID); err != nil {
		return nil, translateNotFound(err)
	}

	customization := &models.MenuItemCustomization{
		MenuItemID: menuItemID,
		Name:       name,
		Price:      price,
		IsActive:   true,
	}
	if err := s.menuRepo.CreateCustomization(customization); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return customization, nil
}

func (s *menuService) GetCustomizationOptions(menuItemID uint) ([]models.MenuItemCustomization, error) {
	if _, err := s.menuRepo.GetItemByID(menuItemID); err != nil {
		return nil, translateNotFound(err)
	}
	return s.menuRepo.GetCustomizationsByItem(menuItemID)
}

func (s *menuService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMenu(); err != nil {
		log.Printf("Warning: failed to invalidate menu cache: %v", err)
	}
}
