package services

import (
	"fmt"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"
)

// TableUpdate lists the mutable table fields; nil means leave unchanged.
type TableUpdate struct {
	TableNumber *int    `json:"table_number"`
	Capacity    *int    `json:"capacity"`
	Section     *string `json:"section"`
	IsActive    *bool   `json:"is_active"`
}

type TableService interface {
	GetAllTables(section, status string) ([]models.Table, error)
	GetAvailableTables(partySize int) ([]models.Table, error)
	GetTable(id uint) (*models.Table, error)
	CreateTable(tableNumber, capacity int, section, status string) (*models.Table, error)
	UpdateTable(id uint, update TableUpdate) (*models.Table, error)
	UpdateTableStatus(id uint, status string) (*models.Table, error)
}

type tableService struct {
	tableRepo repository.TableRepository
}

func NewTableService(tableRepo repository.TableRepository) TableService {
	return &tableService{tableRepo: tableRepo}
}

func (s *tableService) GetAllTables(section, status string) ([]models.Table, error) {
	return s.tableRepo.GetAll(section, status)
}

func (s *tableService) GetAvailableTables(partySize int) ([]models.Table, error) {
	if partySize < 1 {
		return nil, fmt.Errorf("%w: party size must be at least 1", ErrInvalidInput)
	}
	return s.tableRepo.GetAvailable(partySize)
}

func (s *tableService) GetTable(id uint) (*models.Table, error) {
	table, err := s.tableRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return table, nil
}

func (s *tableService) CreateTable(tableNumber, capacity int, section, status string) (*models.Table, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", ErrInvalidInput)
	}
	if status == "" {
		status = string(models.TableAvailable)
	}
	if !models.ValidTableStatus(status) {
		return nil, fmt.Errorf("%w: unknown table status %q", ErrInvalidInput, status)
	}

	table := &models.Table{
		TableNumber: tableNumber,
		Capacity:    capacity,
		Section:     section,
		Status:      status,
		IsActive:    true,
	}
	if err := s.tableRepo.Create(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *tableService) UpdateTable(id uint, update TableUpdate) (*models.Table, error) {
	table, err := s.tableRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if update.TableNumber != nil {
		table.TableNumber = *update.TableNumber
	}
	if update.Capacity != nil {
		if *update.Capacity < 1 {
			return nil, fmt.Errorf("%w: capacity must be at least 1", ErrInvalidInput)
		}
		table.Capacity = *update.Capacity
	}
	if update.Section != nil {
		table.Section = *update.Section
	}
	if update.IsActive != nil {
		table.IsActive = *update.IsActive
	}

	if err := s.tableRepo.Update(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *tableService) UpdateTableStatus(id uint, status string) (*models.Table, error) {
	if !models.ValidTableStatus(status) {
		return nil, fmt.Errorf("%w: unknown table status %q", ErrInvalidInput, status)
	}

	table, err := s.tableRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if err := s.tableRepo.SetStatus(table.ID, status); err != nil {
		return nil, err
	}
	table.Status = status
	return table, nil
}
