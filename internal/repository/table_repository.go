package repository

import (
	"restaurant_manager/internal/models"

	"gorm.io/gorm"
)

type TableRepository interface {
	WithTx(tx *gorm.DB) TableRepository
	Create(table *models.Table) error
	GetByID(id uint) (*models.Table, error)
	GetAll(section, status string) ([]models.Table, error)
	GetAvailable(partySize int) ([]models.Table, error)
	Update(table *models.Table) error
	SetStatus(id uint, status string) error
	// SetStatusIf flips the table's status only when it currently equals
	// from, and reports whether the row was claimed. This is the guard
	// against two callers reserving the same table.
	SetStatusIf(id uint, from, to string) (bool, error)
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) WithTx(tx *gorm.DB) TableRepository {
	return &tableRepository{db: tx}
}

func (r *tableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

func (r *tableRepository) GetByID(id uint) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, id).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) GetAll(section, status string) ([]models.Table, error) {
	var tables []models.Table
	query := r.db
	if section != "" {
		query = query.Where("section = ?", section)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("table_number").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) GetAvailable(partySize int) ([]models.Table, error) {
	var tables []models.Table
	err := r.db.
		Where("capacity >= ?", partySize).
		Where("status = ?", string(models.TableAvailable)).
		Where("is_active = ?", true).
		Order("capacity, table_number").
		Find(&tables).Error
	return tables, err
}

func (r *tableRepository) Update(table *models.Table) error {
	return r.db.Save(table).Error
}

func (r *tableRepository) SetStatus(id uint, status string) error {
	return r.db.Model(&models.Table{}).Where("id = ?", id).Update("status", status).Error
}

func (r *tableRepository) SetStatusIf(id uint, from, to string) (bool, error) {
	result := r.db.Model(&models.Table{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
