package repository

import (
	"restaurant_manager/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetAll(role string, activeOnly bool) ([]models.Employee, error)
	Update(employee *models.Employee) error
	CreateShift(shift *models.Shift) error
	GetShiftsByEmployee(employeeID uint) ([]models.Shift, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetAll(role string, activeOnly bool) ([]models.Employee, error) {
	var employees []models.Employee
	query := r.db
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("name").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepository) CreateShift(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

func (r *employeeRepository) GetShiftsByEmployee(employeeID uint) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Where("employee_id = ?", employeeID).Order("start_time").Find(&shifts).Error
	return shifts, err
}
