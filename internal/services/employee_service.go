package services

import (
	"fmt"
	"time"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// EmployeeUpdate lists the mutable employee fields; nil means leave
// unchanged.
type EmployeeUpdate struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	ContactInfo *string `json:"contact_info"`
	IsActive    *bool   `json:"is_active"`
}

type EmployeeService interface {
	GetEmployee(id uint) (*models.Employee, error)
	GetEmployees(role string, activeOnly bool) ([]models.Employee, error)
	CreateEmployee(name, role, contactInfo, credentials string) (*models.Employee, error)
	UpdateEmployee(id uint, update EmployeeUpdate) (*models.Employee, error)
	CreateShift(employeeID uint, startTime, endTime time.Time, shiftType string) (*models.Shift, error)
	GetShifts(employeeID uint) ([]models.Shift, error)
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) GetEmployee(id uint) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return employee, nil
}

func (s *employeeService) GetEmployees(role string, activeOnly bool) ([]models.Employee, error) {
	return s.employeeRepo.GetAll(role, activeOnly)
}

func (s *employeeService) CreateEmployee(name, role, contactInfo, credentials string) (*models.Employee, error) {
	if name == "" || role == "" {
		return nil, fmt.Errorf("%w: name and role are required", ErrInvalidInput)
	}

	employee := &models.Employee{
		Name:        name,
		Role:        role,
		ContactInfo: contactInfo,
		IsActive:    true,
	}
	if credentials != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(credentials), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employee.Credentials = string(hashed)
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) UpdateEmployee(id uint, update EmployeeUpdate) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if update.Name != nil {
		employee.Name = *update.Name
	}
	if update.Role != nil {
		employee.Role = *update.Role
	}
	if update.ContactInfo != nil {
		employee.ContactInfo = *update.ContactInfo
	}
	if update.IsActive != nil {
		employee.IsActive = *update.IsActive
	}

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) CreateShift(employeeID uint, startTime, endTime time.Time, shiftType string) (*models.Shift, error) {
	if !endTime.After(startTime) {
		return nil, fmt.Errorf("%w: shift end must be after its start", ErrInvalidInput)
	}
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		return nil, translateNotFound(err)
	}

	shift := &models.Shift{
		EmployeeID: employeeID,
		StartTime:  startTime,
		EndTime:    endTime,
		ShiftType:  shiftType,
	}
	if err := s.employeeRepo.CreateShift(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (s *employeeService) GetShifts(employeeID uint) ([]models.Shift, error) {
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		return nil, translateNotFound(err)
	}
	return s.employeeRepo.GetShiftsByEmployee(employeeID)
}
