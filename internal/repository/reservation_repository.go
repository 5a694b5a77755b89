package repository

import (
	"time"

	"restaurant_manager/internal/models"

	"gorm.io/gorm"
)

type ReservationRepository interface {
	WithTx(tx *gorm.DB) ReservationRepository
	Create(reservation *models.Reservation) error
	GetByID(id uint) (*models.Reservation, error)
	GetByDateRange(start, end time.Time) ([]models.Reservation, error)
	Update(reservation *models.Reservation) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) WithTx(tx *gorm.DB) ReservationRepository {
	return &reservationRepository{db: tx}
}

func (r *reservationRepository) Create(reservation *models.Reservation) error {
	return r.db.Create(reservation).Error
}

func (r *reservationRepository) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) GetByDateRange(start, end time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Where("date_time BETWEEN ? AND ?", start, end).
		Order("date_time").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) Update(reservation *models.Reservation) error {
	return r.db.Save(reservation).Error
}
