package services

import (
	"fmt"
	"time"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/repository"

	"gorm.io/gorm"
)

type ReservationService interface {
	CreateReservation(dateTime time.Time, partySize int, contactName, contactPhone, specialRequests string, tableID *uint) (*models.Reservation, error)
	GetReservation(id uint) (*models.Reservation, error)
	GetReservationsForDate(date time.Time) ([]models.Reservation, error)
	UpdateReservationStatus(id uint, status string) (*models.Reservation, error)
}

type reservationService struct {
	db              *gorm.DB
	reservationRepo repository.ReservationRepository
	tableRepo       repository.TableRepository
}

func NewReservationService(db *gorm.DB, reservationRepo repository.ReservationRepository, tableRepo repository.TableRepository) ReservationService {
	return &reservationService{
		db:              db,
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
	}
}

func (s *reservationService) CreateReservation(dateTime time.Time, partySize int, contactName, contactPhone, specialRequests string, tableID *uint) (*models.Reservation, error) {
	if partySize < 1 {
		return nil, fmt.Errorf("%w: party size must be at least 1", ErrInvalidInput)
	}
	if contactName == "" || contactPhone == "" {
		return nil, fmt.Errorf("%w: contact name and phone are required", ErrInvalidInput)
	}

	var reservation *models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		tableRepo := s.tableRepo.WithTx(tx)

		var claimedTableID uint
		if tableID != nil {
			if _, err := tableRepo.GetByID(*tableID); err != nil {
				return translateNotFound(err)
			}
			claimed, err := tableRepo.SetStatusIf(*tableID,
				string(models.TableAvailable), string(models.TableReserved))
			if err != nil {
				return err
			}
			if !claimed {
				return fmt.Errorf("%w: table %d is not available", ErrNoAvailableTable, *tableID)
			}
			claimedTableID = *tableID
		} else {
			candidates, err := tableRepo.GetAvailable(partySize)
			if err != nil {
				return err
			}
			// Claim the first candidate whose row is still available.
			// The guarded update loses gracefully to a concurrent
			// reservation instead of double-booking.
			for _, candidate := range candidates {
				claimed, err := tableRepo.SetStatusIf(candidate.ID,
					string(models.TableAvailable), string(models.TableReserved))
				if err != nil {
					return err
				}
				if claimed {
					claimedTableID = candidate.ID
					break
				}
			}
			if claimedTableID == 0 {
				return fmt.Errorf("%w: no table seats %d", ErrNoAvailableTable, partySize)
			}
		}

		reservation = &models.Reservation{
			DateTime:        dateTime,
			PartySize:       partySize,
			ContactName:     contactName,
			ContactPhone:    contactPhone,
			SpecialRequests: specialRequests,
			Status:          string(models.ReservationConfirmed),
			TableID:         claimedTableID,
		}
		return s.reservationRepo.WithTx(tx).Create(reservation)
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) GetReservation(id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return reservation, nil
}

func (s *reservationService) GetReservationsForDate(date time.Time) ([]models.Reservation, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return s.reservationRepo.GetByDateRange(start, end)
}

func (s *reservationService) UpdateReservationStatus(id uint, status string) (*models.Reservation, error) {
	if !models.ValidReservationStatus(status) {
		return nil, fmt.Errorf("%w: unknown reservation status %q", ErrInvalidInput, status)
	}

	var reservation *models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		reservation, err = s.reservationRepo.WithTx(tx).GetByID(id)
		if err != nil {
			return translateNotFound(err)
		}

		from := models.ReservationStatus(reservation.Status)
		to := models.ReservationStatus(status)
		if !from.CanTransitionTo(to) {
			return fmt.Errorf("%w: reservation cannot move from %s to %s", ErrInvalidInput, from, to)
		}

		tableRepo := s.tableRepo.WithTx(tx)
		switch to {
		case models.ReservationSeated:
			if err := tableRepo.SetStatus(reservation.TableID, string(models.TableOccupied)); err != nil {
				return err
			}
		case models.ReservationCancelled, models.ReservationNoShow:
			if err := tableRepo.SetStatus(reservation.TableID, string(models.TableAvailable)); err != nil {
				return err
			}
		}

		reservation.Status = status
		return s.reservationRepo.WithTx(tx).Update(reservation)
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}
