package models

import (
	"time"
)

type Reservation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	DateTime        time.Time `json:"date_time" gorm:"not null"`
	PartySize       int       `json:"party_size" gorm:"not null"`
	ContactName     string    `json:"contact_name" gorm:"not null"`
	ContactPhone    string    `json:"contact_phone" gorm:"not null"`
	SpecialRequests string    `json:"special_requests" gorm:"type:text"`
	Status          string    `json:"status" gorm:"default:'confirmed'"` // confirmed, seated, cancelled, no-show
	TableID         uint      `json:"table_id" gorm:"not null"`
}

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationNoShow    ReservationStatus = "no-show"
)

// reservationTransitions lists the legal status edges. Cancellation is
// allowed even after seating so staff can correct a mistaken seat.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationConfirmed: {ReservationSeated, ReservationCancelled, ReservationNoShow},
	ReservationSeated:    {ReservationCancelled},
	ReservationCancelled: {},
	ReservationNoShow:    {},
}

// CanTransitionTo reports whether a reservation may move from s to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ValidReservationStatus(s string) bool {
	_, ok := reservationTransitions[ReservationStatus(s)]
	return ok
}
