package handlers

import (
	"net/http"
	"time"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationService services.ReservationService
}

func NewReservationHandler(reservationService services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req struct {
		DateTime        time.Time `json:"date_time"`
		PartySize       int       `json:"party_size"`
		ContactName     string    `json:"contact_name"`
		ContactPhone    string    `json:"contact_phone"`
		SpecialRequests string    `json:"special_requests"`
		TableID         *uint     `json:"table_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	reservation, err := h.reservationService.CreateReservation(
		req.DateTime, req.PartySize, req.ContactName, req.ContactPhone, req.SpecialRequests, req.TableID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := parseID(c, "reservation_id")
	if err != nil {
		return
	}

	reservation, err := h.reservationService.GetReservation(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) GetReservationsByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	reservations, err := h.reservationService.GetReservationsForDate(date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	id, err := parseID(c, "reservation_id")
	if err != nil {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	reservation, err := h.reservationService.UpdateReservationStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}
