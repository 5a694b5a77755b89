package handlers

import (
	"net/http"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req struct {
		OrderID       uint    `json:"order_id"`
		PaymentMethod string  `json:"payment_method"`
		Amount        float64 `json:"amount"`
		TipAmount     float64 `json:"tip_amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	payment, err := h.paymentService.ProcessPayment(req.OrderID, req.PaymentMethod, req.Amount, req.TipAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := parseID(c, "payment_id")
	if err != nil {
		return
	}

	payment, err := h.paymentService.GetPayment(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
