package handlers

import (
	"net/http"
	"time"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService   services.OrderService
	paymentService services.PaymentService
}

func NewOrderHandler(orderService services.OrderService, paymentService services.PaymentService) *OrderHandler {
	return &OrderHandler{orderService: orderService, paymentService: paymentService}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		OrderType  string `json:"order_type"`
		EmployeeID uint   `json:"employee_id"`
		TableID    *uint  `json:"table_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.CreateOrder(req.OrderType, req.EmployeeID, req.TableID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrders(c.Query("status"), c.Query("order_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := parseID(c, "order_id")
	if err != nil {
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := parseID(c, "order_id")
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

	order, err := h.orderService.UpdateOrderStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) AddItem(c *gin.Context) {
	id, err := parseID(c, "order_id")
	if err != nil {
		return
	}

	var req struct {
		MenuItemID          uint   `json:"menu_item_id"`
		Quantity            int    `json:"quantity"`
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	orderItem, err := h.orderService.AddItemToOrder(id, req.MenuItemID, req.Quantity, req.SpecialInstructions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderItem)
}

func (h *OrderHandler) AddItemCustomization(c *gin.Context) {
	id, err := parseID(c, "order_item_id")
	if err != nil {
		return
	}

	var req struct {
		CustomizationID uint `json:"customization_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	applied, err := h.orderService.AddCustomizationToOrderItem(id, req.CustomizationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, applied)
}

func (h *OrderHandler) GetOrderPayments(c *gin.Context) {
	id, err := parseID(c, "order_id")
	if err != nil {
		return
	}

	payments, err := h.paymentService.GetPaymentsForOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *OrderHandler) GetSalesSummary(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be formatted YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be formatted YYYY-MM-DD"})
		return
	}

	summary, err := h.orderService.GetSalesSummary(start, end.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
