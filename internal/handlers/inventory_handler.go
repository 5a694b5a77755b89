package handlers

import (
	"net/http"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) GetInventoryItems(c *gin.Context) {
	lowStockOnly := c.Query("low_stock") == "true"

	items, err := h.inventoryService.GetInventoryItems(lowStockOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) GetInventoryItem(c *gin.Context) {
	id, err := parseID(c, "inventory_item_id")
	if err != nil {
		return
	}

	item, err := h.inventoryService.GetInventoryItem(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var req struct {
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
		CostPerUnit  float64 `json:"cost_per_unit"`
		MinThreshold float64 `json:"min_threshold"`
		SupplierInfo string  `json:"supplier_info"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.inventoryService.CreateInventoryItem(
		req.Name, req.Quantity, req.Unit, req.CostPerUnit, req.MinThreshold, req.SupplierInfo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) AdjustInventoryLevel(c *gin.Context) {
	id, err := parseID(c, "inventory_item_id")
	if err != nil {
		return
	}

	var req struct {
		Delta float64 `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.inventoryService.AdjustInventoryLevel(id, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) LinkMenuItem(c *gin.Context) {
	var req struct {
		MenuItemID      uint    `json:"menu_item_id"`
		InventoryItemID uint    `json:"inventory_item_id"`
		Quantity        float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	requirement, err := h.inventoryService.LinkMenuItemToInventory(req.MenuItemID, req.InventoryItemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, requirement)
}
