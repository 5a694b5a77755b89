package handlers

import (
	"net/http"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

func (h *MenuHandler) GetMenuItems(c *gin.Context) {
	availableOnly := c.DefaultQuery("available_only", "true") == "true"

	items, err := h.menuService.GetMenuItems(c.Query("category"), availableOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	id, err := parseID(c, "menu_item_id")
	if err != nil {
		return
	}

	item, err := h.menuService.GetMenuItem(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name            string  `json:"name"`
		Description     string  `json:"description"`
		Price           float64 `json:"price"`
		Category        string  `json:"category"`
		PrepTimeMinutes int     `json:"prep_time_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.menuService.CreateMenuItem(req.Name, req.Description, req.Price, req.Category, req.PrepTimeMinutes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	id, err := parseID(c, "menu_item_id")
	if err != nil {
		return
	}

	var update services.MenuItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.menuService.UpdateMenuItem(id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) AddCustomization(c *gin.Context) {
	id, err := parseID(c, "menu_item_id")
	if err != nil {
		return
	}

	var req struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customization, err := h.menuService.AddCustomizationOption(id, req.Name, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customization)
}

func (h *MenuHandler) GetCustomizations(c *gin.Context) {
	id, err := parseID(c, "menu_item_id")
	if err != nil {
		return
	}

	customizations, err := h.menuService.GetCustomizationOptions(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customizations)
}
