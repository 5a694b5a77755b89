package handlers

import (
	"net/http"
	"strconv"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	tableService services.TableService
}

func NewTableHandler(tableService services.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

func (h *TableHandler) GetTables(c *gin.Context) {
	tables, err := h.tableService.GetAllTables(c.Query("section"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *TableHandler) GetAvailableTables(c *gin.Context) {
	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "party_size must be an integer"})
		return
	}

	tables, err := h.tableService.GetAvailableTables(partySize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *TableHandler) GetTable(c *gin.Context) {
	id, err := parseID(c, "table_id")
	if err != nil {
		return
	}

	table, err := h.tableService.GetTable(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *TableHandler) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber int    `json:"table_number"`
		Capacity    int    `json:"capacity"`
		Section     string `json:"section"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	table, err := h.tableService.CreateTable(req.TableNumber, req.Capacity, req.Section, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *TableHandler) UpdateTable(c *gin.Context) {
	id, err := parseID(c, "table_id")
	if err != nil {
		return
	}

	var update services.TableUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	table, err := h.tableService.UpdateTable(id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *TableHandler) UpdateTableStatus(c *gin.Context) {
	id, err := parseID(c, "table_id")
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

	table, err := h.tableService.UpdateTableStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// parseID reads a uint path parameter; on failure it writes the 400 itself
// and returns a non-nil error so callers just return.
func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": param + " must be a positive integer"})
		return 0, err
	}
	return uint(id), nil
}
