package handlers

import (
	"net/http"
	"time"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandler(employeeService services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "true") == "true"

	employees, err := h.employeeService.GetEmployees(c.Query("role"), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := parseID(c, "employee_id")
	if err != nil {
		return
	}

	employee, err := h.employeeService.GetEmployee(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Role        string `json:"role"`
		ContactInfo string `json:"contact_info"`
		Credentials string `json:"credentials"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	employee, err := h.employeeService.CreateEmployee(req.Name, req.Role, req.ContactInfo, req.Credentials)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := parseID(c, "employee_id")
	if err != nil {
		return
	}

	var update services.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateShift(c *gin.Context) {
	id, err := parseID(c, "employee_id")
	if err != nil {
		return
	}

	var req struct {
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
		ShiftType string    `json:"shift_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	shift, err := h.employeeService.CreateShift(id, req.StartTime, req.EndTime, req.ShiftType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shift)
}

func (h *EmployeeHandler) GetShifts(c *gin.Context) {
	id, err := parseID(c, "employee_id")
	if err != nil {
		return
	}

	shifts, err := h.employeeService.GetShifts(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}
