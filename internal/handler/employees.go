package handler

import (
	"net/http"
	"strconv"
	"strings"

	"campusbuild/internal/models"
	"campusbuild/internal/realtime"
	"campusbuild/pkg/database"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	Hub *realtime.Hub
}

type CreateEmployeeRequest struct {
	Name           string   `json:"name" binding:"required"`
	Age            int      `json:"age" binding:"gte=0"`
	Position       string   `json:"position" binding:"required"`
	Specialization string   `json:"specialization"`
	Salary         *float64 `json:"salary"`
	Email          string   `json:"email"`
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee := models.Employee{
		Name:           req.Name,
		Age:            req.Age,
		Position:       req.Position,
		Specialization: req.Specialization,
		Salary:         req.Salary,
		Email:          strings.ToLower(req.Email),
	}
	if err := database.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionEmployees, Action: realtime.ActionCreate, ID: employee.ID})
	c.JSON(http.StatusCreated, gin.H{"message": "Employee created", "id": employee.ID})
}

// ListEmployees serves the general roster. Salaries are scrubbed here; the
// salary listing is a separate, separately-gated endpoint.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := database.DB.Order("name").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}
	for i := range employees {
		employees[i].Salary = nil
	}
	c.JSON(http.StatusOK, employees)
}

// ListSalaries is the payroll view: the full roster including salaries.
func (h *EmployeeHandler) ListSalaries(c *gin.Context) {
	var employees []models.Employee
	if err := database.DB.Order("name").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch salaries"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req struct {
		Name           *string `json:"name"`
		Age            *int    `json:"age"`
		Position       *string `json:"position"`
		Specialization *string `json:"specialization"`
		Email          *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	if req.Specialization != nil {
		fields["specialization"] = *req.Specialization
	}
	if req.Email != nil {
		fields["email"] = strings.ToLower(*req.Email)
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided"})
		return
	}

	h.patchEmployee(c, fields)
}

// UpdateSalary sets or clears the tracked salary; null returns the employee
// to untracked.
func (h *EmployeeHandler) UpdateSalary(c *gin.Context) {
	var req struct {
		Salary *float64 `json:"salary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Salary != nil && *req.Salary < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Salary cannot be negative"})
		return
	}

	h.patchEmployee(c, map[string]interface{}{"salary": req.Salary})
}

func (h *EmployeeHandler) patchEmployee(c *gin.Context, fields map[string]interface{}) {
	id := c.Param("id")

	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	if err := database.DB.Model(&employee).Updates(fields).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionEmployees, Action: realtime.ActionUpdate, ID: employee.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated"})
}

// DeleteEmployee also unlinks the employee from any orders or consultations
// still pointing at them, in the same transaction.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	tx := database.DB.Begin()
	if err := tx.Model(&models.Order{}).Where("assigned_id = ?", id).Update("assigned_id", nil).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}
	if err := tx.Model(&models.Consultation{}).Where("assigned_id = ?", id).Update("assigned_id", nil).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}
	if err := tx.Delete(&models.Employee{}, id).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}
	tx.Commit()

	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionEmployees, Action: realtime.ActionDelete, ID: uint(id)})
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// MySalary returns the caller's own salary card, matched by account email.
func (h *EmployeeHandler) MySalary(c *gin.Context) {
	email := c.GetString("email")

	var employee models.Employee
	if err := database.DB.Where("email = ?", strings.ToLower(email)).First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No salary card found for this account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":     employee.Name,
		"position": employee.Position,
		"salary":   employee.Salary,
	})
}
