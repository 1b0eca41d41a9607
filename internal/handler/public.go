package handler

import (
	"fmt"
	"net/http"
	"time"

	"campusbuild/config"
	"campusbuild/internal/metrics"
	"campusbuild/internal/models"
	"campusbuild/internal/realtime"
	"campusbuild/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PublicHandler struct {
	Hub *realtime.Hub
}

func (h *PublicHandler) GetSiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, config.AppConfig.Site)
}

func (h *PublicHandler) ListProjects(c *gin.Context) {
	query := database.DB.Where("is_active = ?", true)
	if cat := c.Query("category"); cat != "" {
		query = query.Where("category = ?", cat)
	}
	if tag := c.Query("tag"); tag != "" {
		// Tags are stored as a JSON array; match the quoted element.
		query = query.Where("tags LIKE ?", "%\""+tag+"\"%")
	}

	var projects []models.Project
	if err := query.Order("created_at desc").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *PublicHandler) GetProject(c *gin.Context) {
	var project models.Project
	if err := database.DB.Where("is_active = ?", true).First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// Order ref format: ORD-YYYYMMDD-SEQ, where SEQ is the row id.
func orderRef(id uint) string {
	return fmt.Sprintf("ORD-%s-%04d", time.Now().Format("20060102"), id)
}

// createOrderWithRef inserts the order and derives its public reference from
// the assigned row id, in one transaction. Concurrent submissions get distinct
// ids, so refs cannot collide.
func createOrderWithRef(order *models.Order) error {
	order.OrderRef = "pending-" + uuid.NewString()

	tx := database.DB.Begin()
	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return err
	}
	order.OrderRef = orderRef(order.ID)
	if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("order_ref", order.OrderRef).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

type SubmitCustomOrderRequest struct {
	CustomerName         string `json:"customer_name" binding:"required"`
	CustomerEmail        string `json:"customer_email" binding:"required,email"`
	CustomerPhone        string `json:"customer_phone" binding:"required"`
	Address              string `json:"address"`
	ProjectTitle         string `json:"project_title" binding:"required"`
	Domain               string `json:"domain" binding:"required"`
	DetailedRequirements string `json:"detailed_requirements" binding:"required"`
	Deadline             string `json:"deadline"` // YYYY-MM-DD
}

func (h *PublicHandler) SubmitCustomOrder(c *gin.Context) {
	var req SubmitCustomOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline, expected YYYY-MM-DD"})
		return
	}

	order := models.NewCustomOrder(
		models.Contact{Name: req.CustomerName, Email: req.CustomerEmail, Phone: req.CustomerPhone, Address: req.Address},
		req.ProjectTitle, req.Domain, req.DetailedRequirements, deadline)

	if err := createOrderWithRef(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit order"})
		return
	}

	metrics.OrdersCreated.WithLabelValues("custom").Inc()
	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionOrders, Action: realtime.ActionCreate, ID: order.ID})

	c.JSON(http.StatusCreated, gin.H{"message": "Order submitted successfully", "order_ref": order.OrderRef})
}

type ScheduleConsultationRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	ProjectTopic  string `json:"project_topic" binding:"required"`
	PreferredTime string `json:"preferred_time" binding:"required"`
}

func (h *PublicHandler) ScheduleConsultation(c *gin.Context) {
	var req ScheduleConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consultation := models.NewConsultation(
		models.Contact{Name: req.CustomerName, Email: req.CustomerEmail, Phone: req.CustomerPhone},
		req.ProjectTopic, req.PreferredTime)

	if err := database.DB.Create(&consultation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule consultation"})
		return
	}

	metrics.ConsultationsScheduled.Inc()
	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionConsultations, Action: realtime.ActionCreate, ID: consultation.ID})

	c.JSON(http.StatusCreated, gin.H{"message": "Consultation scheduled successfully", "id": consultation.ID})
}

func parseDeadline(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
