package handler

import (
	"net/http"
	"strconv"

	"campusbuild/internal/models"
	"campusbuild/internal/realtime"
	"campusbuild/pkg/database"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	Hub *realtime.Hub
}

func (h *ConsultationHandler) ListConsultations(c *gin.Context) {
	query := database.DB.Preload("Assigned").Order("created_at desc")
	if status := c.Query("meeting_status"); status != "" {
		query = query.Where("meeting_status = ?", status)
	}

	var consultations []models.Consultation
	if err := query.Find(&consultations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consultations"})
		return
	}
	c.JSON(http.StatusOK, consultations)
}

func (h *ConsultationHandler) patchConsultation(c *gin.Context, fields map[string]interface{}) {
	id := c.Param("id")

	var consultation models.Consultation
	if err := database.DB.First(&consultation, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
		return
	}

	if err := database.DB.Model(&consultation).Updates(fields).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update consultation"})
		return
	}

	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionConsultations, Action: realtime.ActionUpdate, ID: consultation.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Consultation updated"})
}

// AssignConsultant links an employee as the consultant; null unassigns.
func (h *ConsultationHandler) AssignConsultant(c *gin.Context) {
	var req struct {
		AssignedID *uint `json:"assigned_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AssignedID != nil {
		var employee models.Employee
		if err := database.DB.First(&employee, *req.AssignedID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Employee not found"})
			return
		}
	}

	h.patchConsultation(c, map[string]interface{}{"assigned_id": req.AssignedID})
}

// UpdateMeetingLink sets the link and optionally flips the link-sent flag in
// the same merge.
func (h *ConsultationHandler) UpdateMeetingLink(c *gin.Context) {
	var req struct {
		MeetingLink    string  `json:"meeting_link" binding:"required"`
		LinkSentStatus *string `json:"link_sent_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{"meeting_link": req.MeetingLink}
	if req.LinkSentStatus != nil {
		if *req.LinkSentStatus != models.LinkSent && *req.LinkSentStatus != models.LinkNotSent {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link sent status"})
			return
		}
		fields["link_sent_status"] = *req.LinkSentStatus
	}

	h.patchConsultation(c, fields)
}

func (h *ConsultationHandler) UpdateMeetingStatus(c *gin.Context) {
	var req struct {
		MeetingStatus string `json:"meeting_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MeetingStatus != models.MeetingPending && req.MeetingStatus != models.MeetingCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting status"})
		return
	}
	h.patchConsultation(c, map[string]interface{}{"meeting_status": req.MeetingStatus})
}

func (h *ConsultationHandler) DeleteConsultation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid consultation id"})
		return
	}

	if err := database.DB.Delete(&models.Consultation{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete consultation"})
		return
	}

	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionConsultations, Action: realtime.ActionDelete, ID: uint(id)})
	c.JSON(http.StatusOK, gin.H{"message": "Consultation deleted"})
}
