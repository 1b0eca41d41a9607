package handler

import (
	"fmt"
	"net/http"
	"testing"

	"campusbuild/internal/models"
	"campusbuild/internal/realtime"
	"campusbuild/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMeetingStatusKeepsLinkAndAssignment(t *testing.T) {
	setupTestDB(t)
	emp := models.Employee{Name: "Rahul", Position: "Consultant"}
	require.NoError(t, database.DB.Create(&emp).Error)

	consultation := models.NewConsultation(
		models.Contact{Name: "Divya", Email: "divya@example.com"},
		"Drone swarm coordination", "Saturday morning")
	consultation.AssignedID = &emp.ID
	consultation.MeetingLink = "https://meet.example.com/abc"
	consultation.LinkSentStatus = models.LinkSent
	require.NoError(t, database.DB.Create(&consultation).Error)

	h := &ConsultationHandler{Hub: realtime.NewHub()}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/consultations/:id/meeting-status", h.UpdateMeetingStatus)

	w := putJSON(t, r,
		fmt.Sprintf("/consultations/%d/meeting-status", consultation.ID),
		`{"meeting_status":"Completed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Consultation
	require.NoError(t, database.DB.First(&got, consultation.ID).Error)
	assert.Equal(t, models.MeetingCompleted, got.MeetingStatus)

	// The fields outside the merge map are untouched.
	assert.Equal(t, "https://meet.example.com/abc", got.MeetingLink)
	assert.Equal(t, models.LinkSent, got.LinkSentStatus)
	require.NotNil(t, got.AssignedID)
	assert.Equal(t, emp.ID, *got.AssignedID)
}
