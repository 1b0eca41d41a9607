package handler

import (
	"net/http"
	"strconv"

	"campusbuild/internal/models"
	"campusbuild/internal/realtime"
	"campusbuild/pkg/database"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	Hub *realtime.Hub
}

type ProjectRequest struct {
	Title          string   `json:"title" binding:"required"`
	Category       string   `json:"category" binding:"required"`
	Price          float64  `json:"price" binding:"gte=0"`
	Image          string   `json:"image"`
	Tags           []string `json:"tags"`
	Description    string   `json:"description"`
	BundleIncluded []string `json:"bundle_included"`
	IsActive       *bool    `json:"is_active"`
}

func (r *ProjectRequest) toModel() models.Project {
	p := models.Project{
		Title:          r.Title,
		Category:       r.Category,
		Price:          r.Price,
		Image:          r.Image,
		Tags:           r.Tags,
		Description:    r.Description,
		BundleIncluded: r.BundleIncluded,
		IsActive:       true,
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	return p
}

// ListProjects is the admin catalog view: inactive rows included.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	query := database.DB.Order("created_at desc")
	if cat := c.Query("category"); cat != "" {
		query = query.Where("category = ?", cat)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	project := req.toModel()
	if err := database.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionProjects, Action: realtime.ActionCreate, ID: project.ID})
	c.JSON(http.StatusCreated, gin.H{"message": "Project created", "id": project.ID})
}

// BulkCreateProjects inserts a batch in one transaction. One bad row rejects
// the whole batch so a half-imported catalog never goes live.
func (h *ProjectHandler) BulkCreateProjects(c *gin.Context) {
	var req struct {
		Projects []ProjectRequest `json:"projects" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projects := make([]models.Project, 0, len(req.Projects))
	for i, pr := range req.Projects {
		if pr.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title", "row": i})
			return
		}
		if !models.ValidCategory(pr.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category", "row": i})
			return
		}
		projects = append(projects, pr.toModel())
	}

	tx := database.DB.Begin()
	for i := range projects {
		if err := tx.Create(&projects[i]).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Bulk upload failed, no projects were created"})
			return
		}
	}
	tx.Commit()

	for i := range projects {
		h.Hub.Publish(realtime.Event{Collection: realtime.CollectionProjects, Action: realtime.ActionCreate, ID: projects[i].ID})
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Projects created", "count": len(projects)})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req struct {
		Title          *string   `json:"title"`
		Category       *string   `json:"category"`
		Price          *float64  `json:"price"`
		Image          *string   `json:"image"`
		Tags           *[]string `json:"tags"`
		Description    *string   `json:"description"`
		BundleIncluded *[]string `json:"bundle_included"`
		IsActive       *bool     `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project
	if err := database.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Category != nil {
		if !models.ValidCategory(*req.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		project.Category = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
			return
		}
		project.Price = *req.Price
	}
	if req.Image != nil {
		project.Image = *req.Image
	}
	if req.Tags != nil {
		project.Tags = *req.Tags
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.BundleIncluded != nil {
		project.BundleIncluded = *req.BundleIncluded
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionProjects, Action: realtime.ActionUpdate, ID: project.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

// DeleteProject soft-deletes so existing order lines keep resolving.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	if err := database.DB.Delete(&models.Project{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionProjects, Action: realtime.ActionDelete, ID: uint(id)})
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
