package handler

import (
	"net/http"
	"strings"

	"campusbuild/internal/authz"
	"campusbuild/internal/metrics"
	"campusbuild/internal/models"
	"campusbuild/internal/ratelimit"
	"campusbuild/internal/utils"
	"campusbuild/pkg/database"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	Policy  *authz.Policy
	Limiter *ratelimit.Limiter
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(req.Email)

	if !h.Limiter.Allow(c.Request.Context(), email+":"+c.ClientIP()) {
		metrics.LoginAttempts.WithLabelValues("rate_limited").Inc()
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many sign-in attempts. Try again in a few minutes"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		metrics.LoginAttempts.WithLabelValues("not_found").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No account found for this email"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		metrics.LoginAttempts.WithLabelValues("wrong_password").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	metrics.LoginAttempts.WithLabelValues("ok").Inc()

	// Audit trail; failure here must not fail the sign-in.
	go func(uid uint, ip string) {
		database.DB.Create(&models.LoginHistory{UserID: uid, IPAddress: ip})
	}(user.ID, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"token":        token,
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"role":         user.Role,
		"capabilities": h.Policy.Capabilities(user.Email),
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	var req struct {
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", hashedPassword).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
