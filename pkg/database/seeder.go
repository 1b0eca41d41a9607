package database

import (
	"strings"

	"campusbuild/config"
	"campusbuild/internal/models"
	"campusbuild/internal/utils"
	"campusbuild/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedAdminRoster provisions the fixed admin accounts from config. Passwords
// from the roster are used only when the user row does not exist yet, so a
// changed password in config never overwrites one an admin has rotated.
func SeedAdminRoster() {
	for _, entry := range config.AppConfig.Roster {
		email := strings.ToLower(entry.Email)
		if email == "" {
			continue
		}

		var user models.User
		err := DB.Where("email = ?", email).First(&user).Error
		if err == nil {
			// Keep the role in sync with the roster; everything else is
			// owned by the account itself.
			if user.Role != entry.Role {
				DB.Model(&user).Update("role", entry.Role)
			}
			continue
		}
		if err != gorm.ErrRecordNotFound {
			logger.Log.Error("failed to look up roster user", zap.String("email", email), zap.Error(err))
			continue
		}

		hashed, err := utils.HashPassword(entry.Password)
		if err != nil {
			logger.Log.Error("failed to hash roster password", zap.String("email", email), zap.Error(err))
			continue
		}

		user = models.User{
			Email:        email,
			Name:         entry.Name,
			PasswordHash: hashed,
			Role:         entry.Role,
			IsActive:     true,
		}
		if err := DB.Create(&user).Error; err != nil {
			logger.Log.Error("failed to seed roster user", zap.String("email", email), zap.Error(err))
			continue
		}
		logger.Log.Info("seeded admin account", zap.String("email", email), zap.String("role", entry.Role))
	}
}
