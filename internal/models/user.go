package models

import (
	"time"
)

// User is an admin dashboard account. Role names resolve to capabilities
// through the authz policy table; no capabilities are stored here.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:150;unique;not null" json:"email"`
	Name         string    `gorm:"size:100" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:50;not null" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LoginHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	LoginTime time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"login_time"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
}
