package models

import (
	"time"

	"gorm.io/gorm"
)

// Catalog categories. Category is free-form at the DB level; handlers validate
// against this set on create/update.
const (
	CategoryIoT      = "IoT"
	CategoryHardware = "Hardware"
	CategorySoftware = "Software"
	CategoryAI       = "AI"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryIoT, CategoryHardware, CategorySoftware, CategoryAI:
		return true
	}
	return false
}

type Project struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"size:200;not null" json:"title"`
	Category       string         `gorm:"size:20;not null" json:"category"`
	Price          float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	Image          string         `gorm:"type:longtext" json:"image"`
	Tags           []string       `gorm:"serializer:json" json:"tags"`
	Description    string         `gorm:"type:text" json:"description"`
	BundleIncluded []string       `gorm:"serializer:json" json:"bundle_included"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
