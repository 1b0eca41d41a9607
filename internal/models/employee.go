package models

import (
	"time"
)

type Employee struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:100;not null" json:"name"`
	Age            int    `json:"age"`
	Position       string `gorm:"size:100" json:"position"`
	Specialization string `gorm:"size:150" json:"specialization"`
	// Salary is untracked when nil; rollups treat that as zero.
	Salary    *float64  `gorm:"type:decimal(10,2)" json:"salary,omitempty"`
	Email     string    `gorm:"size:150" json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
