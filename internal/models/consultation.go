package models

import (
	"time"
)

const (
	MeetingPending   = "Pending"
	MeetingCompleted = "Completed"

	LinkSent    = "Sent"
	LinkNotSent = "Not Sent"
)

type Consultation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:150" json:"customer_email"`
	CustomerPhone string `gorm:"size:15" json:"customer_phone"`

	ProjectTopic  string `gorm:"size:200;not null" json:"project_topic"`
	PreferredTime string `gorm:"size:100" json:"preferred_time"`

	AssignedID *uint     `json:"assigned_id"`
	Assigned   *Employee `gorm:"foreignKey:AssignedID" json:"assigned,omitempty"`

	MeetingLink    string `gorm:"size:255" json:"meeting_link"`
	MeetingStatus  string `gorm:"size:20;default:'Pending'" json:"meeting_status"`
	LinkSentStatus string `gorm:"size:20;default:'Not Sent'" json:"link_sent_status"`

	CreatedAt time.Time `json:"created_at"`
}

// NewConsultation applies the public-submission defaults.
func NewConsultation(c Contact, topic, preferredTime string) Consultation {
	return Consultation{
		CustomerName:   c.Name,
		CustomerEmail:  c.Email,
		CustomerPhone:  c.Phone,
		ProjectTopic:   topic,
		PreferredTime:  preferredTime,
		MeetingStatus:  MeetingPending,
		LinkSentStatus: LinkNotSent,
	}
}
