package model

import (
	"time"

	"github.com/google/uuid"
)

type EnquiryStatus string

const (
	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusConverted EnquiryStatus = "converted"
	EnquiryStatusClosed    EnquiryStatus = "closed"
)

const DefaultSource = "website"

type EnquiryModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`

	Name        string `gorm:"column:name;size:100;not null" json:"name"`
	Email       string `gorm:"column:email;size:255;not null" json:"email"`
	Phone       string `gorm:"column:phone;size:20;not null" json:"phone"`
	EnquiryType string `gorm:"column:enquiry_type;size:50;not null" json:"enquiry_type"`
	Message     string `gorm:"column:message;not null" json:"message"`

	Status       EnquiryStatus `gorm:"column:status;size:20;not null;default:'new';index:idx_enquiries_status" json:"status"`
	Source       string        `gorm:"column:source;size:50;not null;default:'website'" json:"source"`
	AssignedTo   *string       `gorm:"column:assigned_to;size:100" json:"assigned_to,omitempty"`
	FollowUpDate *time.Time    `gorm:"column:follow_up_date" json:"follow_up_date,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EnquiryModel) TableName() string { return "enquiries" }
