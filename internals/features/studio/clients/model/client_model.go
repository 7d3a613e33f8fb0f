package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "active"
	ClientStatusInactive  ClientStatus = "inactive"
	ClientStatusSuspended ClientStatus = "suspended"
)

type ClientModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`

	Name             string     `gorm:"column:name;size:100;not null" json:"name"`
	Email            string     `gorm:"column:email;size:255;not null;uniqueIndex:uq_clients_email" json:"email"`
	Phone            string     `gorm:"column:phone;size:20;not null;index:idx_clients_phone" json:"phone"`
	DateOfBirth      *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	Address          *string    `gorm:"column:address" json:"address,omitempty"`
	EmergencyContact *string    `gorm:"column:emergency_contact" json:"emergency_contact,omitempty"`

	Status          ClientStatus   `gorm:"column:status;size:20;not null;default:'active'" json:"status"`
	EnrolledCourses pq.StringArray `gorm:"column:enrolled_courses;type:text[];not null;default:'{}'" json:"enrolled_courses"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_clients_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ClientModel) TableName() string { return "clients" }
