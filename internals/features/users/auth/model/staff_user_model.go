package model

import (
	"time"

	"github.com/google/uuid"
)

type StaffRole string

const (
	RoleAdmin StaffRole = "admin"
	RoleStaff StaffRole = "staff"
)

type StaffUserModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name         string    `gorm:"column:name;size:100;not null" json:"name"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:uq_staff_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Role         StaffRole `gorm:"column:role;size:20;not null;default:'staff'" json:"role"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StaffUserModel) TableName() string { return "staff_users" }
