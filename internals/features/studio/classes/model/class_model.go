package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassStatus string

const (
	ClassStatusScheduled ClassStatus = "scheduled"
	ClassStatusCompleted ClassStatus = "completed"
	ClassStatusCancelled ClassStatus = "cancelled"
)

// ClassModel is one dated session of a course.
type ClassModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;not null;index:idx_classes_course_id" json:"course_id"`

	Name            string      `gorm:"column:name;size:100;not null" json:"name"`
	Instructor      string      `gorm:"column:instructor;size:100;not null;index:idx_classes_instructor" json:"instructor"`
	Date            time.Time   `gorm:"column:date;not null;index:idx_classes_date" json:"date"`
	StartTime       string      `gorm:"column:start_time;size:5;not null" json:"start_time"`
	DurationMinutes int         `gorm:"column:duration_minutes;not null" json:"duration_minutes"`
	Capacity        int         `gorm:"column:capacity;not null" json:"capacity"`
	EnrolledCount   int         `gorm:"column:enrolled_count;not null;default:0" json:"enrolled_count"`
	Status          ClassStatus `gorm:"column:status;size:20;not null;default:'scheduled'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ClassModel) TableName() string { return "classes" }
