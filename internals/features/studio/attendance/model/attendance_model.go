package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePresent   AttendanceStatus = "present"
	AttendanceAbsent    AttendanceStatus = "absent"
	AttendanceCancelled AttendanceStatus = "cancelled"
	AttendanceMakeup    AttendanceStatus = "makeup"
)

type AttendanceModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	ClientID uuid.UUID `gorm:"column:client_id;type:uuid;not null;uniqueIndex:uq_attendance_client_class,priority:1" json:"client_id"`
	ClassID  uuid.UUID `gorm:"column:class_id;type:uuid;not null;uniqueIndex:uq_attendance_client_class,priority:2" json:"class_id"`
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;not null" json:"course_id"`

	Date            time.Time        `gorm:"column:date;not null;index:idx_attendance_date" json:"date"`
	Status          AttendanceStatus `gorm:"column:status;size:20;not null;default:'present'" json:"status"`
	CheckInTime     *time.Time       `gorm:"column:check_in_time" json:"check_in_time,omitempty"`
	CheckOutTime    *time.Time       `gorm:"column:check_out_time" json:"check_out_time,omitempty"`
	Notes           *string          `gorm:"column:notes" json:"notes,omitempty"`
	InstructorNotes *string          `gorm:"column:instructor_notes" json:"instructor_notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }
