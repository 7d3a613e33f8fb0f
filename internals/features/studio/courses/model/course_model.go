package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type CourseLevel string
type CourseStatus string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
)

const (
	CourseStatusActive     CourseStatus = "active"
	CourseStatusInactive   CourseStatus = "inactive"
	CourseStatusComingSoon CourseStatus = "coming_soon"
)

const (
	DefaultCategory = "fitness"
	DefaultCapacity = 20
)

// ScheduleSlot is one recurring weekly session, e.g. Monday 07:00 for 60 min.
type ScheduleSlot struct {
	Day      string `json:"day" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Duration int    `json:"duration" validate:"gt=0,lte=240"`
}

// PackageOption is a prepaid bundle of sessions.
type PackageOption struct {
	Name         string  `json:"name" validate:"required"`
	Sessions     int     `json:"sessions" validate:"gt=0"`
	Price        float64 `json:"price" validate:"gt=0"`
	ValidityDays int     `json:"validity_days" validate:"gt=0"`
}

type CourseModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`

	Name        string       `gorm:"column:name;size:100;not null;index:idx_courses_name" json:"name"`
	Description *string      `gorm:"column:description" json:"description,omitempty"`
	Instructor  string       `gorm:"column:instructor;size:100;not null;index:idx_courses_instructor" json:"instructor"`
	Category    string       `gorm:"column:category;size:50;not null;default:'fitness'" json:"category"`
	Level       CourseLevel  `gorm:"column:level;size:20;not null;default:'beginner'" json:"level"`
	Status      CourseStatus `gorm:"column:status;size:20;not null;default:'active';index:idx_courses_status" json:"status"`

	DurationMinutes int     `gorm:"column:duration_minutes;not null" json:"duration_minutes"`
	Capacity        int     `gorm:"column:capacity;not null;default:20" json:"capacity"`
	PricePerSession float64 `gorm:"column:price_per_session;type:numeric(12,2);not null" json:"price_per_session"`

	PackageOptions datatypes.JSONSlice[PackageOption] `gorm:"column:package_options;type:jsonb;not null;default:'[]'" json:"package_options"`
	Schedule       datatypes.JSONSlice[ScheduleSlot]  `gorm:"column:schedule;type:jsonb;not null;default:'[]'" json:"schedule"`
	Requirements   pq.StringArray                     `gorm:"column:requirements;type:text[];not null;default:'{}'" json:"requirements"`
	Tags           pq.StringArray                     `gorm:"column:tags;type:text[];not null;default:'{}'" json:"tags"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string { return "courses" }
