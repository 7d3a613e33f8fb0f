package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateClassRequest schedules a session. Name, instructor, duration and
// capacity default to the course's values when omitted.
type CreateClassRequest struct {
	CourseID        string  `json:"course_id" validate:"required"`
	Name            *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Instructor      *string `json:"instructor,omitempty" validate:"omitempty,min=2,max=100"`
	Date            string  `json:"date" validate:"required"`
	StartTime       string  `json:"start_time" validate:"required,datetime=15:04"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,gt=0,lte=240"`
	Capacity        *int    `json:"capacity,omitempty" validate:"omitempty,gt=0"`
}

type ListClassesQuery struct {
	CourseID *uuid.UUID
	Status   string
	From     *time.Time
	To       *time.Time
}
