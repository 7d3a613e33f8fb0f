package dto

import (
	"github.com/google/uuid"
)

// CreateAttendanceRequest: course_id and date fall back to the class's.
type CreateAttendanceRequest struct {
	ClientID        string  `json:"client_id" validate:"required"`
	ClassID         string  `json:"class_id" validate:"required"`
	CourseID        *string `json:"course_id,omitempty"`
	Date            *string `json:"date,omitempty"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=present absent cancelled makeup"`
	CheckInTime     *string `json:"check_in_time,omitempty"`
	CheckOutTime    *string `json:"check_out_time,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	InstructorNotes *string `json:"instructor_notes,omitempty"`
}

type ListAttendanceQuery struct {
	ClientID *uuid.UUID
	ClassID  *uuid.UUID
	CourseID *uuid.UUID
	Status   string
}
