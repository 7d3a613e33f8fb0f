package dto

import (
	"strings"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"fitstudio_backend/internals/features/studio/courses/model"
)

/* ===============================
   REQUEST
=================================*/

type CreateCourseRequest struct {
	Name            string                `json:"name" validate:"required,min=2,max=100"`
	Description     *string               `json:"description,omitempty"`
	Instructor      string                `json:"instructor" validate:"required,min=2,max=100"`
	Category        *string               `json:"category,omitempty" validate:"omitempty,max=50"`
	Level           *string               `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationMinutes int                   `json:"duration_minutes" validate:"gt=0,lte=240"`
	Capacity        *int                  `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	PricePerSession float64               `json:"price_per_session" validate:"gt=0,cents"`
	PackageOptions  []model.PackageOption `json:"package_options,omitempty" validate:"omitempty,dive"`
	Schedule        []model.ScheduleSlot  `json:"schedule,omitempty" validate:"omitempty,dive"`
	Requirements    []string              `json:"requirements,omitempty"`
	Tags            []string              `json:"tags,omitempty"`
	Status          *string               `json:"status,omitempty" validate:"omitempty,oneof=active inactive coming_soon"`
}

func (r CreateCourseRequest) ToModel() *model.CourseModel {
	m := &model.CourseModel{
		Name:            strings.TrimSpace(r.Name),
		Description:     r.Description,
		Instructor:      strings.TrimSpace(r.Instructor),
		Category:        model.DefaultCategory,
		Level:           model.CourseLevelBeginner,
		Status:          model.CourseStatusActive,
		DurationMinutes: r.DurationMinutes,
		Capacity:        model.DefaultCapacity,
		PricePerSession: r.PricePerSession,
		PackageOptions:  datatypes.JSONSlice[model.PackageOption]{},
		Schedule:        datatypes.JSONSlice[model.ScheduleSlot]{},
		Requirements:    pq.StringArray{},
		Tags:            pq.StringArray{},
	}
	if r.Category != nil && strings.TrimSpace(*r.Category) != "" {
		m.Category = strings.TrimSpace(*r.Category)
	}
	if r.Level != nil {
		m.Level = model.CourseLevel(*r.Level)
	}
	if r.Status != nil {
		m.Status = model.CourseStatus(*r.Status)
	}
	if r.Capacity != nil {
		m.Capacity = *r.Capacity
	}
	if len(r.PackageOptions) > 0 {
		m.PackageOptions = r.PackageOptions
	}
	if len(r.Schedule) > 0 {
		m.Schedule = r.Schedule
	}
	if len(r.Requirements) > 0 {
		m.Requirements = r.Requirements
	}
	if len(r.Tags) > 0 {
		m.Tags = r.Tags
	}
	return m
}

type UpdateCourseRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description     *string  `json:"description,omitempty"`
	Instructor      *string  `json:"instructor,omitempty" validate:"omitempty,min=2,max=100"`
	Level           *string  `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,gt=0,lte=240"`
	Capacity        *int     `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	PricePerSession *float64 `json:"price_per_session,omitempty" validate:"omitempty,gt=0,cents"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive coming_soon"`
}

func (r UpdateCourseRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Instructor != nil {
		u["instructor"] = strings.TrimSpace(*r.Instructor)
	}
	if r.Level != nil {
		u["level"] = *r.Level
	}
	if r.DurationMinutes != nil {
		u["duration_minutes"] = *r.DurationMinutes
	}
	if r.Capacity != nil {
		u["capacity"] = *r.Capacity
	}
	if r.PricePerSession != nil {
		u["price_per_session"] = *r.PricePerSession
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	return u
}

/* ===============================
   QUERY
=================================*/

type ListCoursesQuery struct {
	Status     string
	Category   string
	Instructor string
	Search     string
}
