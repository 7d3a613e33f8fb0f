package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitstudio_backend/internals/features/studio/classes/dto"
	"fitstudio_backend/internals/features/studio/classes/model"
	courseModel "fitstudio_backend/internals/features/studio/courses/model"
	helper "fitstudio_backend/internals/helpers"
)

type Store interface {
	List(ctx context.Context, q dto.ListClassesQuery, skip, limit int) ([]model.ClassModel, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClassModel, error)
	Create(ctx context.Context, m *model.ClassModel) error
}

type CourseFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*courseModel.CourseModel, error)
}

type Service struct {
	store   Store
	courses CourseFinder
	log     *zap.Logger
}

func New(store Store, courses CourseFinder, log *zap.Logger) *Service {
	return &Service{store: store, courses: courses, log: log.Named("classes")}
}

func (s *Service) List(ctx context.Context, q dto.ListClassesQuery, w helper.Window) ([]model.ClassModel, int64, error) {
	rows, total, err := s.store.List(ctx, q, w.Skip, w.Limit)
	if err != nil {
		return nil, 0, helper.Internal("list classes", err)
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.ClassModel, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, helper.FromStore(err, "Class not found")
	}
	return m, nil
}

func (s *Service) Create(ctx context.Context, req dto.CreateClassRequest) (*model.ClassModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	courseID, err := helper.ParseID(req.CourseID, "course")
	if err != nil {
		return nil, err
	}
	date, err := helper.ParseDate(req.Date)
	if err != nil {
		return nil, helper.FieldError("date", "must be RFC3339 or YYYY-MM-DD")
	}
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, helper.FromStore(err, "Course not found")
	}

	m := &model.ClassModel{
		CourseID:        course.ID,
		Name:            course.Name,
		Instructor:      course.Instructor,
		Date:            date,
		StartTime:       strings.TrimSpace(req.StartTime),
		DurationMinutes: course.DurationMinutes,
		Capacity:        course.Capacity,
		Status:          model.ClassStatusScheduled,
	}
	if req.Name != nil {
		m.Name = strings.TrimSpace(*req.Name)
	}
	if req.Instructor != nil {
		m.Instructor = strings.TrimSpace(*req.Instructor)
	}
	if req.DurationMinutes != nil {
		m.DurationMinutes = *req.DurationMinutes
	}
	if req.Capacity != nil {
		m.Capacity = *req.Capacity
	}

	if err := s.store.Create(ctx, m); err != nil {
		return nil, helper.Internal("create class", err)
	}
	s.log.Info("class scheduled",
		zap.String("class_id", m.ID.String()),
		zap.String("course_id", course.ID.String()),
		zap.Time("date", m.Date))
	return m, nil
}
