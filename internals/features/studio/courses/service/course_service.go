package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitstudio_backend/internals/features/studio/courses/dto"
	"fitstudio_backend/internals/features/studio/courses/model"
	helper "fitstudio_backend/internals/helpers"
	"fitstudio_backend/internals/helpers/logger"
)

const msgCourseNotFound = "Course not found"

type Store interface {
	List(ctx context.Context, q dto.ListCoursesQuery, skip, limit int) ([]model.CourseModel, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.CourseModel, error)
	FindByName(ctx context.Context, name string) (*model.CourseModel, error)
	Create(ctx context.Context, c *model.CourseModel) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.CourseModel, error)
}

type Service struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log.Named("courses")}
}

func (s *Service) List(ctx context.Context, q dto.ListCoursesQuery, w helper.Window) ([]model.CourseModel, int64, error) {
	rows, total, err := s.store.List(ctx, q, w.Skip, w.Limit)
	if err != nil {
		return nil, 0, helper.Internal("list courses", err)
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.CourseModel, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, helper.FromStore(err, msgCourseNotFound)
	}
	return c, nil
}

// FindByName resolves a free-text service name to a course.
func (s *Service) FindByName(ctx context.Context, name string) (*model.CourseModel, error) {
	c, err := s.store.FindByName(ctx, name)
	if err != nil {
		return nil, helper.FromStore(err, "Course '"+name+"' not found")
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req dto.CreateCourseRequest) (*model.CourseModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	c := req.ToModel()
	if err := s.store.Create(ctx, c); err != nil {
		return nil, helper.Internal("create course", err)
	}
	s.log.Info("course created",
		zap.String(logger.FieldOperation, "create_course"),
		zap.String("course_id", c.ID.String()))
	return c, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCourseRequest) (*model.CourseModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	c, err := s.store.Update(ctx, id, req.Updates())
	if err != nil {
		return nil, helper.FromStore(err, msgCourseNotFound)
	}
	return c, nil
}
