package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/studio/classes/dto"
	"fitstudio_backend/internals/features/studio/classes/model"
)

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) List(ctx context.Context, q dto.ListClassesQuery, skip, limit int) ([]model.ClassModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.ClassModel{})
	if q.CourseID != nil {
		tx = tx.Where("course_id = ?", *q.CourseID)
	}
	if s := strings.TrimSpace(q.Status); s != "" {
		tx = tx.Where("status = ?", s)
	}
	if q.From != nil {
		tx = tx.Where("date >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("date < ?", *q.To)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]model.ClassModel, 0, limit)
	if err := tx.Order("date ASC, start_time ASC").Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassModel, error) {
	var m model.ClassModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ClassRepository) Create(ctx context.Context, m *model.ClassModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}
