package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"fitstudio_backend/internals/features/studio/attendance/dto"
	"fitstudio_backend/internals/features/studio/attendance/model"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, m *model.AttendanceModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *AttendanceRepository) List(ctx context.Context, q dto.ListAttendanceQuery, skip, limit int) ([]model.AttendanceModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.AttendanceModel{})
	if q.ClientID != nil {
		tx = tx.Where("client_id = ?", *q.ClientID)
	}
	if q.ClassID != nil {
		tx = tx.Where("class_id = ?", *q.ClassID)
	}
	if q.CourseID != nil {
		tx = tx.Where("course_id = ?", *q.CourseID)
	}
	if s := strings.TrimSpace(q.Status); s != "" {
		tx = tx.Where("status = ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]model.AttendanceModel, 0, limit)
	if err := tx.Order("date DESC").Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
