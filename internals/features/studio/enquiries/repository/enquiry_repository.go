package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"fitstudio_backend/internals/features/studio/enquiries/dto"
	"fitstudio_backend/internals/features/studio/enquiries/model"
)

type EnquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

func (r *EnquiryRepository) Create(ctx context.Context, m *model.EnquiryModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *EnquiryRepository) List(ctx context.Context, q dto.ListEnquiriesQuery, skip, limit int) ([]model.EnquiryModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.EnquiryModel{})
	if s := strings.TrimSpace(q.Status); s != "" {
		tx = tx.Where("status = ?", s)
	}
	if s := strings.TrimSpace(q.EnquiryType); s != "" {
		tx = tx.Where("enquiry_type = ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]model.EnquiryModel, 0, limit)
	if err := tx.Order("created_at DESC").Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
