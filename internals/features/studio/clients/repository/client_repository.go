package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/studio/clients/dto"
	"fitstudio_backend/internals/features/studio/clients/model"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) List(ctx context.Context, q dto.ListClientsQuery, skip, limit int) ([]model.ClientModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.ClientModel{})
	if s := strings.TrimSpace(q.Status); s != "" {
		tx = tx.Where("status = ?", s)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]model.ClientModel, 0, limit)
	if err := tx.Order("created_at DESC").Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ClientModel, error) {
	var c model.ClientModel
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*model.ClientModel, error) {
	var c model.ClientModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) GetByPhone(ctx context.Context, phone string) (*model.ClientModel, error) {
	var c model.ClientModel
	if err := r.db.WithContext(ctx).
		Where("phone = ?", strings.TrimSpace(phone)).
		Order("created_at ASC").
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *model.ClientModel) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Update applies the given columns and returns the fresh row.
func (r *ClientRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.ClientModel, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.ClientModel{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

// Enroll appends a course id to enrolled_courses once.
func (r *ClientRepository) Enroll(ctx context.Context, id uuid.UUID, courseID string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE clients
		   SET enrolled_courses = array_append(enrolled_courses, ?::text),
		       updated_at = now()
		 WHERE id = ? AND NOT (? = ANY(enrolled_courses))`,
		courseID, id, courseID).Error
}
