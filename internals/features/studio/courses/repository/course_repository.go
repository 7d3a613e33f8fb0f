package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/studio/courses/dto"
	"fitstudio_backend/internals/features/studio/courses/model"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) List(ctx context.Context, q dto.ListCoursesQuery, skip, limit int) ([]model.CourseModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.CourseModel{})
	if s := strings.TrimSpace(q.Status); s != "" {
		tx = tx.Where("status = ?", s)
	}
	if s := strings.TrimSpace(q.Category); s != "" {
		tx = tx.Where("category = ?", s)
	}
	if s := strings.TrimSpace(q.Instructor); s != "" {
		tx = tx.Where("instructor ILIKE ?", "%"+s+"%")
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Where("name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]model.CourseModel, 0, limit)
	if err := tx.Order("name ASC").Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CourseModel, error) {
	var c model.CourseModel
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByName matches a case-insensitive substring of the course name,
// preferring active courses and then the shortest name.
func (r *CourseRepository) FindByName(ctx context.Context, name string) (*model.CourseModel, error) {
	var c model.CourseModel
	like := "%" + escapeLike(strings.TrimSpace(name)) + "%"
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", like).
		Order("CASE WHEN status = 'active' THEN 0 ELSE 1 END, length(name), name").
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) Create(ctx context.Context, c *model.CourseModel) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.CourseModel, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.CourseModel{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
