package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/users/auth/model"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*model.StaffUserModel, error) {
	var u model.StaffUserModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.StaffUserModel, error) {
	var u model.StaffUserModel
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.StaffUserModel{}).Count(&n).Error
	return n, err
}

// CreateExclusive inserts u while holding a lock that blocks other writers on
// staff_users. assign sees the row count taken under that lock and either
// sets u's role or refuses the insert with its own error.
func (r *StaffRepository) CreateExclusive(ctx context.Context, u *model.StaffUserModel, assign func(existing int64) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE staff_users IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&model.StaffUserModel{}).Count(&n).Error; err != nil {
			return err
		}
		if err := assign(n); err != nil {
			return err
		}
		return tx.Create(u).Error
	})
}

func (r *StaffRepository) List(ctx context.Context) ([]model.StaffUserModel, error) {
	var rows []model.StaffUserModel
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error
	return rows, err
}
