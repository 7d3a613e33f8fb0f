package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/finance/orders/dto"
	"fitstudio_backend/internals/features/finance/orders/model"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// NextOrderNumber draws from order_number_seq; concurrent callers never
// receive the same value.
func (r *OrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.WithContext(ctx).Raw(`SELECT nextval('order_number_seq')`).Scan(&seq).Error; err != nil {
		return "", fmt.Errorf("next order number: %w", err)
	}
	return model.FormatOrderNumber(seq), nil
}

func (r *OrderRepository) Create(ctx context.Context, o *model.OrderModel) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderModel, error) {
	var o model.OrderModel
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context, q dto.ListOrdersQuery, skip, limit int) ([]model.OrderModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.OrderModel{})
	if s := strings.TrimSpace(q.Status); s != "" {
		tx = tx.Where("status = ?", s)
	}
	if s := strings.TrimSpace(q.PaymentStatus); s != "" {
		tx = tx.Where("payment_status = ?", s)
	}
	if q.ClientID != nil {
		tx = tx.Where("client_id = ?", *q.ClientID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]model.OrderModel, 0, limit)
	if err := tx.Order("created_at DESC").Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *OrderRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.OrderModel, error) {
	var rows []model.OrderModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *OrderRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.OrderModel, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}
