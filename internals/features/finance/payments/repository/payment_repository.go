package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/finance/payments/dto"
	"fitstudio_backend/internals/features/finance/payments/model"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *model.PaymentModel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) List(ctx context.Context, q dto.ListPaymentsQuery, skip, limit int) ([]model.PaymentModel, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.PaymentModel{})
	if s := strings.TrimSpace(q.Status); s != "" {
		tx = tx.Where("status = ?", s)
	}
	if q.OrderID != nil {
		tx = tx.Where("order_id = ?", *q.OrderID)
	}
	if q.ClientID != nil {
		tx = tx.Where("client_id = ?", *q.ClientID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]model.PaymentModel, 0, limit)
	if err := tx.Order("payment_date DESC").Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *PaymentRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.PaymentModel, error) {
	var rows []model.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("payment_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPending returns payments still awaiting settlement, oldest first.
func (r *PaymentRepository) ListPending(ctx context.Context, limit int) ([]model.PaymentModel, error) {
	var rows []model.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", model.PaymentStatusPending).
		Order("payment_date ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
