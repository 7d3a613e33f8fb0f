package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/finance/orders/dto"
	"fitstudio_backend/internals/features/finance/orders/model"
	clientModel "fitstudio_backend/internals/features/studio/clients/model"
	courseModel "fitstudio_backend/internals/features/studio/courses/model"
	helper "fitstudio_backend/internals/helpers"
	"fitstudio_backend/internals/helpers/logger"
)

const msgOrderNotFound = "Order not found"

type Store interface {
	NextOrderNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, o *model.OrderModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderModel, error)
	List(ctx context.Context, q dto.ListOrdersQuery, skip, limit int) ([]model.OrderModel, int64, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.OrderModel, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.OrderModel, error)
}

type ClientFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*clientModel.ClientModel, error)
}

type CourseFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*courseModel.CourseModel, error)
}

type Service struct {
	store   Store
	clients ClientFinder
	courses CourseFinder
	log     *zap.Logger
}

func New(store Store, clients ClientFinder, courses CourseFinder, log *zap.Logger) *Service {
	return &Service{
		store:   store,
		clients: clients,
		courses: courses,
		log:     log.Named("orders"),
	}
}

func (s *Service) List(ctx context.Context, q dto.ListOrdersQuery, w helper.Window) ([]model.OrderModel, int64, error) {
	rows, total, err := s.store.List(ctx, q, w.Skip, w.Limit)
	if err != nil {
		return nil, 0, helper.Internal("list orders", err)
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.OrderModel, error) {
	o, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, helper.FromStore(err, msgOrderNotFound)
	}
	return o, nil
}

func (s *Service) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.OrderModel, error) {
	rows, err := s.store.ListByClient(ctx, clientID)
	if err != nil {
		return nil, helper.Internal("list client orders", err)
	}
	if rows == nil {
		rows = []model.OrderModel{}
	}
	return rows, nil
}

// Create places a pending, unpaid order for an existing client and course.
// final_amount is amount minus discount and must stay positive.
func (s *Service) Create(ctx context.Context, req dto.CreateOrderRequest) (*model.OrderModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	clientID, err := helper.ParseID(req.ClientID, "client")
	if err != nil {
		return nil, err
	}
	courseID, err := helper.ParseID(req.CourseID, "course")
	if err != nil {
		return nil, err
	}

	// cents keep final_amount equal to what numeric(12,2) stores
	amountCents, discountCents := helper.ToCents(req.Amount), helper.ToCents(req.Discount())
	finalCents := amountCents - discountCents
	if finalCents <= 0 {
		return nil, helper.FieldError("discount_applied", "must be less than amount")
	}

	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return nil, helper.FromStore(err, "Client not found")
	}
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, helper.FromStore(err, "Course not found")
	}

	number, err := s.store.NextOrderNumber(ctx)
	if err != nil {
		return nil, helper.Internal("allocate order number", err)
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = helper.Attributes{}
	}
	o := &model.OrderModel{
		OrderNumber:     number,
		ClientID:        clientID,
		CourseID:        courseID,
		ServiceName:     req.ServiceName,
		Amount:          helper.FromCents(amountCents),
		Currency:        model.DefaultCurrency,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.OrderPaymentUnpaid,
		PaymentMethod:   req.PaymentMethod,
		DiscountApplied: helper.FromCents(discountCents),
		FinalAmount:     helper.FromCents(finalCents),
		Notes:           req.Notes,
		Metadata:        metadata,
	}
	if err := s.store.Create(ctx, o); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.Conflict("Order number already exists", err)
		}
		return nil, helper.FromStore(err, "Client or course not found")
	}

	s.log.Info("order created",
		zap.String(logger.FieldOperation, "create_order"),
		zap.String(logger.FieldOrderID, o.ID.String()),
		zap.String("order_number", o.OrderNumber),
		zap.String(logger.FieldClientID, clientID.String()))
	return o, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*model.OrderModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	o, err := s.store.Update(ctx, id, req.Updates())
	if err != nil {
		return nil, helper.FromStore(err, msgOrderNotFound)
	}
	return o, nil
}

// MarkPaid settles an order: payment_status paid, status confirmed.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID, method string) (*model.OrderModel, error) {
	o, err := s.store.Update(ctx, id, map[string]any{
		"status":         model.OrderStatusConfirmed,
		"payment_status": model.OrderPaymentPaid,
		"payment_method": method,
	})
	if err != nil {
		return nil, helper.FromStore(err, msgOrderNotFound)
	}
	return o, nil
}
