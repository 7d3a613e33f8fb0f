package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	orderModel "fitstudio_backend/internals/features/finance/orders/model"
	"fitstudio_backend/internals/features/finance/payments/dto"
	"fitstudio_backend/internals/features/finance/payments/model"
	clientModel "fitstudio_backend/internals/features/studio/clients/model"
	helper "fitstudio_backend/internals/helpers"
	"fitstudio_backend/internals/helpers/logger"
)

const pendingPaymentsCap = 500

type Store interface {
	Create(ctx context.Context, p *model.PaymentModel) error
	List(ctx context.Context, q dto.ListPaymentsQuery, skip, limit int) ([]model.PaymentModel, int64, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.PaymentModel, error)
	ListPending(ctx context.Context, limit int) ([]model.PaymentModel, error)
}

// Orders is the slice of the order service payments depend on.
type Orders interface {
	Get(ctx context.Context, id uuid.UUID) (*orderModel.OrderModel, error)
	MarkPaid(ctx context.Context, id uuid.UUID, method string) (*orderModel.OrderModel, error)
}

type Clients interface {
	GetByID(ctx context.Context, id uuid.UUID) (*clientModel.ClientModel, error)
	Enroll(ctx context.Context, id uuid.UUID, courseID string) error
}

type Service struct {
	store   Store
	orders  Orders
	clients Clients
	gateway Gateway
	log     *zap.Logger
	now     func() time.Time
}

func New(store Store, orders Orders, clients Clients, gateway Gateway, log *zap.Logger) *Service {
	return &Service{
		store:   store,
		orders:  orders,
		clients: clients,
		gateway: gateway,
		log:     log.Named("payments"),
		now:     time.Now,
	}
}

func (s *Service) List(ctx context.Context, q dto.ListPaymentsQuery, w helper.Window) ([]model.PaymentModel, int64, error) {
	rows, total, err := s.store.List(ctx, q, w.Skip, w.Limit)
	if err != nil {
		return nil, 0, helper.Internal("list payments", err)
	}
	return rows, total, nil
}

func (s *Service) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.PaymentModel, error) {
	rows, err := s.store.ListByClient(ctx, clientID)
	if err != nil {
		return nil, helper.Internal("list client payments", err)
	}
	return rows, nil
}

func (s *Service) ListPending(ctx context.Context) ([]model.PaymentModel, error) {
	rows, err := s.store.ListPending(ctx, pendingPaymentsCap)
	if err != nil {
		return nil, helper.Internal("list pending payments", err)
	}
	if rows == nil {
		rows = []model.PaymentModel{}
	}
	return rows, nil
}

// Record stores a payment taken outside the gateway. A completed payment
// covering the order's final amount settles the order.
func (s *Service) Record(ctx context.Context, req dto.CreatePaymentRequest) (*model.PaymentModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	orderID, err := helper.ParseID(req.OrderID, "order")
	if err != nil {
		return nil, err
	}
	paidAt, err := helper.ParseOptionalDate("payment_date", req.PaymentDate)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	status := model.PaymentStatusPending
	if req.Status != nil {
		status = model.PaymentStatus(*req.Status)
	}
	p := &model.PaymentModel{
		OrderID:         order.ID,
		ClientID:        order.ClientID,
		Amount:          req.Amount,
		Currency:        order.Currency,
		PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
		TransactionID:   req.TransactionID,
		GatewayResponse: helper.Attributes{},
		Status:          status,
		PaymentDate:     s.now().UTC(),
		Notes:           req.Notes,
	}
	if paidAt != nil {
		p.PaymentDate = *paidAt
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, helper.FromStore(err, "Order not found")
	}

	if status == model.PaymentStatusCompleted && req.Amount >= order.FinalAmount {
		if err := s.settle(ctx, order, req.PaymentMethod); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Charge collects amount for an order through the configured gateway and
// stores the resulting payment. When the gateway settles immediately the
// order becomes paid and confirmed.
func (s *Service) Charge(ctx context.Context, req dto.ChargeRequest) (*model.PaymentModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	orderID, err := helper.ParseID(req.OrderID, "order")
	if err != nil {
		return nil, err
	}
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	client, err := s.clients.GetByID(ctx, order.ClientID)
	if err != nil {
		return nil, helper.FromStore(err, "Client not found")
	}

	res, err := s.gateway.Charge(ctx, Charge{
		Order:  order,
		Client: client,
		Amount: req.Amount,
		Method: req.PaymentMethod,
	})
	if err != nil {
		return nil, helper.Internal("payment gateway "+s.gateway.Name(), err)
	}

	status := model.PaymentStatusPending
	if res.Settled {
		status = model.PaymentStatusCompleted
	}
	txnID := res.TransactionID
	p := &model.PaymentModel{
		OrderID:         order.ID,
		ClientID:        order.ClientID,
		Amount:          req.Amount,
		Currency:        order.Currency,
		PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
		TransactionID:   &txnID,
		GatewayResponse: res.Response,
		Status:          status,
		PaymentDate:     s.now().UTC(),
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, helper.Internal("store payment", err)
	}

	s.log.Info("payment charged",
		zap.String(logger.FieldOperation, "process_payment"),
		zap.String(logger.FieldOrderID, order.ID.String()),
		zap.String("gateway", s.gateway.Name()),
		zap.String("transaction_id", txnID),
		zap.Bool("settled", res.Settled))

	if res.Settled {
		if err := s.settle(ctx, order, req.PaymentMethod); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *Service) settle(ctx context.Context, order *orderModel.OrderModel, method string) error {
	if _, err := s.orders.MarkPaid(ctx, order.ID, method); err != nil {
		return err
	}
	if err := s.clients.Enroll(ctx, order.ClientID, order.CourseID.String()); err != nil {
		// enrolled_courses is best effort
		s.log.Warn("enroll client failed",
			zap.String(logger.FieldClientID, order.ClientID.String()),
			zap.Error(err))
	}
	return nil
}
