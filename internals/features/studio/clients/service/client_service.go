package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	orderModel "fitstudio_backend/internals/features/finance/orders/model"
	paymentModel "fitstudio_backend/internals/features/finance/payments/model"
	"fitstudio_backend/internals/features/studio/clients/dto"
	"fitstudio_backend/internals/features/studio/clients/model"
	helper "fitstudio_backend/internals/helpers"
	"fitstudio_backend/internals/helpers/logger"
)

const msgClientNotFound = "Client not found"

// Store is the persistence the client service needs.
type Store interface {
	List(ctx context.Context, q dto.ListClientsQuery, skip, limit int) ([]model.ClientModel, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClientModel, error)
	GetByEmail(ctx context.Context, email string) (*model.ClientModel, error)
	GetByPhone(ctx context.Context, phone string) (*model.ClientModel, error)
	Create(ctx context.Context, c *model.ClientModel) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*model.ClientModel, error)
}

type OrderLister interface {
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]orderModel.OrderModel, error)
}

type PaymentLister interface {
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]paymentModel.PaymentModel, error)
}

// ClientDetail is a client with its order and payment history.
type ClientDetail struct {
	Client   *model.ClientModel          `json:"client"`
	Orders   []orderModel.OrderModel     `json:"orders"`
	Payments []paymentModel.PaymentModel `json:"payments"`
}

type Service struct {
	store    Store
	orders   OrderLister
	payments PaymentLister
	log      *zap.Logger
}

func New(store Store, orders OrderLister, payments PaymentLister, log *zap.Logger) *Service {
	return &Service{
		store:    store,
		orders:   orders,
		payments: payments,
		log:      log.Named("clients"),
	}
}

func (s *Service) List(ctx context.Context, q dto.ListClientsQuery, w helper.Window) ([]model.ClientModel, int64, error) {
	rows, total, err := s.store.List(ctx, q, w.Skip, w.Limit)
	if err != nil {
		return nil, 0, helper.Internal("list clients", err)
	}
	return rows, total, nil
}

// Create registers a client. The email check runs first; the unique
// index on clients.email catches concurrent duplicates.
func (s *Service) Create(ctx context.Context, req dto.CreateClientRequest) (*model.ClientModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	_, err := s.store.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, helper.Conflict("Email already exists", nil)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, helper.Internal("lookup client email", err)
	}

	c, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.Conflict("Email already exists", err)
		}
		return nil, helper.Internal("create client", err)
	}

	s.log.Info("client created",
		zap.String(logger.FieldOperation, "create_client"),
		zap.String(logger.FieldClientID, c.ID.String()))
	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ClientDetail, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, helper.FromStore(err, msgClientNotFound)
	}

	orders, err := s.orders.ListByClient(ctx, id)
	if err != nil {
		return nil, helper.Internal("list client orders", err)
	}
	payments, err := s.payments.ListByClient(ctx, id)
	if err != nil {
		return nil, helper.Internal("list client payments", err)
	}
	if orders == nil {
		orders = []orderModel.OrderModel{}
	}
	if payments == nil {
		payments = []paymentModel.PaymentModel{}
	}
	return &ClientDetail{Client: c, Orders: orders, Payments: payments}, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*model.ClientModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	updates, err := req.Updates()
	if err != nil {
		return nil, err
	}
	c, err := s.store.Update(ctx, id, updates)
	if err != nil {
		return nil, helper.FromStore(err, msgClientNotFound)
	}
	return c, nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*model.ClientModel, error) {
	c, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, helper.FromStore(err, msgClientNotFound)
	}
	return c, nil
}

func (s *Service) FindByPhone(ctx context.Context, phone string) (*model.ClientModel, error) {
	c, err := s.store.GetByPhone(ctx, phone)
	if err != nil {
		return nil, helper.FromStore(err, msgClientNotFound)
	}
	return c, nil
}

// FindOrCreate returns the client registered under email, creating one
// from name/phone when none exists. created reports which happened.
func (s *Service) FindOrCreate(ctx context.Context, name, email, phone string) (c *model.ClientModel, created bool, err error) {
	c, err = s.FindByEmail(ctx, email)
	if err == nil {
		return c, false, nil
	}
	if helper.KindOf(err) != helper.KindNotFound {
		return nil, false, err
	}

	c, err = s.Create(ctx, dto.CreateClientRequest{Name: name, Email: email, Phone: phone})
	if helper.KindOf(err) == helper.KindConflict {
		// lost a race with a concurrent create
		c, err = s.FindByEmail(ctx, email)
		return c, false, err
	}
	if err != nil {
		return nil, false, fmt.Errorf("create client %s: %w", email, err)
	}
	return c, true, nil
}
