package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fitstudio_backend/internals/features/studio/enquiries/dto"
	"fitstudio_backend/internals/features/studio/enquiries/model"
	helper "fitstudio_backend/internals/helpers"
)

type Store interface {
	Create(ctx context.Context, m *model.EnquiryModel) error
	List(ctx context.Context, q dto.ListEnquiriesQuery, skip, limit int) ([]model.EnquiryModel, int64, error)
}

type Notifier interface {
	SendEmail(ctx context.Context, to, subject, content string) (string, error)
	NotifyStaff(ctx context.Context, subject, content string) (string, error)
}

type Service struct {
	store  Store
	notify Notifier
	log    *zap.Logger
}

func New(store Store, notify Notifier, log *zap.Logger) *Service {
	return &Service{store: store, notify: notify, log: log.Named("enquiries")}
}

func (s *Service) List(ctx context.Context, q dto.ListEnquiriesQuery, w helper.Window) ([]model.EnquiryModel, int64, error) {
	rows, total, err := s.store.List(ctx, q, w.Skip, w.Limit)
	if err != nil {
		return nil, 0, helper.Internal("list enquiries", err)
	}
	return rows, total, nil
}

// Create stores a new enquiry, acknowledges it to the enquirer and
// alerts staff. Notification failures are logged, not returned.
func (s *Service) Create(ctx context.Context, req dto.CreateEnquiryRequest) (*model.EnquiryModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	followUp, err := helper.ParseOptionalDate("follow_up_date", req.FollowUpDate)
	if err != nil {
		return nil, err
	}

	m := &model.EnquiryModel{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		EnquiryType:  req.EnquiryType,
		Message:      req.Message,
		Status:       model.EnquiryStatusNew,
		Source:       model.DefaultSource,
		AssignedTo:   req.AssignedTo,
		FollowUpDate: followUp,
	}
	if req.Source != nil && *req.Source != "" {
		m.Source = *req.Source
	}
	if err := s.store.Create(ctx, m); err != nil {
		return nil, helper.Internal("create enquiry", err)
	}

	if _, err := s.notify.SendEmail(ctx, m.Email,
		"Thank you for your enquiry",
		fmt.Sprintf("Hi %s, we have received your enquiry and will get back to you soon.", m.Name),
	); err != nil {
		s.log.Warn("enquiry acknowledgement failed", zap.String("enquiry_id", m.ID.String()), zap.Error(err))
	}
	if _, err := s.notify.NotifyStaff(ctx,
		"New Client Enquiry",
		fmt.Sprintf("New enquiry from %s (%s) about %s", m.Name, m.Email, m.EnquiryType),
	); err != nil {
		s.log.Warn("staff notification failed", zap.String("enquiry_id", m.ID.String()), zap.Error(err))
	}
	return m, nil
}
