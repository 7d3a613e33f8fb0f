package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitstudio_backend/internals/features/analytics/dto"
	helper "fitstudio_backend/internals/helpers"
)

// DefaultRevenueWindow is the lookback used when no start date is given.
const DefaultRevenueWindow = 30 * 24 * time.Hour

type Store interface {
	Revenue(ctx context.Context, start, end time.Time) (dto.RevenueSummary, error)
	Outstanding(ctx context.Context) (dto.OutstandingSummary, error)
	ClientStatusCounts(ctx context.Context) ([]dto.StatusCount, error)
	CountClients(ctx context.Context, since time.Time) (int64, error)
	CoursePerformance(ctx context.Context) ([]dto.CoursePerformance, error)
	AttendanceStatusCounts(ctx context.Context, courseID *uuid.UUID) ([]dto.StatusCount, error)
}

type Service struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func New(store Store, log *zap.Logger) *Service {
	return &Service{
		store: store,
		log:   log.Named("analytics"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// RevenueAnalytics reports completed revenue dated on or after the first of
// the current UTC month and the pending balance. The window has no upper
// bound: a payment recorded with a later date this month still counts.
func (s *Service) RevenueAnalytics(ctx context.Context) (*dto.RevenueReport, error) {
	month, err := s.store.Revenue(ctx, helper.StartOfMonth(s.now()), time.Time{})
	if err != nil {
		return nil, helper.Internal("revenue analytics", err)
	}
	outstanding, err := s.store.Outstanding(ctx)
	if err != nil {
		return nil, helper.Internal("outstanding payments", err)
	}
	return &dto.RevenueReport{CurrentMonthRevenue: month, OutstandingPayments: outstanding}, nil
}

// RevenueMetrics reports completed revenue over [start, end]. Nil bounds
// default to the last 30 days ending now.
func (s *Service) RevenueMetrics(ctx context.Context, start, end *time.Time) (*dto.RevenueWindow, error) {
	to := s.now()
	if end != nil {
		to = end.UTC()
	}
	from := to.Add(-DefaultRevenueWindow)
	if start != nil {
		from = start.UTC()
	}
	if from.After(to) {
		return nil, helper.FieldError("start_date", "must not be after end_date")
	}

	sum, err := s.store.Revenue(ctx, from, to)
	if err != nil {
		return nil, helper.Internal("revenue metrics", err)
	}
	return &dto.RevenueWindow{RevenueSummary: sum, StartDate: from, EndDate: to}, nil
}

func (s *Service) ClientAnalytics(ctx context.Context) (*dto.ClientReport, error) {
	dist, err := s.store.ClientStatusCounts(ctx)
	if err != nil {
		return nil, helper.Internal("client status distribution", err)
	}
	fresh, err := s.store.CountClients(ctx, helper.StartOfMonth(s.now()))
	if err != nil {
		return nil, helper.Internal("count new clients", err)
	}
	total, err := s.store.CountClients(ctx, time.Time{})
	if err != nil {
		return nil, helper.Internal("count clients", err)
	}
	if dist == nil {
		dist = []dto.StatusCount{}
	}
	return &dto.ClientReport{
		StatusDistribution:  dist,
		NewClientsThisMonth: fresh,
		TotalClients:        total,
	}, nil
}

func (s *Service) CourseAnalytics(ctx context.Context) (*dto.CourseReport, error) {
	rows, err := s.store.CoursePerformance(ctx)
	if err != nil {
		return nil, helper.Internal("course performance", err)
	}
	if rows == nil {
		rows = []dto.CoursePerformance{}
	}
	return &dto.CourseReport{CoursePerformance: rows}, nil
}

func (s *Service) AttendanceStats(ctx context.Context, courseID *uuid.UUID) (*dto.AttendanceReport, error) {
	rows, err := s.store.AttendanceStatusCounts(ctx, courseID)
	if err != nil {
		return nil, helper.Internal("attendance stats", err)
	}
	if rows == nil {
		rows = []dto.StatusCount{}
	}
	return &dto.AttendanceReport{CourseID: courseID, Stats: rows}, nil
}
