package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/analytics/dto"
)

// AnalyticsRepository runs the fixed reporting queries.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

const revenueSQL = `
	SELECT
		COALESCE(SUM(amount), 0) AS total_revenue,
		COUNT(*)                 AS total_transactions,
		COALESCE(AVG(amount), 0) AS average_transaction
	FROM payments
	WHERE status = 'completed'
	  AND payment_date >= ?`

// Revenue sums completed payments with payment_date in [start, end]. A zero
// end leaves the window open, so later-dated payments are included.
func (r *AnalyticsRepository) Revenue(ctx context.Context, start, end time.Time) (dto.RevenueSummary, error) {
	var out dto.RevenueSummary
	if end.IsZero() {
		err := r.db.WithContext(ctx).Raw(revenueSQL, start).Scan(&out).Error
		return out, err
	}
	err := r.db.WithContext(ctx).Raw(revenueSQL+"\n\t  AND payment_date <= ?", start, end).Scan(&out).Error
	return out, err
}

const outstandingSQL = `
	SELECT
		COALESCE(SUM(amount), 0) AS total_outstanding,
		COUNT(*)                 AS count
	FROM payments
	WHERE status = 'pending'`

func (r *AnalyticsRepository) Outstanding(ctx context.Context) (dto.OutstandingSummary, error) {
	var out dto.OutstandingSummary
	err := r.db.WithContext(ctx).Raw(outstandingSQL).Scan(&out).Error
	return out, err
}

func (r *AnalyticsRepository) ClientStatusCounts(ctx context.Context) ([]dto.StatusCount, error) {
	rows := make([]dto.StatusCount, 0, 3)
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM clients
		GROUP BY status
		ORDER BY status`).Scan(&rows).Error
	return rows, err
}

// CountClients counts clients created at or after since; a zero since counts all.
func (r *AnalyticsRepository) CountClients(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Table("clients")
	if !since.IsZero() {
		tx = tx.Where("created_at >= ?", since)
	}
	err := tx.Count(&n).Error
	return n, err
}

const coursePerformanceSQL = `
	SELECT
		c.id,
		c.name,
		c.instructor,
		COUNT(o.id)                       AS enrollment_count,
		COALESCE(SUM(o.final_amount), 0) AS total_revenue
	FROM courses c
	LEFT JOIN orders o ON o.course_id = c.id
	GROUP BY c.id, c.name, c.instructor
	ORDER BY enrollment_count DESC, c.name ASC`

func (r *AnalyticsRepository) CoursePerformance(ctx context.Context) ([]dto.CoursePerformance, error) {
	rows := make([]dto.CoursePerformance, 0)
	err := r.db.WithContext(ctx).Raw(coursePerformanceSQL).Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepository) AttendanceStatusCounts(ctx context.Context, courseID *uuid.UUID) ([]dto.StatusCount, error) {
	rows := make([]dto.StatusCount, 0, 4)
	tx := r.db.WithContext(ctx).Table("attendance").Select("status, COUNT(*) AS count")
	if courseID != nil {
		tx = tx.Where("course_id = ?", *courseID)
	}
	err := tx.Group("status").Order("status").Scan(&rows).Error
	return rows, err
}
