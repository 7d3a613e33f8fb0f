package dto

import (
	"time"

	"github.com/google/uuid"
)

type RevenueSummary struct {
	TotalRevenue       float64 `gorm:"column:total_revenue" json:"total_revenue"`
	TotalTransactions  int64   `gorm:"column:total_transactions" json:"total_transactions"`
	AverageTransaction float64 `gorm:"column:average_transaction" json:"average_transaction"`
}

type OutstandingSummary struct {
	TotalOutstanding float64 `gorm:"column:total_outstanding" json:"total_outstanding"`
	Count            int64   `gorm:"column:count" json:"count"`
}

type RevenueReport struct {
	CurrentMonthRevenue RevenueSummary     `json:"current_month_revenue"`
	OutstandingPayments OutstandingSummary `json:"outstanding_payments"`
}

// RevenueWindow is the revenue over an explicit date range.
type RevenueWindow struct {
	RevenueSummary
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// StatusCount is one bucket of a group-by-status report.
type StatusCount struct {
	Status string `gorm:"column:status" json:"_id"`
	Count  int64  `gorm:"column:count" json:"count"`
}

type ClientReport struct {
	StatusDistribution  []StatusCount `json:"status_distribution"`
	NewClientsThisMonth int64         `json:"new_clients_this_month"`
	TotalClients        int64         `json:"total_clients"`
}

type CoursePerformance struct {
	ID              uuid.UUID `gorm:"column:id" json:"_id"`
	Name            string    `gorm:"column:name" json:"name"`
	Instructor      string    `gorm:"column:instructor" json:"instructor"`
	EnrollmentCount int64     `gorm:"column:enrollment_count" json:"enrollment_count"`
	TotalRevenue    float64   `gorm:"column:total_revenue" json:"total_revenue"`
}

type CourseReport struct {
	CoursePerformance []CoursePerformance `json:"course_performance"`
}

type AttendanceReport struct {
	CourseID *uuid.UUID    `json:"course_id,omitempty"`
	Stats    []StatusCount `json:"attendance_stats"`
}
