package dto

import (
	"strings"
)

type CreateEnquiryRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone" validate:"required,phone"`
	EnquiryType  string  `json:"enquiry_type" validate:"required,max=50"`
	Message      string  `json:"message" validate:"required"`
	Source       *string `json:"source,omitempty" validate:"omitempty,max=50"`
	AssignedTo   *string `json:"assigned_to,omitempty" validate:"omitempty,max=100"`
	FollowUpDate *string `json:"follow_up_date,omitempty"`
}

func (r *CreateEnquiryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.EnquiryType = strings.TrimSpace(r.EnquiryType)
	r.Message = strings.TrimSpace(r.Message)
}

type ListEnquiriesQuery struct {
	Status      string
	EnquiryType string
}
