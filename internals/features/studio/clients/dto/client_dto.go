package dto

import (
	"strings"

	"github.com/lib/pq"

	"fitstudio_backend/internals/features/studio/clients/model"
	helper "fitstudio_backend/internals/helpers"
)

/* ===============================
   REQUEST
=================================*/

type CreateClientRequest struct {
	Name             string  `json:"name" validate:"required,min=2,max=100"`
	Email            string  `json:"email" validate:"required,email"`
	Phone            string  `json:"phone" validate:"required,phone"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
}

// Normalize trims the free text and lowercases the email.
func (r *CreateClientRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r CreateClientRequest) ToModel() (*model.ClientModel, error) {
	dob, err := helper.ParseOptionalDate("date_of_birth", r.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &model.ClientModel{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		DateOfBirth:      dob,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
		Status:           model.ClientStatusActive,
		EnrolledCourses:  pq.StringArray{},
	}, nil
}

type UpdateClientRequest struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone            *string `json:"phone,omitempty" validate:"omitempty,phone"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
}

// Updates returns only the columns present in the request.
func (r UpdateClientRequest) Updates() (map[string]any, error) {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Phone != nil {
		u["phone"] = strings.TrimSpace(*r.Phone)
	}
	if r.DateOfBirth != nil {
		dob, err := helper.ParseOptionalDate("date_of_birth", r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		u["date_of_birth"] = dob
	}
	if r.Address != nil {
		u["address"] = *r.Address
	}
	if r.EmergencyContact != nil {
		u["emergency_contact"] = *r.EmergencyContact
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	return u, nil
}

/* ===============================
   QUERY
=================================*/

type ListClientsQuery struct {
	Status string
	Search string
}

/* ===============================
   RESPONSE
=================================*/

type ClientCreatedResponse struct {
	Message  string `json:"message"`
	ClientID string `json:"client_id"`
}
