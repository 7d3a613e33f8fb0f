package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/studio/attendance/dto"
	"fitstudio_backend/internals/features/studio/attendance/model"
	classModel "fitstudio_backend/internals/features/studio/classes/model"
	clientModel "fitstudio_backend/internals/features/studio/clients/model"
	helper "fitstudio_backend/internals/helpers"
	"fitstudio_backend/internals/helpers/logger"
)

type Store interface {
	Create(ctx context.Context, m *model.AttendanceModel) error
	List(ctx context.Context, q dto.ListAttendanceQuery, skip, limit int) ([]model.AttendanceModel, int64, error)
}

type ClientFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*clientModel.ClientModel, error)
}

type ClassFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*classModel.ClassModel, error)
}

type Service struct {
	store   Store
	clients ClientFinder
	classes ClassFinder
	log     *zap.Logger
}

func New(store Store, clients ClientFinder, classes ClassFinder, log *zap.Logger) *Service {
	return &Service{store: store, clients: clients, classes: classes, log: log.Named("attendance")}
}

func (s *Service) List(ctx context.Context, q dto.ListAttendanceQuery, w helper.Window) ([]model.AttendanceModel, int64, error) {
	rows, total, err := s.store.List(ctx, q, w.Skip, w.Limit)
	if err != nil {
		return nil, 0, helper.Internal("list attendance", err)
	}
	return rows, total, nil
}

// Record marks one client's attendance for one class. A second record
// for the same (client, class) pair is a Conflict.
func (s *Service) Record(ctx context.Context, req dto.CreateAttendanceRequest) (*model.AttendanceModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	clientID, err := helper.ParseID(req.ClientID, "client")
	if err != nil {
		return nil, err
	}
	classID, err := helper.ParseID(req.ClassID, "class")
	if err != nil {
		return nil, err
	}

	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return nil, helper.FromStore(err, "Client not found")
	}
	class, err := s.classes.GetByID(ctx, classID)
	if err != nil {
		return nil, helper.FromStore(err, "Class not found")
	}

	courseID := class.CourseID
	if req.CourseID != nil && *req.CourseID != "" {
		id, err := helper.ParseID(*req.CourseID, "course")
		if err != nil {
			return nil, err
		}
		if id != class.CourseID {
			return nil, helper.FieldError("course_id", "does not match the class's course")
		}
	}

	m := &model.AttendanceModel{
		ClientID:        clientID,
		ClassID:         classID,
		CourseID:        courseID,
		Date:            class.Date,
		Status:          model.AttendancePresent,
		Notes:           req.Notes,
		InstructorNotes: req.InstructorNotes,
	}
	if req.Status != nil {
		m.Status = model.AttendanceStatus(*req.Status)
	}
	if d, err := helper.ParseOptionalDate("date", req.Date); err != nil {
		return nil, err
	} else if d != nil {
		m.Date = *d
	}
	if m.CheckInTime, err = helper.ParseOptionalDate("check_in_time", req.CheckInTime); err != nil {
		return nil, err
	}
	if m.CheckOutTime, err = helper.ParseOptionalDate("check_out_time", req.CheckOutTime); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.Conflict("Attendance already recorded", err)
		}
		return nil, helper.Internal("record attendance", err)
	}
	s.log.Info("attendance recorded",
		zap.String(logger.FieldClientID, clientID.String()),
		zap.String("class_id", classID.String()),
		zap.String("status", string(m.Status)))
	return m, nil
}
