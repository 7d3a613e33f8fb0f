package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitstudio_backend/internals/features/users/auth/dto"
	"fitstudio_backend/internals/features/users/auth/model"
	helper "fitstudio_backend/internals/helpers"
)

const msgBadCredentials = "Invalid email or password"

type Store interface {
	GetByEmail(ctx context.Context, email string) (*model.StaffUserModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.StaffUserModel, error)
	Count(ctx context.Context) (int64, error)
	CreateExclusive(ctx context.Context, u *model.StaffUserModel, assign func(existing int64) error) error
	List(ctx context.Context) ([]model.StaffUserModel, error)
}

type Service struct {
	store  Store
	tokens *TokenService
	log    *zap.Logger
}

func New(store Store, tokens *TokenService, log *zap.Logger) *Service {
	return &Service{store: store, tokens: tokens, log: log.Named("auth")}
}

// Register creates a staff account. The first account may be created by
// anyone and is always an admin; after that the caller must be an admin.
func (s *Service) Register(ctx context.Context, req dto.RegisterRequest, actor *Claims) (*model.StaffUserModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	role := model.RoleStaff
	if req.Role != "" {
		role = model.StaffRole(req.Role)
	}

	// checked again by CreateExclusive under the table lock
	n, err := s.store.Count(ctx)
	if err != nil {
		return nil, helper.Internal("count staff", err)
	}
	if _, err := registerRole(n, role, actor); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, helper.Internal("hash password", err)
	}
	u := &model.StaffUserModel{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	err = s.store.CreateExclusive(ctx, u, func(existing int64) error {
		r, err := registerRole(existing, role, actor)
		u.Role = r
		return err
	})
	if err != nil {
		var ae *helper.AppError
		switch {
		case errors.As(err, &ae):
			return nil, err
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, helper.Conflict("Email already registered", err)
		}
		return nil, helper.Internal("create staff", err)
	}
	s.log.Info("staff registered", zap.String("staff_id", u.ID.String()), zap.String("role", string(u.Role)))
	return u, nil
}

// registerRole decides the new account's role given how many accounts exist.
func registerRole(existing int64, requested model.StaffRole, actor *Claims) (model.StaffRole, error) {
	switch {
	case existing == 0:
		return model.RoleAdmin, nil
	case actor == nil:
		return "", helper.Unauthorized("Only admins can register staff")
	case actor.Role != model.RoleAdmin:
		return "", helper.Forbidden("Only admins can register staff")
	}
	return requested, nil
}

func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	u, err := s.store.GetByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.Unauthorized(msgBadCredentials)
	}
	if err != nil {
		return nil, helper.Internal("lookup staff", err)
	}
	if err := CheckPasswordHash(u.PasswordHash, req.Password); err != nil {
		return nil, helper.Unauthorized(msgBadCredentials)
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, helper.Internal("issue token", err)
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
		User:        u,
	}, nil
}

func (s *Service) Me(ctx context.Context, claims *Claims) (*model.StaffUserModel, error) {
	id, err := claims.UserID()
	if err != nil {
		return nil, helper.Unauthorized("Invalid token subject")
	}
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Unauthorized("Account no longer exists")
		}
		return nil, helper.Internal("lookup staff", err)
	}
	return u, nil
}

func (s *Service) ListStaff(ctx context.Context) ([]model.StaffUserModel, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, helper.Internal("list staff", err)
	}
	if rows == nil {
		rows = []model.StaffUserModel{}
	}
	return rows, nil
}
