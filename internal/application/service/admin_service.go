package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/domain/enum"
	"github.com/nyamari/meatpos-api/internal/domain/repository"
	"github.com/nyamari/meatpos-api/pkg/apperror"
	"github.com/nyamari/meatpos-api/pkg/utils"
)

// AdminService handles staff account management and destructive maintenance
type AdminService struct {
	userRepo        repository.UserRepository
	maintenanceRepo repository.MaintenanceRepository
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo repository.UserRepository, maintenanceRepo repository.MaintenanceRepository) *AdminService {
	return &AdminService{
		userRepo:        userRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// CreateUserInput holds the fields for a new staff account
type CreateUserInput struct {
	Username string
	Password string
	Role     enum.Role
}

// CreateUser creates a new staff account
func (s *AdminService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, apperror.NewBadRequestError("Username is required")
	}
	if len(input.Password) < 6 {
		return nil, apperror.NewBadRequestError("Password must be at least 6 characters")
	}
	if !input.Role.Valid() {
		return nil, apperror.NewBadRequestError("Invalid role")
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewAppError(409, "Username already taken")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: hashed,
		Role:     input.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all staff accounts
func (s *AdminService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

// DeleteUser removes a staff account. An admin cannot delete their own
// account, so the shop is never left without one.
func (s *AdminService) DeleteUser(ctx context.Context, id, callerID uuid.UUID) error {
	if id == callerID {
		return apperror.NewBadRequestError("Cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	return s.userRepo.Delete(ctx, id)
}

// ResetData wipes all invoices, line items, and products. User accounts and
// store settings survive.
func (s *AdminService) ResetData(ctx context.Context) error {
	return s.maintenanceRepo.ResetData(ctx)
}
