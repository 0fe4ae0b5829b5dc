package service

import (
	"context"

	"meetsync/core/constants"
	"meetsync/core/errors"
	"meetsync/core/logger"
	"meetsync/modules/user/dto"
	"meetsync/modules/user/repository"
)

// UserService handles identity business logic
type UserService struct {
	repo repository.UserRepositoryInterface
}

// UserServiceInterface defines the service contract
type UserServiceInterface interface {
	LoginOrRegister(ctx context.Context, name string) (*dto.LoginResponse, *errors.AppError)
	ValidateUser(ctx context.Context, userID int64) *errors.AppError
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface) UserServiceInterface {
	return &UserService{repo: repo}
}

// LoginOrRegister looks the name up and creates the user when unseen.
// There is no credential check; a name is the whole identity.
func (s *UserService) LoginOrRegister(ctx context.Context, name string) (*dto.LoginResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}

	if user != nil {
		return &dto.LoginResponse{Status: dto.LoginStatusExists, User: *user}, nil
	}

	created, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create user", err)
	}

	logger.Info("UserService:LoginOrRegister:Created", "user_id", created.ID, "name", created.Name)
	return &dto.LoginResponse{Status: dto.LoginStatusCreated, User: *created}, nil
}

// ValidateUser confirms the user id resolves to a live row
func (s *UserService) ValidateUser(ctx context.Context, userID int64) *errors.AppError {
	exists, err := s.repo.ExistsByID(ctx, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if !exists {
		return errors.NewAppError(errors.ErrNotFound, "No user with the given id", nil)
	}
	return nil
}
