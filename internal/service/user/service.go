package user

import (
	"context"
	"fmt"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/attendance"
	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/user"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/database"
	"github.com/checkmate-hq/checkmate-backend-go/internal/pkg/validator"
	"github.com/checkmate-hq/checkmate-backend-go/internal/repository/postgresql"
)

type UserServiceImpl struct {
	db            *database.DB
	userRepo      user.UserRepository
	dayRecordRepo attendance.DayRecordRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository, dayRecordRepo attendance.DayRecordRepository) user.UserService {
	return &UserServiceImpl{
		db:            db,
		userRepo:      userRepo,
		dayRecordRepo: dayRecordRepo,
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	joiningDate, ok := validator.IsValidDate(req.JoiningDate)
	if !ok {
		return user.UserResponse{}, fmt.Errorf("failed to parse joining date %q", req.JoiningDate)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		FullName:    req.FullName,
		Email:       req.Email,
		Role:        req.Role,
		JoiningDate: joiningDate,
		Notes:       req.Notes,
		IsAdmin:     req.IsAdmin,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(found), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil && *req.Email != existing.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return user.UserResponse{}, user.ErrUserEmailExists
		}
	}

	if err := s.userRepo.Update(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}

// DeleteUser implements user.UserService. The user's day records go in the
// same transaction so a delete can never orphan attendance data.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.dayRecordRepo.DeleteByUserID(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete day records: %w", err)
		}
		if err := s.userRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
