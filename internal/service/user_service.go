package service

import (
	"context"
	"errors"

	"ecoconnect/internal/models"
	"ecoconnect/internal/repository"
	"ecoconnect/internal/validation"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("User not found")
	}
	return user, err
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("User not found")
	}
	return user, err
}

// CreateUser registers a user after checking that the username and email are
// both free. The duplicate checks race with concurrent inserts; the unique
// indexes are the backstop.
func (s *UserService) CreateUser(ctx context.Context, in validation.InsertUser) (*models.User, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, models.NewValidationError("Invalid user data", fields...)
	}

	if _, err := s.userRepo.GetByUsername(ctx, in.Username); err == nil {
		return nil, models.NewValidationError("Username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, models.NewValidationError("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Avatar:   in.Avatar,
		Bio:      in.Bio,
		Title:    in.Title,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser changes profile fields only. Username, email and the counters
// are not editable through this path.
func (s *UserService) UpdateUser(ctx context.Context, id uint, avatar, bio, title *string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, err
	}

	if avatar != nil {
		user.Avatar = *avatar
	}
	if bio != nil {
		user.Bio = *bio
	}
	if title != nil {
		user.Title = *title
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
