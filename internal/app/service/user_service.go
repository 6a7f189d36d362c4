package service

import (
	"context"
	"errors"
	"fmt"

	"upsc_portal/internal/common"
	"upsc_portal/internal/common/security"
	"upsc_portal/internal/domain/model"
	"upsc_portal/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo repository.UserRepository
	tokens   repository.TokenStore
	validate *validator.Validate
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, tokens repository.TokenStore, validate *validator.Validate, log *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens, validate: validate, log: log}
}

type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,len=10,numeric"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

func (s *UserService) Register(ctx context.Context, req SignupRequest) (*model.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		HashedPassword: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on duplicate email
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("user registered", zap.String("user_id", user.ID))
	user.HashedPassword = "" // Clear hash before returning
	return user, nil
}

// Login verifies the credentials, issues a session token, and returns it with
// the "Bearer " prefix the clients store verbatim.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID))
	return "Bearer " + token, nil
}

func (s *UserService) Details(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}

// UpdatePassword is the only mutation a user record supports.
func (s *UserService) UpdatePassword(ctx context.Context, id string, req UpdatePasswordRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, id, hash)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("user_id", id))
	return nil
}
