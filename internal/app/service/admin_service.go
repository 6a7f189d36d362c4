package service

import (
	"context"
	"crypto/subtle"
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

type AdminService struct {
	adminRepo repository.AdminRepository
	tokens    repository.TokenStore
	validate  *validator.Validate
	log       *zap.Logger
}

func NewAdminService(adminRepo repository.AdminRepository, tokens repository.TokenStore, validate *validator.Validate, log *zap.Logger) *AdminService {
	return &AdminService{adminRepo: adminRepo, tokens: tokens, validate: validate, log: log}
}

type AdminCredentialsRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	SecretKey string `json:"secretKey" validate:"required,min=6"`
}

func (s *AdminService) Register(ctx context.Context, req AdminCredentialsRequest) (*model.Admin, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{
		ID:             uuid.NewString(),
		Email:          req.Email,
		HashedPassword: hash,
		SecretKey:      req.SecretKey,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.log.Info("admin registered", zap.String("admin_id", admin.ID))
	admin.HashedPassword = ""
	admin.SecretKey = ""
	return admin, nil
}

// Login requires the secret key to match exactly in addition to the password.
// Any mismatch, including an unknown email, reads as invalid credentials so
// the response does not reveal which factor failed.
func (s *AdminService) Login(ctx context.Context, req AdminCredentialsRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find admin: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(req.SecretKey), []byte(admin.SecretKey)) != 1 {
		return "", common.ErrInvalidCredentials
	}
	if !security.CheckPasswordHash(req.Password, admin.HashedPassword) {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, admin.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info("admin logged in", zap.String("admin_id", admin.ID))
	return token, nil
}

func (s *AdminService) Details(ctx context.Context, id string) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	admin.HashedPassword = ""
	admin.SecretKey = ""
	return admin, nil
}
