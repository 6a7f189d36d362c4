package service

import (
	"context"
	"fmt"

	"upsc_portal/internal/common"
	"upsc_portal/internal/common/security"
	"upsc_portal/internal/domain/repository"

	"go.uber.org/zap"
)

// ResetService hands out short-lived password-reset tokens and lets their
// holder replace the account password once.
type ResetService struct {
	userRepo    repository.UserRepository
	resetTokens repository.ResetTokenStore
	log         *zap.Logger
}

func NewResetService(userRepo repository.UserRepository, resetTokens repository.ResetTokenStore, log *zap.Logger) *ResetService {
	return &ResetService{userRepo: userRepo, resetTokens: resetTokens, log: log}
}

// Request creates a reset token for an account identified by email.
func (s *ResetService) Request(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("email is required: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := s.resetTokens.Create(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to create reset token: %w", err)
	}

	s.log.Info("password reset requested", zap.String("user_id", user.ID))
	return token, nil
}

// Confirm consumes the token and replaces the password it is bound to.
// A consumed, expired, or unknown token fails with NotFound.
func (s *ResetService) Confirm(ctx context.Context, token, password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters: %w", common.ErrValidation)
	}

	userID, err := s.resetTokens.Consume(ctx, token)
	if err != nil {
		return err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	s.log.Info("password reset completed", zap.String("user_id", userID))
	return nil
}
