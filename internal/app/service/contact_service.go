package service

import (
	"context"
	"fmt"

	"upsc_portal/internal/common"
	"upsc_portal/internal/domain/model"
	"upsc_portal/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactService struct {
	contactRepo repository.ContactRepository
	validate    *validator.Validate
	log         *zap.Logger
}

func NewContactService(contactRepo repository.ContactRepository, validate *validator.Validate, log *zap.Logger) *ContactService {
	return &ContactService{contactRepo: contactRepo, validate: validate, log: log}
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Number  string `json:"number" validate:"required,len=10,numeric"`
	Message string `json:"message" validate:"required,min=2"`
}

func (s *ContactService) Submit(ctx context.Context, req ContactRequest) (*model.ContactMessage, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	msg := &model.ContactMessage{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Number,
		Message: req.Message,
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	s.log.Info("contact form submitted", zap.String("id", msg.ID))
	return msg, nil
}
