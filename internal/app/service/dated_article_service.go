package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"upsc_portal/internal/common"
	"upsc_portal/internal/common/timerange"
	"upsc_portal/internal/domain/model"
	"upsc_portal/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DatedArticleService struct {
	datedRepo repository.DatedArticleRepository
	validate  *validator.Validate
	log       *zap.Logger
	loc       *time.Location // calendar zone for monthly/yearly boundaries
}

func NewDatedArticleService(datedRepo repository.DatedArticleRepository, validate *validator.Validate, log *zap.Logger, loc *time.Location) *DatedArticleService {
	return &DatedArticleService{datedRepo: datedRepo, validate: validate, log: log, loc: loc}
}

type DatedArticleRequest struct {
	Title   string `json:"title" validate:"required,min=2"`
	Content string `json:"content" validate:"required,min=10"`
	Type    string `json:"type" validate:"required"`
	Date    string `json:"date" validate:"required"`
}

// ListForDate resolves the half-open interval for the date and granularity
// and returns the matching articles.
func (s *DatedArticleService) ListForDate(ctx context.Context, date, typ string) ([]model.DatedArticle, error) {
	g, err := timerange.ParseGranularity(typ)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrBadRequest)
	}
	rng, err := timerange.ForDate(date, g, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrBadRequest)
	}
	return s.datedRepo.ListInRange(ctx, g, rng.Start, rng.End)
}

func (s *DatedArticleService) parseRequest(req DatedArticleRequest) (timerange.Granularity, time.Time, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", time.Time{}, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}
	g, err := timerange.ParseGranularity(req.Type)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}
	day, err := timerange.ParseDate(req.Date)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}
	return g, day, nil
}

func (s *DatedArticleService) Create(ctx context.Context, req DatedArticleRequest) (*model.DatedArticle, error) {
	g, day, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}

	article := &model.DatedArticle{
		ID:      uuid.NewString(),
		Title:   req.Title,
		Content: req.Content,
		Type:    g,
		Date:    day,
	}

	if err := s.datedRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create dated article: %w", err)
	}

	s.log.Info("dated article created",
		zap.String("id", article.ID),
		zap.String("type", string(article.Type)))
	return article, nil
}

func (s *DatedArticleService) Update(ctx context.Context, id string, req DatedArticleRequest) (*model.DatedArticle, error) {
	g, day, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}

	article, err := s.datedRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	article.Title = req.Title
	article.Content = req.Content
	article.Type = g
	article.Date = day

	if err := s.datedRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update dated article: %w", err)
	}
	return article, nil
}

func (s *DatedArticleService) Delete(ctx context.Context, id string) error {
	return s.datedRepo.Delete(ctx, id)
}
