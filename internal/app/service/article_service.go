package service

import (
	"context"
	"errors"
	"fmt"

	"upsc_portal/internal/common"
	"upsc_portal/internal/domain/model"
	"upsc_portal/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

type ArticleService struct {
	articleRepo repository.ArticleRepository
	validate    *validator.Validate
	log         *zap.Logger
}

func NewArticleService(articleRepo repository.ArticleRepository, validate *validator.Validate, log *zap.Logger) *ArticleService {
	return &ArticleService{articleRepo: articleRepo, validate: validate, log: log}
}

type CreateArticleRequest struct {
	Title      string   `json:"title" validate:"required,min=2"`
	Content    string   `json:"content" validate:"required,min=10"`
	Tags       []string `json:"tags" validate:"required,min=1"`
	ParentSlug string   `json:"parentSlug" validate:"required"`
}

type UpdateArticleRequest struct {
	Title   string   `json:"title" validate:"required,min=2"`
	Content string   `json:"content" validate:"required,min=10"`
	Tags    []string `json:"tags" validate:"required,min=1"`
}

type ParentArticleRequest struct {
	Title   string `json:"title" validate:"required,min=2"`
	Content string `json:"content" validate:"required,min=10"`
}

func (s *ArticleService) ListByParent(ctx context.Context, parentSlug string) ([]model.ArticleSummary, error) {
	return s.articleRepo.ListByParentSlug(ctx, parentSlug)
}

func (s *ArticleService) GetBySlug(ctx context.Context, articleSlug string) (*model.Article, error) {
	return s.articleRepo.FindArticleBySlug(ctx, articleSlug)
}

// Create derives the slug from the title and refuses a parent slug that does
// not resolve to an existing parent article. The link is by value, so this
// pre-check is the only referential guarantee.
func (s *ArticleService) Create(ctx context.Context, req CreateArticleRequest) (*model.Article, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	if _, err := s.articleRepo.FindParentBySlug(ctx, req.ParentSlug); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("parent article %q does not exist: %w", req.ParentSlug, common.ErrBadRequest)
		}
		return nil, fmt.Errorf("failed to check parent article: %w", err)
	}

	article := &model.Article{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		Slug:       slug.Make(req.Title),
		ParentSlug: req.ParentSlug,
	}

	if err := s.articleRepo.CreateArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.log.Info("article created", zap.String("slug", article.Slug))
	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, id string, req UpdateArticleRequest) (*model.Article, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	article, err := s.articleRepo.FindArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Title = req.Title
	article.Content = req.Content
	article.Tags = req.Tags
	article.Slug = slug.Make(req.Title)

	if err := s.articleRepo.UpdateArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	return article, nil
}

// Relink moves an article under a different parent. Both ends are checked.
func (s *ArticleService) Relink(ctx context.Context, articleSlug, parentSlug string) error {
	if _, err := s.articleRepo.FindArticleBySlug(ctx, articleSlug); err != nil {
		return err
	}
	if _, err := s.articleRepo.FindParentBySlug(ctx, parentSlug); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("parent article %q does not exist: %w", parentSlug, common.ErrBadRequest)
		}
		return err
	}
	return s.articleRepo.UpdateParentSlug(ctx, articleSlug, parentSlug)
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	return s.articleRepo.DeleteArticle(ctx, id)
}

func (s *ArticleService) GetParent(ctx context.Context, parentSlug string) (*model.ParentArticle, error) {
	return s.articleRepo.FindParentBySlug(ctx, parentSlug)
}

func (s *ArticleService) CreateParent(ctx context.Context, req ParentArticleRequest) (*model.ParentArticle, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	parent := &model.ParentArticle{
		ID:      uuid.NewString(),
		Title:   req.Title,
		Content: req.Content,
		Slug:    slug.Make(req.Title),
	}

	if err := s.articleRepo.CreateParent(ctx, parent); err != nil {
		return nil, fmt.Errorf("failed to create parent article: %w", err)
	}

	s.log.Info("parent article created", zap.String("slug", parent.Slug))
	return parent, nil
}

func (s *ArticleService) UpdateParent(ctx context.Context, parentSlug string, req ParentArticleRequest) (*model.ParentArticle, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}

	parent, err := s.articleRepo.FindParentBySlug(ctx, parentSlug)
	if err != nil {
		return nil, err
	}

	parent.Title = req.Title
	parent.Content = req.Content
	parent.Slug = slug.Make(req.Title)

	if err := s.articleRepo.UpdateParent(ctx, parent); err != nil {
		return nil, fmt.Errorf("failed to update parent article: %w", err)
	}
	return parent, nil
}

func (s *ArticleService) DeleteParent(ctx context.Context, parentSlug string) error {
	if _, err := s.articleRepo.FindParentBySlug(ctx, parentSlug); err != nil {
		return err
	}
	return s.articleRepo.DeleteParent(ctx, parentSlug)
}
