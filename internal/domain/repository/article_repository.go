package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"upsc_portal/internal/common"
	"upsc_portal/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// ArticleRepository covers articles together with the parent articles they
// hang off, mirroring how the two are always written and read together.
type ArticleRepository interface {
	CreateArticle(ctx context.Context, a *model.Article) error
	FindArticleByID(ctx context.Context, id string) (*model.Article, error)
	FindArticleBySlug(ctx context.Context, slug string) (*model.Article, error)
	ListByParentSlug(ctx context.Context, parentSlug string) ([]model.ArticleSummary, error)
	UpdateArticle(ctx context.Context, a *model.Article) error
	UpdateParentSlug(ctx context.Context, slug, parentSlug string) error
	DeleteArticle(ctx context.Context, id string) error

	CreateParent(ctx context.Context, p *model.ParentArticle) error
	FindParentBySlug(ctx context.Context, slug string) (*model.ParentArticle, error)
	UpdateParent(ctx context.Context, p *model.ParentArticle) error
	DeleteParent(ctx context.Context, slug string) error
}

type pgArticleRepository struct {
	db *sql.DB
}

func NewPgArticleRepository(db *sql.DB) ArticleRepository {
	return &pgArticleRepository{db: db}
}

// Tags are stored in a jsonb column; database/sql has no native []string
// mapping, so they round-trip through json.
func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func decodeTags(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		*dst = []string{}
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func (r *pgArticleRepository) CreateArticle(ctx context.Context, a *model.Article) error {
	tags, err := encodeTags(a.Tags)
	if err != nil {
		return fmt.Errorf("pgArticleRepository.CreateArticle: %w", err)
	}
	query := `INSERT INTO articles (id, title, content, tags, slug, parent_slug)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.db.ExecContext(ctx, query, a.ID, a.Title, a.Content, tags, a.Slug, a.ParentSlug)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint on slug
			return fmt.Errorf("article with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgArticleRepository.CreateArticle: %w", err)
	}
	return nil
}

func (r *pgArticleRepository) FindArticleByID(ctx context.Context, id string) (*model.Article, error) {
	return r.findArticle(ctx, `WHERE id = $1`, id)
}

func (r *pgArticleRepository) FindArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	return r.findArticle(ctx, `WHERE slug = $1`, slug)
}

func (r *pgArticleRepository) findArticle(ctx context.Context, where string, arg interface{}) (*model.Article, error) {
	query := `SELECT id, title, content, tags, slug, parent_slug, created_at, updated_at
	          FROM articles ` + where
	a := &model.Article{}
	var tags []byte
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.Title, &a.Content, &tags, &a.Slug, &a.ParentSlug, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgArticleRepository.findArticle: %w", err)
	}
	if err := decodeTags(tags, &a.Tags); err != nil {
		return nil, fmt.Errorf("pgArticleRepository.findArticle: %w", err)
	}
	return a, nil
}

func (r *pgArticleRepository) ListByParentSlug(ctx context.Context, parentSlug string) ([]model.ArticleSummary, error) {
	query := `SELECT title, tags, slug, updated_at
	          FROM articles WHERE parent_slug = $1 ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, parentSlug)
	if err != nil {
		return nil, fmt.Errorf("pgArticleRepository.ListByParentSlug: %w", err)
	}
	defer rows.Close()

	summaries := []model.ArticleSummary{}
	for rows.Next() {
		var s model.ArticleSummary
		var tags []byte
		if err := rows.Scan(&s.Title, &tags, &s.Slug, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgArticleRepository.ListByParentSlug: %w", err)
		}
		if err := decodeTags(tags, &s.Tags); err != nil {
			return nil, fmt.Errorf("pgArticleRepository.ListByParentSlug: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgArticleRepository.ListByParentSlug: %w", err)
	}
	return summaries, nil
}

func (r *pgArticleRepository) UpdateArticle(ctx context.Context, a *model.Article) error {
	tags, err := encodeTags(a.Tags)
	if err != nil {
		return fmt.Errorf("pgArticleRepository.UpdateArticle: %w", err)
	}
	query := `UPDATE articles SET title = $1, content = $2, tags = $3, slug = $4, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, a.Title, a.Content, tags, a.Slug, a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("article with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgArticleRepository.UpdateArticle: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgArticleRepository) UpdateParentSlug(ctx context.Context, slug, parentSlug string) error {
	query := `UPDATE articles SET parent_slug = $1, updated_at = CURRENT_TIMESTAMP WHERE slug = $2`
	res, err := r.db.ExecContext(ctx, query, parentSlug, slug)
	if err != nil {
		return fmt.Errorf("pgArticleRepository.UpdateParentSlug: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgArticleRepository) DeleteArticle(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgArticleRepository.DeleteArticle: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgArticleRepository) CreateParent(ctx context.Context, p *model.ParentArticle) error {
	query := `INSERT INTO parent_articles (id, title, content, slug)
	          VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Title, p.Content, p.Slug)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("parent article with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgArticleRepository.CreateParent: %w", err)
	}
	return nil
}

func (r *pgArticleRepository) FindParentBySlug(ctx context.Context, slug string) (*model.ParentArticle, error) {
	query := `SELECT id, title, content, slug, created_at, updated_at
	          FROM parent_articles WHERE slug = $1`
	p := &model.ParentArticle{}
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&p.ID, &p.Title, &p.Content, &p.Slug, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgArticleRepository.FindParentBySlug: %w", err)
	}
	return p, nil
}

func (r *pgArticleRepository) UpdateParent(ctx context.Context, p *model.ParentArticle) error {
	query := `UPDATE parent_articles SET title = $1, content = $2, slug = $3, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, p.Title, p.Content, p.Slug, p.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("parent article with this slug already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgArticleRepository.UpdateParent: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgArticleRepository) DeleteParent(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM parent_articles WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("pgArticleRepository.DeleteParent: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
