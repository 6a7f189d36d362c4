package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"upsc_portal/internal/common"
	"upsc_portal/internal/common/timerange"
	"upsc_portal/internal/domain/model"
)

type DatedArticleRepository interface {
	Create(ctx context.Context, a *model.DatedArticle) error
	FindByID(ctx context.Context, id string) (*model.DatedArticle, error)
	// ListInRange returns articles of the given type with date in [start, end).
	ListInRange(ctx context.Context, typ timerange.Granularity, start, end time.Time) ([]model.DatedArticle, error)
	Update(ctx context.Context, a *model.DatedArticle) error
	Delete(ctx context.Context, id string) error
}

type pgDatedArticleRepository struct {
	db *sql.DB
}

func NewPgDatedArticleRepository(db *sql.DB) DatedArticleRepository {
	return &pgDatedArticleRepository{db: db}
}

func (r *pgDatedArticleRepository) Create(ctx context.Context, a *model.DatedArticle) error {
	query := `INSERT INTO dated_articles (id, title, content, type, date)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Title, a.Content, string(a.Type), a.Date)
	if err != nil {
		return fmt.Errorf("pgDatedArticleRepository.Create: %w", err)
	}
	return nil
}

func (r *pgDatedArticleRepository) FindByID(ctx context.Context, id string) (*model.DatedArticle, error) {
	query := `SELECT id, title, content, type, date, created_at, updated_at
	          FROM dated_articles WHERE id = $1`
	a := &model.DatedArticle{}
	var typ string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Content, &typ, &a.Date, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgDatedArticleRepository.FindByID: %w", err)
	}
	a.Type = timerange.Granularity(typ)
	return a, nil
}

func (r *pgDatedArticleRepository) ListInRange(ctx context.Context, typ timerange.Granularity, start, end time.Time) ([]model.DatedArticle, error) {
	query := `SELECT id, title, content, type, date, created_at, updated_at
	          FROM dated_articles
	          WHERE type = $1 AND date >= $2 AND date < $3
	          ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, string(typ), start, end)
	if err != nil {
		return nil, fmt.Errorf("pgDatedArticleRepository.ListInRange: %w", err)
	}
	defer rows.Close()

	articles := []model.DatedArticle{}
	for rows.Next() {
		var a model.DatedArticle
		var t string
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &t, &a.Date, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgDatedArticleRepository.ListInRange: %w", err)
		}
		a.Type = timerange.Granularity(t)
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgDatedArticleRepository.ListInRange: %w", err)
	}
	return articles, nil
}

func (r *pgDatedArticleRepository) Update(ctx context.Context, a *model.DatedArticle) error {
	query := `UPDATE dated_articles SET title = $1, content = $2, type = $3, date = $4, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, a.Title, a.Content, string(a.Type), a.Date, a.ID)
	if err != nil {
		return fmt.Errorf("pgDatedArticleRepository.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgDatedArticleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dated_articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgDatedArticleRepository.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
