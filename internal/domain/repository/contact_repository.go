package repository

import (
	"context"
	"database/sql"
	"fmt"

	"upsc_portal/internal/domain/model"
)

type ContactRepository interface {
	Create(ctx context.Context, m *model.ContactMessage) error
}

type pgContactRepository struct {
	db *sql.DB
}

func NewPgContactRepository(db *sql.DB) ContactRepository {
	return &pgContactRepository{db: db}
}

func (r *pgContactRepository) Create(ctx context.Context, m *model.ContactMessage) error {
	query := `INSERT INTO contact_messages (id, name, email, phone, message)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Email, m.Phone, m.Message)
	if err != nil {
		return fmt.Errorf("pgContactRepository.Create: %w", err)
	}
	return nil
}
