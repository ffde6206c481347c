package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository/base"
)

type TermRepository struct {
	*base.Repository
}

func NewTermRepository(pool *pgxpool.Pool) *TermRepository {
	return &TermRepository{Repository: base.NewRepository(pool)}
}

// Create inserts a term.
func (r *TermRepository) Create(ctx context.Context, term *model.Term) error {
	query := `
		INSERT INTO terms (name, start_date, end_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.QueryRow(ctx, query, term.Name, term.StartDate, term.EndDate).
		Scan(&term.ID, &term.CreatedAt)
	if err != nil {
		return fmt.Errorf("create term: %w", err)
	}

	return nil
}

// GetByID fetches a term, nil if absent.
func (r *TermRepository) GetByID(ctx context.Context, id int64) (*model.Term, error) {
	query := `
		SELECT id, name, start_date, end_date, created_at
		FROM terms
		WHERE id = $1
	`

	var term model.Term
	err := r.QueryRow(ctx, query, id).Scan(
		&term.ID,
		&term.Name,
		&term.StartDate,
		&term.EndDate,
		&term.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get term by id: %w", err)
	}

	return &term, nil
}

// List returns all terms ordered by start date.
func (r *TermRepository) List(ctx context.Context) ([]*model.Term, error) {
	query := `
		SELECT id, name, start_date, end_date, created_at
		FROM terms
		ORDER BY start_date
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	var terms []*model.Term
	for rows.Next() {
		var term model.Term
		err := rows.Scan(
			&term.ID,
			&term.Name,
			&term.StartDate,
			&term.EndDate,
			&term.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, &term)
	}

	return terms, nil
}
