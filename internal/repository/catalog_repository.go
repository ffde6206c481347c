package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository/base"
)

// CatalogRepository manages the language and specialization reference data.
type CatalogRepository struct {
	*base.Repository
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{Repository: base.NewRepository(pool)}
}

// CreateLanguage inserts a language.
func (r *CatalogRepository) CreateLanguage(ctx context.Context, language *model.Language) error {
	query := `INSERT INTO languages (name) VALUES ($1) RETURNING id`

	if err := r.QueryRow(ctx, query, language.Name).Scan(&language.ID); err != nil {
		return fmt.Errorf("create language: %w", err)
	}

	return nil
}

// GetLanguageByID fetches a language, nil if absent.
func (r *CatalogRepository) GetLanguageByID(ctx context.Context, id int64) (*model.Language, error) {
	query := `SELECT id, name FROM languages WHERE id = $1`

	var language model.Language
	err := r.QueryRow(ctx, query, id).Scan(&language.ID, &language.Name)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get language by id: %w", err)
	}

	return &language, nil
}

// ListLanguages returns all languages ordered by name.
func (r *CatalogRepository) ListLanguages(ctx context.Context) ([]*model.Language, error) {
	rows, err := r.Query(ctx, `SELECT id, name FROM languages ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	var languages []*model.Language
	for rows.Next() {
		var language model.Language
		if err := rows.Scan(&language.ID, &language.Name); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		languages = append(languages, &language)
	}

	return languages, nil
}

// CreateSpecialization inserts a specialization and its language links.
func (r *CatalogRepository) CreateSpecialization(ctx context.Context, spec *model.Specialization) error {
	tx, err := r.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO specializations (name) VALUES ($1) RETURNING id`
	if err := tx.QueryRow(ctx, query, spec.Name).Scan(&spec.ID); err != nil {
		return fmt.Errorf("create specialization: %w", err)
	}

	for _, language := range spec.Languages {
		_, err := tx.Exec(ctx,
			`INSERT INTO specialization_languages (specialization_id, language_id) VALUES ($1, $2)`,
			spec.ID, language.ID)
		if err != nil {
			return fmt.Errorf("link specialization language: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetSpecializationByID fetches a specialization with its languages, nil if
// absent.
func (r *CatalogRepository) GetSpecializationByID(ctx context.Context, id int64) (*model.Specialization, error) {
	query := `SELECT id, name FROM specializations WHERE id = $1`

	var spec model.Specialization
	err := r.QueryRow(ctx, query, id).Scan(&spec.ID, &spec.Name)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get specialization by id: %w", err)
	}

	languages, err := r.specializationLanguages(ctx, spec.ID)
	if err != nil {
		return nil, err
	}
	spec.Languages = languages

	return &spec, nil
}

// ListSpecializations returns all specializations with their languages.
func (r *CatalogRepository) ListSpecializations(ctx context.Context) ([]*model.Specialization, error) {
	rows, err := r.Query(ctx, `SELECT id, name FROM specializations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list specializations: %w", err)
	}
	defer rows.Close()

	var specs []*model.Specialization
	for rows.Next() {
		var spec model.Specialization
		if err := rows.Scan(&spec.ID, &spec.Name); err != nil {
			return nil, fmt.Errorf("scan specialization: %w", err)
		}
		specs = append(specs, &spec)
	}
	rows.Close()

	for _, spec := range specs {
		languages, err := r.specializationLanguages(ctx, spec.ID)
		if err != nil {
			return nil, err
		}
		spec.Languages = languages
	}

	return specs, nil
}

func (r *CatalogRepository) specializationLanguages(ctx context.Context, specID int64) ([]model.Language, error) {
	query := `
		SELECT l.id, l.name
		FROM languages l
		JOIN specialization_languages sl ON sl.language_id = l.id
		WHERE sl.specialization_id = $1
		ORDER BY l.name
	`

	rows, err := r.Query(ctx, query, specID)
	if err != nil {
		return nil, fmt.Errorf("list specialization languages: %w", err)
	}
	defer rows.Close()

	var languages []model.Language
	for rows.Next() {
		var language model.Language
		if err := rows.Scan(&language.ID, &language.Name); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		languages = append(languages, language)
	}

	return languages, nil
}
