package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository/base"
)

type TutorRepository struct {
	*base.Repository
}

func NewTutorRepository(pool *pgxpool.Pool) *TutorRepository {
	return &TutorRepository{Repository: base.NewRepository(pool)}
}

// Create inserts a tutor profile for a user.
func (r *TutorRepository) Create(ctx context.Context, tutor *model.Tutor) error {
	query := `
		INSERT INTO tutors (user_id)
		VALUES ($1)
		RETURNING id, created_at
	`

	err := r.QueryRow(ctx, query, tutor.UserID).Scan(&tutor.ID, &tutor.CreatedAt)
	if err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}

	return nil
}

// GetByID fetches a tutor with language and specialization ids, nil if
// absent.
func (r *TutorRepository) GetByID(ctx context.Context, id int64) (*model.Tutor, error) {
	query := `
		SELECT id, user_id, created_at
		FROM tutors
		WHERE id = $1
	`

	var tutor model.Tutor
	err := r.QueryRow(ctx, query, id).Scan(&tutor.ID, &tutor.UserID, &tutor.CreatedAt)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tutor by id: %w", err)
	}

	if err := r.loadProfile(ctx, &tutor); err != nil {
		return nil, err
	}

	return &tutor, nil
}

// GetByUserID fetches the tutor profile belonging to a user, nil if absent.
func (r *TutorRepository) GetByUserID(ctx context.Context, userID int64) (*model.Tutor, error) {
	query := `
		SELECT id, user_id, created_at
		FROM tutors
		WHERE user_id = $1
	`

	var tutor model.Tutor
	err := r.QueryRow(ctx, query, userID).Scan(&tutor.ID, &tutor.UserID, &tutor.CreatedAt)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tutor by user id: %w", err)
	}

	if err := r.loadProfile(ctx, &tutor); err != nil {
		return nil, err
	}

	return &tutor, nil
}

// SetLanguages replaces the tutor's taught languages.
func (r *TutorRepository) SetLanguages(ctx context.Context, tutorID int64, languageIDs []int64) error {
	tx, err := r.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tutor_languages WHERE tutor_id = $1`, tutorID); err != nil {
		return fmt.Errorf("clear tutor languages: %w", err)
	}

	for _, languageID := range languageIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO tutor_languages (tutor_id, language_id) VALUES ($1, $2)`,
			tutorID, languageID)
		if err != nil {
			return fmt.Errorf("add tutor language: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// SetSpecializations replaces the tutor's offered specializations.
func (r *TutorRepository) SetSpecializations(ctx context.Context, tutorID int64, specializationIDs []int64) error {
	tx, err := r.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tutor_specializations WHERE tutor_id = $1`, tutorID); err != nil {
		return fmt.Errorf("clear tutor specializations: %w", err)
	}

	for _, specializationID := range specializationIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO tutor_specializations (tutor_id, specialization_id) VALUES ($1, $2)`,
			tutorID, specializationID)
		if err != nil {
			return fmt.Errorf("add tutor specialization: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// List returns all tutor profiles with their language/specialization ids.
func (r *TutorRepository) List(ctx context.Context) ([]*model.Tutor, error) {
	query := `
		SELECT id, user_id, created_at
		FROM tutors
		ORDER BY id
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer rows.Close()

	var tutors []*model.Tutor
	for rows.Next() {
		var tutor model.Tutor
		if err := rows.Scan(&tutor.ID, &tutor.UserID, &tutor.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		tutors = append(tutors, &tutor)
	}
	rows.Close()

	for _, tutor := range tutors {
		if err := r.loadProfile(ctx, tutor); err != nil {
			return nil, err
		}
	}

	return tutors, nil
}

// loadProfile fills LanguageIDs and SpecializationIDs.
func (r *TutorRepository) loadProfile(ctx context.Context, tutor *model.Tutor) error {
	languageIDs, err := r.collectIDs(ctx,
		`SELECT language_id FROM tutor_languages WHERE tutor_id = $1 ORDER BY language_id`, tutor.ID)
	if err != nil {
		return fmt.Errorf("load tutor languages: %w", err)
	}
	tutor.LanguageIDs = languageIDs

	specializationIDs, err := r.collectIDs(ctx,
		`SELECT specialization_id FROM tutor_specializations WHERE tutor_id = $1 ORDER BY specialization_id`, tutor.ID)
	if err != nil {
		return fmt.Errorf("load tutor specializations: %w", err)
	}
	tutor.SpecializationIDs = specializationIDs

	return nil
}

func (r *TutorRepository) collectIDs(ctx context.Context, query string, arg interface{}) ([]int64, error) {
	rows, err := r.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
