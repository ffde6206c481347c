package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository/base"
)

type ApplicationRepository struct {
	*base.Repository
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{Repository: base.NewRepository(pool)}
}

// Create inserts a pending tutor application.
func (r *ApplicationRepository) Create(ctx context.Context, application *model.TutorApplication) error {
	query := `
		INSERT INTO tutor_applications (user_id, status, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.QueryRow(ctx, query,
		application.UserID,
		application.Status,
		application.Message,
	).Scan(&application.ID, &application.CreatedAt)

	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	return nil
}

// GetByID fetches an application, nil if absent.
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*model.TutorApplication, error) {
	query := `
		SELECT id, user_id, status, message, created_at, updated_at
		FROM tutor_applications
		WHERE id = $1
	`

	return r.scanOne(r.QueryRow(ctx, query, id))
}

// GetByUserID fetches a user's application, nil if absent.
func (r *ApplicationRepository) GetByUserID(ctx context.Context, userID int64) (*model.TutorApplication, error) {
	query := `
		SELECT id, user_id, status, message, created_at, updated_at
		FROM tutor_applications
		WHERE user_id = $1
	`

	return r.scanOne(r.QueryRow(ctx, query, userID))
}

// UpdateStatus records the admin's verdict.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status model.ApplicationStatus) error {
	query := `
		UPDATE tutor_applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	affected, err := r.ExecAffected(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("application not found")
	}

	return nil
}

// ListPending returns applications awaiting review, oldest first.
func (r *ApplicationRepository) ListPending(ctx context.Context) ([]*model.TutorApplication, error) {
	query := `
		SELECT id, user_id, status, message, created_at, updated_at
		FROM tutor_applications
		WHERE status = $1
		ORDER BY created_at ASC
	`

	rows, err := r.Query(ctx, query, model.ApplicationStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending applications: %w", err)
	}
	defer rows.Close()

	var applications []*model.TutorApplication
	for rows.Next() {
		var application model.TutorApplication
		err := rows.Scan(
			&application.ID,
			&application.UserID,
			&application.Status,
			&application.Message,
			&application.CreatedAt,
			&application.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		applications = append(applications, &application)
	}

	return applications, nil
}

func (r *ApplicationRepository) scanOne(row pgx.Row) (*model.TutorApplication, error) {
	var application model.TutorApplication
	err := row.Scan(
		&application.ID,
		&application.UserID,
		&application.Status,
		&application.Message,
		&application.CreatedAt,
		&application.UpdatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application: %w", err)
	}

	return &application, nil
}
