package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository/base"
)

type AvailabilityRepository struct {
	*base.Repository
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{Repository: base.NewRepository(pool)}
}

// Create inserts an availability window.
func (r *AvailabilityRepository) Create(ctx context.Context, availability *model.TutorAvailability) error {
	query := `
		INSERT INTO tutor_availability (tutor_id, term_id, weekdays, start_minutes, end_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		availability.TutorID,
		availability.TermID,
		weekdayStrings(availability.Weekdays),
		int(availability.StartTime),
		int(availability.EndTime),
	).Scan(&availability.ID, &availability.CreatedAt)

	if err != nil {
		return fmt.Errorf("create availability: %w", err)
	}

	return nil
}

// GetByTutorAndTerm returns the tutor's windows for one term.
func (r *AvailabilityRepository) GetByTutorAndTerm(ctx context.Context, tutorID, termID int64) ([]*model.TutorAvailability, error) {
	query := `
		SELECT id, tutor_id, term_id, weekdays, start_minutes, end_minutes, created_at
		FROM tutor_availability
		WHERE tutor_id = $1 AND term_id = $2
		ORDER BY start_minutes
	`

	return r.queryWindows(ctx, query, tutorID, termID)
}

// GetByTutorID returns all of the tutor's windows across terms.
func (r *AvailabilityRepository) GetByTutorID(ctx context.Context, tutorID int64) ([]*model.TutorAvailability, error) {
	query := `
		SELECT id, tutor_id, term_id, weekdays, start_minutes, end_minutes, created_at
		FROM tutor_availability
		WHERE tutor_id = $1
		ORDER BY term_id, start_minutes
	`

	return r.queryWindows(ctx, query, tutorID)
}

// Delete removes a window owned by the tutor.
func (r *AvailabilityRepository) Delete(ctx context.Context, id, tutorID int64) error {
	query := `DELETE FROM tutor_availability WHERE id = $1 AND tutor_id = $2`

	affected, err := r.ExecAffected(ctx, query, id, tutorID)
	if err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("availability not found")
	}

	return nil
}

func (r *AvailabilityRepository) queryWindows(ctx context.Context, query string, args ...interface{}) ([]*model.TutorAvailability, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query availability: %w", err)
	}
	defer rows.Close()

	var windows []*model.TutorAvailability
	for rows.Next() {
		var (
			availability model.TutorAvailability
			days         []string
			start, end   int
		)
		err := rows.Scan(
			&availability.ID,
			&availability.TutorID,
			&availability.TermID,
			&days,
			&start,
			&end,
			&availability.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}

		availability.Weekdays = parseWeekdays(days)
		availability.StartTime = model.TimeOfDay(start)
		availability.EndTime = model.TimeOfDay(end)
		windows = append(windows, &availability)
	}

	return windows, nil
}

func weekdayStrings(days []model.Weekday) []string {
	out := make([]string, 0, len(days))
	for _, day := range days {
		out = append(out, string(day))
	}
	return out
}

// parseWeekdays drops values that no longer parse as day names instead of
// failing the whole read.
func parseWeekdays(days []string) []model.Weekday {
	out := make([]model.Weekday, 0, len(days))
	for _, raw := range days {
		day, err := model.ParseWeekday(raw)
		if err != nil {
			continue
		}
		out = append(out, day)
	}
	return out
}
