package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository/base"
)

type LessonRepository struct {
	*base.Repository
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{Repository: base.NewRepository(pool)}
}

// CreateIfAbsent inserts a lesson unless one already exists for the same
// (booking, date). Returns whether a row was created, making repeated
// materialization idempotent.
func (r *LessonRepository) CreateIfAbsent(ctx context.Context, lesson *model.Lesson) (bool, error) {
	query := `
		INSERT INTO lessons (booking_id, date, start_minutes, duration_minutes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (booking_id, date) DO NOTHING
	`

	affected, err := r.ExecAffected(ctx, query,
		lesson.BookingID,
		lesson.Date,
		int(lesson.StartTime),
		lesson.DurationMinutes,
	)
	if err != nil {
		return false, fmt.Errorf("create lesson: %w", err)
	}

	return affected > 0, nil
}

// GetByBookingID returns a booking's lessons in date order.
func (r *LessonRepository) GetByBookingID(ctx context.Context, bookingID int64) ([]*model.Lesson, error) {
	query := `
		SELECT id, booking_id, date, start_minutes, duration_minutes, created_at
		FROM lessons
		WHERE booking_id = $1
		ORDER BY date
	`
	return r.queryLessons(ctx, query, bookingID)
}

// GetBetween returns lessons dated within [from, to], for calendar feeds.
func (r *LessonRepository) GetBetween(ctx context.Context, from, to time.Time) ([]*model.Lesson, error) {
	query := `
		SELECT id, booking_id, date, start_minutes, duration_minutes, created_at
		FROM lessons
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, start_minutes
	`
	return r.queryLessons(ctx, query, from, to)
}

// GetByID fetches a lesson, nil if absent.
func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*model.Lesson, error) {
	query := `
		SELECT id, booking_id, date, start_minutes, duration_minutes, created_at
		FROM lessons
		WHERE id = $1
	`

	lessons, err := r.queryLessons(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, nil
	}
	return lessons[0], nil
}

// DeleteByBookingID purges all lessons of a booking. Used when either party
// rejects after approval.
func (r *LessonRepository) DeleteByBookingID(ctx context.Context, bookingID int64) (int64, error) {
	deleted, err := r.ExecAffected(ctx, `DELETE FROM lessons WHERE booking_id = $1`, bookingID)
	if err != nil {
		return 0, fmt.Errorf("delete lessons: %w", err)
	}

	return deleted, nil
}

func (r *LessonRepository) queryLessons(ctx context.Context, query string, args ...interface{}) ([]*model.Lesson, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*model.Lesson
	for rows.Next() {
		var (
			lesson       model.Lesson
			startMinutes int
		)
		err := rows.Scan(
			&lesson.ID,
			&lesson.BookingID,
			&lesson.Date,
			&startMinutes,
			&lesson.DurationMinutes,
			&lesson.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}

		lesson.StartTime = model.TimeOfDay(startMinutes)
		lessons = append(lessons, &lesson)
	}

	return lessons, nil
}
