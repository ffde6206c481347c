package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository/base"
)

const bookingColumns = `
	id, reference, student_id, tutor_id, language_id, specialization_id, term_id,
	day_of_week, start_minutes, duration_minutes, frequency, experience_level,
	student_approval, tutor_approval, status, created_at, updated_at
`

type BookingRepository struct {
	*base.Repository
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{Repository: base.NewRepository(pool)}
}

// Create inserts a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			reference, student_id, tutor_id, language_id, specialization_id, term_id,
			day_of_week, start_minutes, duration_minutes, frequency, experience_level,
			student_approval, tutor_approval, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	err := r.QueryRow(
		ctx, query,
		booking.Reference,
		booking.StudentID,
		booking.TutorID,
		booking.LanguageID,
		booking.SpecializationID,
		booking.TermID,
		booking.DayOfWeek,
		int(booking.StartTime),
		booking.DurationMinutes,
		booking.Frequency,
		booking.ExperienceLevel,
		booking.StudentApproval,
		booking.TutorApproval,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// GetByID fetches a booking, nil if absent.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	return booking, nil
}

// GetByStudentID returns a student's bookings, newest first.
func (r *BookingRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE student_id = $1 ORDER BY created_at DESC`
	return r.queryBookings(ctx, query, studentID)
}

// GetByTutorID returns a tutor's bookings, newest first.
func (r *BookingRepository) GetByTutorID(ctx context.Context, tutorID int64) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE tutor_id = $1 ORDER BY created_at DESC`
	return r.queryBookings(ctx, query, tutorID)
}

// GetPending returns all pending bookings, oldest first, for admin review.
func (r *BookingRepository) GetPending(ctx context.Context) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 ORDER BY created_at ASC`
	return r.queryBookings(ctx, query, model.BookingStatusPending)
}

// GetAccepted returns all accepted bookings.
func (r *BookingRepository) GetAccepted(ctx context.Context) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 ORDER BY created_at ASC`
	return r.queryBookings(ctx, query, model.BookingStatusAccepted)
}

// GetAcceptedForSlot returns accepted bookings matching the uniqueness tuple
// (tutor, term, weekday, start time).
func (r *BookingRepository) GetAcceptedForSlot(ctx context.Context, tutorID, termID int64, day model.Weekday, start model.TimeOfDay) ([]*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE tutor_id = $1 AND term_id = $2 AND day_of_week = $3 AND start_minutes = $4
		  AND status = $5
	`
	return r.queryBookings(ctx, query, tutorID, termID, day, int(start), model.BookingStatusAccepted)
}

// UpdateApprovals persists the approval fields and the derived status.
func (r *BookingRepository) UpdateApprovals(ctx context.Context, booking *model.Booking) error {
	query := `
		UPDATE bookings
		SET student_approval = $1, tutor_approval = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	affected, err := r.ExecAffected(ctx, query,
		booking.StudentApproval,
		booking.TutorApproval,
		booking.Status,
		booking.ID,
	)
	if err != nil {
		return fmt.Errorf("update booking approvals: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

// AssignTutor sets the tutor and resets both approvals to pending.
func (r *BookingRepository) AssignTutor(ctx context.Context, bookingID, tutorID int64) error {
	query := `
		UPDATE bookings
		SET tutor_id = $1, student_approval = $2, tutor_approval = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	affected, err := r.ExecAffected(ctx, query,
		tutorID, model.ApprovalPending, model.BookingStatusPending, bookingID)
	if err != nil {
		return fmt.Errorf("assign tutor: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

// Delete removes a booking; lessons cascade.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.ExecAffected(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

// IsUniqueViolation reports whether the error is the accepted-slot unique
// index rejecting a second accepted booking for the same tuple.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]*model.Booking, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var (
		booking      model.Booking
		startMinutes int
	)
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.StudentID,
		&booking.TutorID,
		&booking.LanguageID,
		&booking.SpecializationID,
		&booking.TermID,
		&booking.DayOfWeek,
		&startMinutes,
		&booking.DurationMinutes,
		&booking.Frequency,
		&booking.ExperienceLevel,
		&booking.StudentApproval,
		&booking.TutorApproval,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.StartTime = model.TimeOfDay(startMinutes)
	return &booking, nil
}
