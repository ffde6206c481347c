package service

import (
	"context"
	"fmt"

	"github.com/codetutors/tutoring/internal/booking"
	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The narrow store surfaces the booking workflow needs. Satisfied by the
// repository package.
type bookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*model.Booking, error)
	GetByTutorID(ctx context.Context, tutorID int64) ([]*model.Booking, error)
	GetPending(ctx context.Context) ([]*model.Booking, error)
	GetAccepted(ctx context.Context) ([]*model.Booking, error)
	GetAcceptedForSlot(ctx context.Context, tutorID, termID int64, day model.Weekday, start model.TimeOfDay) ([]*model.Booking, error)
	UpdateApprovals(ctx context.Context, b *model.Booking) error
	AssignTutor(ctx context.Context, bookingID, tutorID int64) error
}

type lessonStore interface {
	CreateIfAbsent(ctx context.Context, lesson *model.Lesson) (bool, error)
	DeleteByBookingID(ctx context.Context, bookingID int64) (int64, error)
}

type tutorStore interface {
	GetByID(ctx context.Context, id int64) (*model.Tutor, error)
}

type termStore interface {
	GetByID(ctx context.Context, id int64) (*model.Term, error)
}

type availabilityStore interface {
	GetByTutorAndTerm(ctx context.Context, tutorID, termID int64) ([]*model.TutorAvailability, error)
}

type BookingService struct {
	bookingRepo      bookingStore
	lessonRepo       lessonStore
	tutorRepo        tutorStore
	termRepo         termStore
	availabilityRepo availabilityStore
	logger           *zap.Logger
}

func NewBookingService(
	bookingRepo bookingStore,
	lessonRepo lessonStore,
	tutorRepo tutorStore,
	termRepo termStore,
	availabilityRepo availabilityStore,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:      bookingRepo,
		lessonRepo:       lessonRepo,
		tutorRepo:        tutorRepo,
		termRepo:         termRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// CreateBooking validates and persists a new booking. The tutor may be
// unassigned; an admin assigns one later. Approvals start pending.
func (s *BookingService) CreateBooking(ctx context.Context, b *model.Booking) error {
	b.Reference = uuid.New()
	b.StudentApproval = model.ApprovalPending
	b.TutorApproval = model.ApprovalPending
	b.Status = booking.DeriveStatus(b.StudentApproval, b.TutorApproval)
	if b.Frequency == "" {
		b.Frequency = model.FrequencyWeekly
	}

	if err := s.validate(ctx, b); err != nil {
		return err
	}

	if err := s.bookingRepo.Create(ctx, b); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("Booking created",
		zap.Int64("booking_id", b.ID),
		zap.String("reference", b.Reference.String()),
		zap.Int64("student_id", b.StudentID),
		zap.Int64("term_id", b.TermID),
		zap.String("day_of_week", b.DayOfWeek.String()),
		zap.String("start_time", b.StartTime.String()),
	)

	return nil
}

// AssignTutor sets the tutor on a booking after validating the booking fits
// the tutor's profile and availability. Both approvals reset to pending and
// any previously materialized lessons are purged.
func (s *BookingService) AssignTutor(ctx context.Context, bookingID, tutorID int64) (*model.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("booking not found")
	}

	b.TutorID = &tutorID
	if err := s.validate(ctx, b); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.AssignTutor(ctx, bookingID, tutorID); err != nil {
		return nil, fmt.Errorf("assign tutor: %w", err)
	}

	if _, err := s.lessonRepo.DeleteByBookingID(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("purge lessons: %w", err)
	}

	s.logger.Info("Tutor assigned",
		zap.Int64("booking_id", bookingID),
		zap.Int64("tutor_id", tutorID),
	)

	return s.bookingRepo.GetByID(ctx, bookingID)
}

// Approve records the actor's approval and, when both sides have approved,
// materializes the booking's lessons.
func (s *BookingService) Approve(ctx context.Context, bookingID int64, actor model.Actor) (*model.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("booking not found")
	}

	switch actor {
	case model.ActorStudent:
		b.StudentApproval = model.ApprovalApproved
	case model.ActorTutor:
		b.TutorApproval = model.ApprovalApproved
	default:
		return nil, fmt.Errorf("unknown actor %q", actor)
	}

	previous := b.Status
	b.Status = booking.DeriveStatus(b.StudentApproval, b.TutorApproval)

	if b.Status == model.BookingStatusAccepted && previous != model.BookingStatusAccepted {
		// Re-check the slot right before committing to Accepted.
		if err := s.validate(ctx, b); err != nil {
			return nil, err
		}
	}

	if err := s.bookingRepo.UpdateApprovals(ctx, b); err != nil {
		// Two concurrent approvals can both pass the validation read; the
		// partial unique index on accepted slots rejects the loser here.
		if repository.IsUniqueViolation(err) {
			return nil, booking.ErrTimeConflict
		}
		return nil, fmt.Errorf("update approvals: %w", err)
	}

	s.logger.Info("Booking approval recorded",
		zap.Int64("booking_id", b.ID),
		zap.String("actor", string(actor)),
		zap.String("status", string(b.Status)),
	)

	if b.Status == model.BookingStatusAccepted {
		if err := s.MaterializeLessons(ctx, b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Reject records the actor's rejection. Any lessons already materialized
// are deleted once the booking is declined.
func (s *BookingService) Reject(ctx context.Context, bookingID int64, actor model.Actor) (*model.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("booking not found")
	}

	switch actor {
	case model.ActorStudent:
		b.StudentApproval = model.ApprovalRejected
	case model.ActorTutor:
		b.TutorApproval = model.ApprovalRejected
	default:
		return nil, fmt.Errorf("unknown actor %q", actor)
	}

	b.Status = booking.DeriveStatus(b.StudentApproval, b.TutorApproval)

	if err := s.bookingRepo.UpdateApprovals(ctx, b); err != nil {
		return nil, fmt.Errorf("update approvals: %w", err)
	}

	if b.Status == model.BookingStatusDeclined {
		deleted, err := s.lessonRepo.DeleteByBookingID(ctx, bookingID)
		if err != nil {
			return nil, fmt.Errorf("purge lessons: %w", err)
		}

		s.logger.Info("Booking declined",
			zap.Int64("booking_id", b.ID),
			zap.String("actor", string(actor)),
			zap.Int64("lessons_deleted", deleted),
		)
	}

	return b, nil
}

// MaterializeLessons creates one lesson per recurring date of an accepted
// booking. Safe to call repeatedly: existing (booking, date) rows are kept,
// never duplicated.
func (s *BookingService) MaterializeLessons(ctx context.Context, b *model.Booking) error {
	if b.Status != model.BookingStatusAccepted {
		return fmt.Errorf("booking %d is not accepted", b.ID)
	}

	term, err := s.termRepo.GetByID(ctx, b.TermID)
	if err != nil {
		return fmt.Errorf("get term: %w", err)
	}
	if term == nil {
		return booking.ErrMissingTerm
	}

	lessons, err := booking.Lessons(b, term)
	if err != nil {
		return err
	}

	created := 0
	for _, lesson := range lessons {
		ok, err := s.lessonRepo.CreateIfAbsent(ctx, lesson)
		if err != nil {
			return fmt.Errorf("materialize lesson: %w", err)
		}
		if ok {
			created++
		}
	}

	s.logger.Info("Lessons materialized",
		zap.Int64("booking_id", b.ID),
		zap.Int("total", len(lessons)),
		zap.Int("created", created),
	)

	return nil
}

// GetByID fetches a booking.
func (s *BookingService) GetByID(ctx context.Context, bookingID int64) (*model.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

// GetStudentBookings returns a student's bookings.
func (s *BookingService) GetStudentBookings(ctx context.Context, studentID int64) ([]*model.Booking, error) {
	return s.bookingRepo.GetByStudentID(ctx, studentID)
}

// GetTutorBookings returns a tutor's bookings.
func (s *BookingService) GetTutorBookings(ctx context.Context, tutorID int64) ([]*model.Booking, error) {
	return s.bookingRepo.GetByTutorID(ctx, tutorID)
}

// GetPendingBookings returns all bookings awaiting approval, for admins.
func (s *BookingService) GetPendingBookings(ctx context.Context) ([]*model.Booking, error) {
	return s.bookingRepo.GetPending(ctx)
}

// GetAcceptedBookings returns all accepted bookings.
func (s *BookingService) GetAcceptedBookings(ctx context.Context) ([]*model.Booking, error) {
	return s.bookingRepo.GetAccepted(ctx)
}

// validate loads the tutor context for a candidate booking and runs the rule
// engine.
func (s *BookingService) validate(ctx context.Context, b *model.Booking) error {
	if b.TermID == 0 {
		return booking.ErrMissingTerm
	}

	var (
		tutor    *model.Tutor
		windows  []*model.TutorAvailability
		accepted []*model.Booking
	)

	if b.TutorID != nil {
		var err error
		tutor, err = s.tutorRepo.GetByID(ctx, *b.TutorID)
		if err != nil {
			return fmt.Errorf("get tutor: %w", err)
		}
		if tutor == nil {
			return fmt.Errorf("tutor not found")
		}

		windows, err = s.availabilityRepo.GetByTutorAndTerm(ctx, tutor.ID, b.TermID)
		if err != nil {
			return fmt.Errorf("get availability: %w", err)
		}

		accepted, err = s.bookingRepo.GetAcceptedForSlot(ctx, tutor.ID, b.TermID, b.DayOfWeek, b.StartTime)
		if err != nil {
			return fmt.Errorf("get accepted bookings: %w", err)
		}
	}

	return booking.Validate(b, tutor, windows, accepted)
}
