package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/repository"
	"go.uber.org/zap"
)

// CalendarEvent is one dated lesson occurrence in a calendar feed.
type CalendarEvent struct {
	LessonID  int64     `json:"lesson_id"`
	BookingID int64     `json:"booking_id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

type LessonService struct {
	lessonRepo  *repository.LessonRepository
	bookingRepo *repository.BookingRepository
	userRepo    *repository.UserRepository
	catalogRepo *repository.CatalogRepository
	logger      *zap.Logger
}

func NewLessonService(
	lessonRepo *repository.LessonRepository,
	bookingRepo *repository.BookingRepository,
	userRepo *repository.UserRepository,
	catalogRepo *repository.CatalogRepository,
	logger *zap.Logger,
) *LessonService {
	return &LessonService{
		lessonRepo:  lessonRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetByBookingID returns a booking's lessons in date order.
func (s *LessonService) GetByBookingID(ctx context.Context, bookingID int64) ([]*model.Lesson, error) {
	return s.lessonRepo.GetByBookingID(ctx, bookingID)
}

// GetByID fetches a lesson.
func (s *LessonService) GetByID(ctx context.Context, id int64) (*model.Lesson, error) {
	return s.lessonRepo.GetByID(ctx, id)
}

// CalendarEvents builds the event feed for lessons between two dates.
func (s *LessonService) CalendarEvents(ctx context.Context, from, to time.Time) ([]CalendarEvent, error) {
	lessons, err := s.lessonRepo.GetBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get lessons: %w", err)
	}

	events := make([]CalendarEvent, 0, len(lessons))
	for _, lesson := range lessons {
		booking, err := s.bookingRepo.GetByID(ctx, lesson.BookingID)
		if err != nil {
			return nil, fmt.Errorf("get booking: %w", err)
		}
		if booking == nil {
			continue
		}

		title, err := s.eventTitle(ctx, booking)
		if err != nil {
			return nil, err
		}

		start := lesson.StartTime.At(lesson.Date, time.UTC)
		events = append(events, CalendarEvent{
			LessonID:  lesson.ID,
			BookingID: booking.ID,
			Title:     title,
			Start:     start,
			End:       start.Add(time.Duration(lesson.DurationMinutes) * time.Minute),
		})
	}

	return events, nil
}

func (s *LessonService) eventTitle(ctx context.Context, booking *model.Booking) (string, error) {
	student, err := s.userRepo.GetByID(ctx, booking.StudentID)
	if err != nil {
		return "", fmt.Errorf("get student: %w", err)
	}

	language, err := s.catalogRepo.GetLanguageByID(ctx, booking.LanguageID)
	if err != nil {
		return "", fmt.Errorf("get language: %w", err)
	}

	name := "unknown student"
	if student != nil {
		name = student.FullName()
	}
	subject := "lesson"
	if language != nil {
		subject = language.Name
	}

	return fmt.Sprintf("%s - %s", subject, name), nil
}
