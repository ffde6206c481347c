package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/codetutors/tutoring/internal/model"
)

// In-memory stores mirroring the repository contracts, including the
// (booking, date) uniqueness the lessons table enforces.

type memLessonStore struct {
	lessons map[string]*model.Lesson
}

func newMemLessonStore() *memLessonStore {
	return &memLessonStore{lessons: make(map[string]*model.Lesson)}
}

func lessonKey(bookingID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", bookingID, date.Format("2006-01-02"))
}

func (s *memLessonStore) CreateIfAbsent(_ context.Context, lesson *model.Lesson) (bool, error) {
	key := lessonKey(lesson.BookingID, lesson.Date)
	if _, ok := s.lessons[key]; ok {
		return false, nil
	}
	lesson.ID = int64(len(s.lessons) + 1)
	s.lessons[key] = lesson
	return true, nil
}

func (s *memLessonStore) DeleteByBookingID(_ context.Context, bookingID int64) (int64, error) {
	var deleted int64
	for key, lesson := range s.lessons {
		if lesson.BookingID == bookingID {
			delete(s.lessons, key)
			deleted++
		}
	}
	return deleted, nil
}

type memBookingStore struct {
	bookings map[int64]*model.Booking
}

func (s *memBookingStore) Create(_ context.Context, b *model.Booking) error {
	b.ID = int64(len(s.bookings) + 1)
	s.bookings[b.ID] = b
	return nil
}

func (s *memBookingStore) GetByID(_ context.Context, id int64) (*model.Booking, error) {
	return s.bookings[id], nil
}

func (s *memBookingStore) GetByStudentID(context.Context, int64) ([]*model.Booking, error) {
	return nil, nil
}

func (s *memBookingStore) GetByTutorID(context.Context, int64) ([]*model.Booking, error) {
	return nil, nil
}

func (s *memBookingStore) GetPending(context.Context) ([]*model.Booking, error) {
	return nil, nil
}

func (s *memBookingStore) GetAccepted(context.Context) ([]*model.Booking, error) {
	return nil, nil
}

func (s *memBookingStore) GetAcceptedForSlot(_ context.Context, tutorID, termID int64, day model.Weekday, start model.TimeOfDay) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range s.bookings {
		if b.Status != model.BookingStatusAccepted || b.TutorID == nil {
			continue
		}
		if *b.TutorID == tutorID && b.TermID == termID && b.DayOfWeek == day && b.StartTime == start {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memBookingStore) UpdateApprovals(_ context.Context, b *model.Booking) error {
	stored, ok := s.bookings[b.ID]
	if !ok {
		return fmt.Errorf("booking not found")
	}
	stored.StudentApproval = b.StudentApproval
	stored.TutorApproval = b.TutorApproval
	stored.Status = b.Status
	return nil
}

func (s *memBookingStore) AssignTutor(_ context.Context, bookingID, tutorID int64) error {
	stored, ok := s.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking not found")
	}
	stored.TutorID = &tutorID
	stored.StudentApproval = model.ApprovalPending
	stored.TutorApproval = model.ApprovalPending
	stored.Status = model.BookingStatusPending
	return nil
}

type memTutorStore struct {
	tutors map[int64]*model.Tutor
}

func (s *memTutorStore) GetByID(_ context.Context, id int64) (*model.Tutor, error) {
	return s.tutors[id], nil
}

type memTermStore struct {
	terms map[int64]*model.Term
}

func (s *memTermStore) GetByID(_ context.Context, id int64) (*model.Term, error) {
	return s.terms[id], nil
}

type memAvailabilityStore struct {
	windows []*model.TutorAvailability
}

func (s *memAvailabilityStore) GetByTutorAndTerm(_ context.Context, tutorID, termID int64) ([]*model.TutorAvailability, error) {
	var out []*model.TutorAvailability
	for _, w := range s.windows {
		if w.TutorID == tutorID && w.TermID == termID {
			out = append(out, w)
		}
	}
	return out, nil
}

type bookingFixture struct {
	service  *BookingService
	bookings *memBookingStore
	lessons  *memLessonStore
}

// newBookingFixture wires a service over in-memory stores seeded with one
// tutor (id 7) available Mondays 09:00-17:00 in the May-July 2024 term
// (id 1).
func newBookingFixture() *bookingFixture {
	bookings := &memBookingStore{bookings: make(map[int64]*model.Booking)}
	lessons := newMemLessonStore()

	tutors := &memTutorStore{tutors: map[int64]*model.Tutor{
		7: {ID: 7, UserID: 70, LanguageIDs: []int64{1}},
	}}
	terms := &memTermStore{terms: map[int64]*model.Term{
		1: {
			ID:        1,
			Name:      model.TermMayJuly,
			StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC),
		},
	}}
	availability := &memAvailabilityStore{windows: []*model.TutorAvailability{
		{
			TutorID:   7,
			TermID:    1,
			Weekdays:  []model.Weekday{model.Monday},
			StartTime: model.MustTimeOfDay("09:00"),
			EndTime:   model.MustTimeOfDay("17:00"),
		},
	}}

	return &bookingFixture{
		service:  NewBookingService(bookings, lessons, tutors, terms, availability, zap.NewNop()),
		bookings: bookings,
		lessons:  lessons,
	}
}

func acceptedMondayBooking() *model.Booking {
	tutorID := int64(7)
	return &model.Booking{
		ID:              1,
		StudentID:       2,
		TutorID:         &tutorID,
		LanguageID:      1,
		TermID:          1,
		DayOfWeek:       model.Monday,
		StartTime:       model.MustTimeOfDay("10:00"),
		DurationMinutes: 60,
		Frequency:       model.FrequencyWeekly,
		StudentApproval: model.ApprovalApproved,
		TutorApproval:   model.ApprovalApproved,
		Status:          model.BookingStatusAccepted,
	}
}

func TestMaterializeLessonsIdempotent(t *testing.T) {
	fx := newBookingFixture()
	b := acceptedMondayBooking()
	fx.bookings.bookings[b.ID] = b

	ctx := context.Background()

	if err := fx.service.MaterializeLessons(ctx, b); err != nil {
		t.Fatalf("first materialization: %v", err)
	}
	if got := len(fx.lessons.lessons); got != 13 {
		t.Fatalf("got %d lessons after first run, want 13", got)
	}

	if err := fx.service.MaterializeLessons(ctx, b); err != nil {
		t.Fatalf("second materialization: %v", err)
	}
	if got := len(fx.lessons.lessons); got != 13 {
		t.Fatalf("got %d lessons after second run, want 13", got)
	}

	// Exactly one lesson per recurring date, each carrying the booking time.
	perDate := make(map[string]int)
	for _, lesson := range fx.lessons.lessons {
		perDate[lesson.Date.Format("2006-01-02")]++
		if lesson.StartTime != b.StartTime {
			t.Errorf("lesson start = %s, want %s", lesson.StartTime, b.StartTime)
		}
	}
	for date, count := range perDate {
		if count != 1 {
			t.Errorf("date %s has %d lessons, want 1", date, count)
		}
	}
}

func TestMaterializeLessonsRequiresAccepted(t *testing.T) {
	fx := newBookingFixture()
	b := acceptedMondayBooking()
	b.Status = model.BookingStatusPending
	fx.bookings.bookings[b.ID] = b

	if err := fx.service.MaterializeLessons(context.Background(), b); err == nil {
		t.Fatal("expected error for non-accepted booking")
	}
	if len(fx.lessons.lessons) != 0 {
		t.Errorf("got %d lessons, want 0", len(fx.lessons.lessons))
	}
}

func TestApproveMaterializesOnDualApproval(t *testing.T) {
	fx := newBookingFixture()
	b := acceptedMondayBooking()
	b.StudentApproval = model.ApprovalPending
	b.TutorApproval = model.ApprovalPending
	b.Status = model.BookingStatusPending
	fx.bookings.bookings[b.ID] = b

	ctx := context.Background()

	updated, err := fx.service.Approve(ctx, b.ID, model.ActorStudent)
	if err != nil {
		t.Fatalf("student approval: %v", err)
	}
	if updated.Status != model.BookingStatusPending {
		t.Fatalf("status after one approval = %s, want Pending", updated.Status)
	}
	if len(fx.lessons.lessons) != 0 {
		t.Fatalf("got %d lessons before dual approval, want 0", len(fx.lessons.lessons))
	}

	updated, err = fx.service.Approve(ctx, b.ID, model.ActorTutor)
	if err != nil {
		t.Fatalf("tutor approval: %v", err)
	}
	if updated.Status != model.BookingStatusAccepted {
		t.Fatalf("status after dual approval = %s, want Accepted", updated.Status)
	}
	if got := len(fx.lessons.lessons); got != 13 {
		t.Fatalf("got %d lessons after dual approval, want 13", got)
	}

	// A repeated approval re-materializes without duplicating.
	if _, err := fx.service.Approve(ctx, b.ID, model.ActorTutor); err != nil {
		t.Fatalf("repeated approval: %v", err)
	}
	if got := len(fx.lessons.lessons); got != 13 {
		t.Fatalf("got %d lessons after repeated approval, want 13", got)
	}
}

func TestRejectPurgesLessons(t *testing.T) {
	fx := newBookingFixture()
	b := acceptedMondayBooking()
	fx.bookings.bookings[b.ID] = b

	ctx := context.Background()

	if err := fx.service.MaterializeLessons(ctx, b); err != nil {
		t.Fatalf("materialization: %v", err)
	}
	if len(fx.lessons.lessons) == 0 {
		t.Fatal("expected lessons before rejection")
	}

	updated, err := fx.service.Reject(ctx, b.ID, model.ActorStudent)
	if err != nil {
		t.Fatalf("rejection: %v", err)
	}
	if updated.Status != model.BookingStatusDeclined {
		t.Fatalf("status after rejection = %s, want Declined", updated.Status)
	}
	if len(fx.lessons.lessons) != 0 {
		t.Errorf("got %d lessons after rejection, want 0", len(fx.lessons.lessons))
	}
}
