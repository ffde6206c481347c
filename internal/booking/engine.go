package booking

import (
	"time"

	"github.com/codetutors/tutoring/internal/model"
)

// DeriveStatus computes the booking status from the two approval fields.
// Accepted iff both approved, Declined iff either rejected, Pending
// otherwise.
func DeriveStatus(student, tutor model.Approval) model.BookingStatus {
	if student == model.ApprovalRejected || tutor == model.ApprovalRejected {
		return model.BookingStatusDeclined
	}
	if student == model.ApprovalApproved && tutor == model.ApprovalApproved {
		return model.BookingStatusAccepted
	}
	return model.BookingStatusPending
}

// Validate checks a candidate booking against the tutor's profile, their
// availability windows for the booking's term, and the accepted bookings
// already holding slots with that tutor. tutor may be nil for an unassigned
// booking; windows and accepted must belong to the booking's tutor and term.
//
// Pure check, no side effects. Returns nil or a *ValidationError.
func Validate(b *model.Booking, tutor *model.Tutor, windows []*model.TutorAvailability, accepted []*model.Booking) error {
	if b.TermID == 0 {
		return ErrMissingTerm
	}

	if !b.DayOfWeek.IsValid() {
		return ErrInvalidWeekday
	}

	if tutor == nil {
		// Nothing further to check until an admin assigns a tutor.
		return nil
	}

	if b.SpecializationID != nil && !tutor.OffersSpecialization(*b.SpecializationID) {
		return ErrSpecializationMismatch
	}

	if !withinAvailability(b, windows) {
		return ErrOutsideAvailability
	}

	for _, other := range accepted {
		if other.ID == b.ID {
			continue
		}
		if other.Status != model.BookingStatusAccepted {
			continue
		}
		if other.TermID == b.TermID && other.DayOfWeek == b.DayOfWeek && other.StartTime == b.StartTime {
			return ErrTimeConflict
		}
	}

	return nil
}

// withinAvailability checks that [start, start+duration) lies fully inside
// at least one window covering the booking's weekday.
func withinAvailability(b *model.Booking, windows []*model.TutorAvailability) bool {
	end := b.EndTime()
	for _, w := range windows {
		if w.TermID != b.TermID {
			continue
		}
		if !w.CoversDay(b.DayOfWeek) {
			continue
		}
		if w.Contains(b.StartTime, end) {
			return true
		}
	}
	return false
}

// RecurringDates computes the concrete dates a booking occupies within its
// term: the first date on or after the term start that falls on the
// booking's weekday, then every 7 (Weekly) or 14 (Fortnightly) days through
// the term end. The first-occurrence scan is bounded to seven steps so a
// corrupt weekday value fails instead of looping.
func RecurringDates(term *model.Term, day model.Weekday, freq model.Frequency) ([]time.Time, error) {
	want, ok := day.Time()
	if !ok {
		return nil, ErrInvalidWeekday
	}

	step := freq.Days()
	if step == 0 {
		step = 7
	}

	current := term.StartDate
	found := false
	for i := 0; i < 7; i++ {
		if current.Weekday() == want {
			found = true
			break
		}
		current = current.AddDate(0, 0, 1)
	}
	if !found {
		return nil, ErrInvalidWeekday
	}

	var dates []time.Time
	for !current.After(term.EndDate) {
		dates = append(dates, current)
		current = current.AddDate(0, 0, step)
	}

	return dates, nil
}

// Lessons expands a booking into one lesson per recurring date. The caller
// persists them; idempotence is enforced at the storage layer by the
// (booking, date) uniqueness.
func Lessons(b *model.Booking, term *model.Term) ([]*model.Lesson, error) {
	dates, err := RecurringDates(term, b.DayOfWeek, b.Frequency)
	if err != nil {
		return nil, err
	}

	lessons := make([]*model.Lesson, 0, len(dates))
	for _, date := range dates {
		lessons = append(lessons, &model.Lesson{
			BookingID:       b.ID,
			Date:            date,
			StartTime:       b.StartTime,
			DurationMinutes: b.DurationMinutes,
		})
	}
	return lessons, nil
}
