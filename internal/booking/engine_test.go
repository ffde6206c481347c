package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/codetutors/tutoring/internal/model"
)

func mayJulyTerm() *model.Term {
	return &model.Term{
		ID:        1,
		Name:      model.TermMayJuly,
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		student model.Approval
		tutor   model.Approval
		want    model.BookingStatus
	}{
		{model.ApprovalPending, model.ApprovalPending, model.BookingStatusPending},
		{model.ApprovalApproved, model.ApprovalPending, model.BookingStatusPending},
		{model.ApprovalPending, model.ApprovalApproved, model.BookingStatusPending},
		{model.ApprovalApproved, model.ApprovalApproved, model.BookingStatusAccepted},
		{model.ApprovalRejected, model.ApprovalPending, model.BookingStatusDeclined},
		{model.ApprovalPending, model.ApprovalRejected, model.BookingStatusDeclined},
		{model.ApprovalApproved, model.ApprovalRejected, model.BookingStatusDeclined},
		{model.ApprovalRejected, model.ApprovalApproved, model.BookingStatusDeclined},
	}

	for _, tt := range tests {
		got := DeriveStatus(tt.student, tt.tutor)
		if got != tt.want {
			t.Errorf("DeriveStatus(%s, %s) = %s, want %s", tt.student, tt.tutor, got, tt.want)
		}
	}
}

func TestRecurringDatesWeekly(t *testing.T) {
	dates, err := RecurringDates(mayJulyTerm(), model.Monday, model.FrequencyWeekly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(dates) != 13 {
		t.Fatalf("got %d dates, want 13", len(dates))
	}

	first := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	if !dates[0].Equal(first) {
		t.Errorf("first date = %s, want %s", dates[0].Format("2006-01-02"), first.Format("2006-01-02"))
	}

	for i, date := range dates {
		if date.Weekday() != time.Monday {
			t.Errorf("date %d (%s) is not a Monday", i, date.Format("2006-01-02"))
		}
		if i > 0 {
			if gap := date.Sub(dates[i-1]); gap != 7*24*time.Hour {
				t.Errorf("gap before date %d = %s, want 168h", i, gap)
			}
		}
	}

	last := dates[len(dates)-1]
	if last.After(time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last date %s exceeds term end", last.Format("2006-01-02"))
	}
}

func TestRecurringDatesFortnightly(t *testing.T) {
	dates, err := RecurringDates(mayJulyTerm(), model.Monday, model.FrequencyFortnightly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(dates) != 7 {
		t.Fatalf("got %d dates, want 7", len(dates))
	}

	for i := 1; i < len(dates); i++ {
		if gap := dates[i].Sub(dates[i-1]); gap != 14*24*time.Hour {
			t.Errorf("gap before date %d = %s, want 336h", i, gap)
		}
	}
}

func TestRecurringDatesDeterministic(t *testing.T) {
	first, err := RecurringDates(mayJulyTerm(), model.Friday, model.FrequencyWeekly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := RecurringDates(mayJulyTerm(), model.Friday, model.FrequencyWeekly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("date %d differs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestRecurringDatesInvalidWeekday(t *testing.T) {
	_, err := RecurringDates(mayJulyTerm(), model.Weekday("Funday"), model.FrequencyWeekly)
	if !errors.Is(err, ErrInvalidWeekday) {
		t.Fatalf("got %v, want ErrInvalidWeekday", err)
	}
}

func TestRecurringDatesStartsOnMatchingDay(t *testing.T) {
	// 2024-05-01 is a Wednesday; the first occurrence is the start date
	// itself.
	dates, err := RecurringDates(mayJulyTerm(), model.Wednesday, model.FrequencyWeekly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !dates[0].Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first date = %s, want 2024-05-01", dates[0].Format("2006-01-02"))
	}
}

func testTutor() *model.Tutor {
	return &model.Tutor{
		ID:                7,
		UserID:            70,
		LanguageIDs:       []int64{1, 2},
		SpecializationIDs: []int64{5},
	}
}

func mondayWindow(start, end string) *model.TutorAvailability {
	return &model.TutorAvailability{
		TutorID:   7,
		TermID:    1,
		Weekdays:  []model.Weekday{model.Monday},
		StartTime: model.MustTimeOfDay(start),
		EndTime:   model.MustTimeOfDay(end),
	}
}

func candidate(start string, duration int) *model.Booking {
	tutorID := int64(7)
	return &model.Booking{
		ID:              100,
		StudentID:       1,
		TutorID:         &tutorID,
		LanguageID:      1,
		TermID:          1,
		DayOfWeek:       model.Monday,
		StartTime:       model.MustTimeOfDay(start),
		DurationMinutes: duration,
		Frequency:       model.FrequencyWeekly,
	}
}

func TestValidateMissingTerm(t *testing.T) {
	b := candidate("10:00", 60)
	b.TermID = 0

	err := Validate(b, testTutor(), nil, nil)
	if !errors.Is(err, ErrMissingTerm) {
		t.Fatalf("got %v, want ErrMissingTerm", err)
	}
}

func TestValidateUnassignedTutorPasses(t *testing.T) {
	b := candidate("10:00", 60)
	b.TutorID = nil

	if err := Validate(b, nil, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSpecializationMismatch(t *testing.T) {
	b := candidate("15:00", 60)
	missing := int64(9)
	b.SpecializationID = &missing

	err := Validate(b, testTutor(), []*model.TutorAvailability{mondayWindow("09:00", "17:00")}, nil)
	if !errors.Is(err, ErrSpecializationMismatch) {
		t.Fatalf("got %v, want ErrSpecializationMismatch", err)
	}
}

func TestValidateWithinAvailability(t *testing.T) {
	windows := []*model.TutorAvailability{mondayWindow("09:00", "17:00")}

	// Ends 16:00, inside the window.
	if err := Validate(candidate("15:00", 60), testTutor(), windows, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Ends exactly at the window edge.
	if err := Validate(candidate("16:00", 60), testTutor(), windows, nil); err != nil {
		t.Fatalf("unexpected error at boundary: %v", err)
	}
}

func TestValidateOutsideAvailability(t *testing.T) {
	windows := []*model.TutorAvailability{mondayWindow("09:00", "17:00")}

	// Ends 17:30, past the 17:00 close.
	err := Validate(candidate("16:30", 60), testTutor(), windows, nil)
	if !errors.Is(err, ErrOutsideAvailability) {
		t.Fatalf("got %v, want ErrOutsideAvailability", err)
	}
}

func TestValidateNoWindowOnDay(t *testing.T) {
	windows := []*model.TutorAvailability{
		{
			TutorID:   7,
			TermID:    1,
			Weekdays:  []model.Weekday{model.Tuesday},
			StartTime: model.MustTimeOfDay("09:00"),
			EndTime:   model.MustTimeOfDay("17:00"),
		},
	}

	err := Validate(candidate("10:00", 60), testTutor(), windows, nil)
	if !errors.Is(err, ErrOutsideAvailability) {
		t.Fatalf("got %v, want ErrOutsideAvailability", err)
	}
}

func TestValidateTimeConflict(t *testing.T) {
	windows := []*model.TutorAvailability{mondayWindow("09:00", "17:00")}

	tutorID := int64(7)
	existing := &model.Booking{
		ID:        50,
		TutorID:   &tutorID,
		TermID:    1,
		DayOfWeek: model.Monday,
		StartTime: model.MustTimeOfDay("10:00"),
		Status:    model.BookingStatusAccepted,
	}

	err := Validate(candidate("10:00", 60), testTutor(), windows, []*model.Booking{existing})
	if !errors.Is(err, ErrTimeConflict) {
		t.Fatalf("got %v, want ErrTimeConflict", err)
	}

	// A different start time on the same day does not conflict.
	if err := Validate(candidate("11:00", 60), testTutor(), windows, []*model.Booking{existing}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The booking never conflicts with itself.
	self := candidate("10:00", 60)
	self.ID = existing.ID
	if err := Validate(self, testTutor(), windows, []*model.Booking{existing}); err != nil {
		t.Fatalf("unexpected self-conflict: %v", err)
	}
}

func TestLessonsCarryBookingTime(t *testing.T) {
	b := candidate("10:00", 90)

	lessons, err := Lessons(b, mayJulyTerm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lessons) != 13 {
		t.Fatalf("got %d lessons, want 13", len(lessons))
	}

	for _, lesson := range lessons {
		if lesson.BookingID != b.ID {
			t.Errorf("lesson booking id = %d, want %d", lesson.BookingID, b.ID)
		}
		if lesson.StartTime != b.StartTime {
			t.Errorf("lesson start = %s, want %s", lesson.StartTime, b.StartTime)
		}
		if lesson.DurationMinutes != 90 {
			t.Errorf("lesson duration = %d, want 90", lesson.DurationMinutes)
		}
	}
}
