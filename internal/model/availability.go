package model

import (
	"fmt"
	"time"
)

// Daily window within which tutors may declare availability.
var (
	AvailabilityOpens  = TimeOfDay(9 * 60)  // 09:00
	AvailabilityCloses = TimeOfDay(19 * 60) // 19:00
)

// TutorAvailability is a tutor-declared time range on a set of weekdays
// within a term during which they accept bookings.
type TutorAvailability struct {
	ID        int64     `json:"id"`
	TutorID   int64     `json:"tutor_id"`
	TermID    int64     `json:"term_id"`
	Weekdays  []Weekday `json:"weekdays"`
	StartTime TimeOfDay `json:"start_time"`
	EndTime   TimeOfDay `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the window ordering and the 09:00-19:00 daily bound.
func (a *TutorAvailability) Validate() error {
	if len(a.Weekdays) == 0 {
		return fmt.Errorf("availability must cover at least one weekday")
	}
	for _, day := range a.Weekdays {
		if !day.IsValid() {
			return fmt.Errorf("invalid weekday %q", day)
		}
	}
	if a.StartTime >= a.EndTime {
		return fmt.Errorf("availability start %s must be before end %s", a.StartTime, a.EndTime)
	}
	if a.StartTime < AvailabilityOpens || a.EndTime > AvailabilityCloses {
		return fmt.Errorf("availability %s-%s must fall within %s-%s",
			a.StartTime, a.EndTime, AvailabilityOpens, AvailabilityCloses)
	}
	return nil
}

// CoversDay checks if the window applies on the given weekday.
func (a *TutorAvailability) CoversDay(day Weekday) bool {
	for _, d := range a.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Contains checks if [start, end) lies fully inside the window.
func (a *TutorAvailability) Contains(start, end TimeOfDay) bool {
	return start >= a.StartTime && end <= a.EndTime
}
