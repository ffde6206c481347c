package model

import (
	"time"

	"github.com/google/uuid"
)

// Approval is one party's verdict on a booking.
type Approval string

const (
	ApprovalPending  Approval = "Pending"
	ApprovalApproved Approval = "Approved"
	ApprovalRejected Approval = "Rejected"
)

// BookingStatus is derived from the two approval fields, never set directly.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusAccepted BookingStatus = "Accepted"
	BookingStatusDeclined BookingStatus = "Declined"
)

// Frequency controls the gap between recurring lessons.
type Frequency string

const (
	FrequencyWeekly      Frequency = "Weekly"
	FrequencyFortnightly Frequency = "Fortnightly"
)

// Days returns the step between occurrences, or 0 for an unknown value.
func (f Frequency) Days() int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyFortnightly:
		return 14
	}
	return 0
}

// Actor identifies which side of a booking is acting on it.
type Actor string

const (
	ActorStudent Actor = "student"
	ActorTutor   Actor = "tutor"
)

// Booking is a proposed recurring tutoring slot pending dual approval.
// TutorID is nil until an admin assigns a tutor.
type Booking struct {
	ID               int64         `json:"id"`
	Reference        uuid.UUID     `json:"reference"`
	StudentID        int64         `json:"student_id"`
	TutorID          *int64        `json:"tutor_id"`
	LanguageID       int64         `json:"language_id"`
	SpecializationID *int64        `json:"specialization_id"`
	TermID           int64         `json:"term_id"`
	DayOfWeek        Weekday       `json:"day_of_week"`
	StartTime        TimeOfDay     `json:"start_time"`
	DurationMinutes  int           `json:"duration_minutes"`
	Frequency        Frequency     `json:"frequency"`
	ExperienceLevel  string        `json:"experience_level"`
	StudentApproval  Approval      `json:"student_approval"`
	TutorApproval    Approval      `json:"tutor_approval"`
	Status           BookingStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	// Loaded relations, not database columns.
	Student *User  `json:"student,omitempty"`
	Tutor   *Tutor `json:"tutor,omitempty"`
	Term    *Term  `json:"term,omitempty"`
}

// EndTime is the exclusive end of the booked window.
func (b *Booking) EndTime() TimeOfDay {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// IsAssigned checks if a tutor has been assigned.
func (b *Booking) IsAssigned() bool {
	return b.TutorID != nil
}

// Lesson is one concrete dated occurrence materialized from an accepted
// booking.
type Lesson struct {
	ID              int64     `json:"id"`
	BookingID       int64     `json:"booking_id"`
	Date            time.Time `json:"date"`
	StartTime       TimeOfDay `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}
