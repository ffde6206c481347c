package model

import "time"

// ApplicationStatus tracks a tutor application through admin review.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// TutorApplication is a user's request to become a tutor, reviewed by an
// admin.
type TutorApplication struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Status    ApplicationStatus `json:"status"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at"`
}

// IsPending checks if the application awaits review.
func (a *TutorApplication) IsPending() bool {
	return a.Status == ApplicationStatusPending
}

// IsApproved checks if the application was approved.
func (a *TutorApplication) IsApproved() bool {
	return a.Status == ApplicationStatusApproved
}
