package model

import "time"

// Invoice bills one lesson. Amounts are in cents.
type Invoice struct {
	ID          int64     `json:"id"`
	LessonID    int64     `json:"lesson_id"`
	AmountCents int64     `json:"amount_cents"`
	IsPaid      bool      `json:"is_paid"`
	CreatedAt   time.Time `json:"created_at"`
}
