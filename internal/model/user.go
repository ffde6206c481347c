package model

import "time"

// AccountType distinguishes the three user roles.
type AccountType string

const (
	AccountTypeStudent AccountType = "student"
	AccountTypeTutor   AccountType = "tutor"
	AccountTypeAdmin   AccountType = "admin"
)

type User struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"` // "@handle" style
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	AccountType AccountType `json:"account_type"`
	CreatedAt   time.Time   `json:"created_at"`
}

// FullName returns "First Last".
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsStudent checks if the user is a student account.
func (u *User) IsStudent() bool {
	return u.AccountType == AccountTypeStudent
}

// IsTutor checks if the user is a tutor account.
func (u *User) IsTutor() bool {
	return u.AccountType == AccountTypeTutor
}

// IsAdmin checks if the user is an admin account.
func (u *User) IsAdmin() bool {
	return u.AccountType == AccountTypeAdmin
}
