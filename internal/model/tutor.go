package model

import "time"

// Language is a programming language tutors can teach.
type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Specialization is a named focus area (e.g. "Web Development") tied to one
// or more languages.
type Specialization struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Languages []Language `json:"languages,omitempty"`
}

// Tutor extends a user account with a teaching profile.
type Tutor struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	LanguageIDs       []int64   `json:"language_ids"`
	SpecializationIDs []int64   `json:"specialization_ids"`
	CreatedAt         time.Time `json:"created_at"`

	User *User `json:"user,omitempty"`
}

// TeachesLanguage checks if the tutor offers the given language.
func (t *Tutor) TeachesLanguage(languageID int64) bool {
	for _, id := range t.LanguageIDs {
		if id == languageID {
			return true
		}
	}
	return false
}

// OffersSpecialization checks if the tutor offers the given specialization.
func (t *Tutor) OffersSpecialization(specializationID int64) bool {
	for _, id := range t.SpecializationIDs {
		if id == specializationID {
			return true
		}
	}
	return false
}
