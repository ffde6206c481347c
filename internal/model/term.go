package model

import (
	"fmt"
	"time"
)

// TermName enumerates the three academic terms.
type TermName string

const (
	TermSeptemberChristmas TermName = "September-Christmas"
	TermJanuaryEaster      TermName = "January-Easter"
	TermMayJuly            TermName = "May-July"
)

// termStartMonths maps a term name to the months its start date may fall in.
var termStartMonths = map[TermName][2]time.Month{
	TermSeptemberChristmas: {time.September, time.December},
	TermJanuaryEaster:      {time.January, time.April},
	TermMayJuly:            {time.May, time.July},
}

// Term is a fixed academic date range within which recurring bookings occur.
type Term struct {
	ID        int64     `json:"id"`
	Name      TermName  `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the date range against the term name.
func (t *Term) Validate() error {
	months, ok := termStartMonths[t.Name]
	if !ok {
		return fmt.Errorf("unknown term name %q", t.Name)
	}

	if !t.StartDate.Before(t.EndDate) {
		return fmt.Errorf("term start date %s must be before end date %s",
			t.StartDate.Format("2006-01-02"), t.EndDate.Format("2006-01-02"))
	}

	month := t.StartDate.Month()
	if month < months[0] || month > months[1] {
		return fmt.Errorf("term %s cannot start in %s", t.Name, month)
	}

	return nil
}

func (t *Term) String() string {
	return fmt.Sprintf("%s (%s - %s)", t.Name,
		t.StartDate.Format("2006-01-02"), t.EndDate.Format("2006-01-02"))
}
