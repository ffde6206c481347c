package model

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a closed enumeration of the seven day names used by bookings
// and availability windows.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists all valid values in calendar order, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayToTime = map[Weekday]time.Weekday{
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
	Sunday:    time.Sunday,
}

// ParseWeekday converts a day name into a Weekday. Matching is
// case-insensitive so values stored by older imports still parse.
func ParseWeekday(s string) (Weekday, error) {
	for day := range weekdayToTime {
		if strings.EqualFold(s, string(day)) {
			return day, nil
		}
	}
	return "", fmt.Errorf("invalid weekday %q", s)
}

// IsValid reports whether the value is one of the seven day names.
func (w Weekday) IsValid() bool {
	_, ok := weekdayToTime[w]
	return ok
}

// Time returns the time.Weekday equivalent.
func (w Weekday) Time() (time.Weekday, bool) {
	d, ok := weekdayToTime[w]
	return d, ok
}

func (w Weekday) String() string {
	return string(w)
}
