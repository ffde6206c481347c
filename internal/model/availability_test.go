package model

import "testing"

func window(days []Weekday, start, end string) TutorAvailability {
	return TutorAvailability{
		TutorID:   1,
		TermID:    1,
		Weekdays:  days,
		StartTime: MustTimeOfDay(start),
		EndTime:   MustTimeOfDay(end),
	}
}

func TestAvailabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		avail   TutorAvailability
		wantErr bool
	}{
		{"valid", window([]Weekday{Monday, Wednesday}, "09:00", "17:00"), false},
		{"full daily bound", window([]Weekday{Friday}, "09:00", "19:00"), false},
		{"no weekdays", window(nil, "09:00", "17:00"), true},
		{"invalid weekday", window([]Weekday{"Funday"}, "09:00", "17:00"), true},
		{"start after end", window([]Weekday{Monday}, "17:00", "09:00"), true},
		{"start equals end", window([]Weekday{Monday}, "12:00", "12:00"), true},
		{"opens too early", window([]Weekday{Monday}, "08:00", "17:00"), true},
		{"closes too late", window([]Weekday{Monday}, "09:00", "19:30"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.avail.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAvailabilityCoversDay(t *testing.T) {
	avail := window([]Weekday{Monday, Thursday}, "09:00", "17:00")

	if !avail.CoversDay(Monday) {
		t.Error("expected Monday covered")
	}
	if avail.CoversDay(Tuesday) {
		t.Error("Tuesday should not be covered")
	}
}

func TestAvailabilityContains(t *testing.T) {
	avail := window([]Weekday{Monday}, "09:00", "17:00")

	tests := []struct {
		start, end string
		want       bool
	}{
		{"09:00", "10:00", true},
		{"16:00", "17:00", true},
		{"08:30", "09:30", false},
		{"16:30", "17:30", false},
	}

	for _, tt := range tests {
		got := avail.Contains(MustTimeOfDay(tt.start), MustTimeOfDay(tt.end))
		if got != tt.want {
			t.Errorf("Contains(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}
