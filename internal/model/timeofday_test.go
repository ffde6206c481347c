package model

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"15:04", 904, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:00am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) expected error, got %d", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTimeOfDayComponents(t *testing.T) {
	tod := MustTimeOfDay("16:45")
	if tod.Hour() != 16 || tod.Minute() != 45 {
		t.Errorf("got %d:%d, want 16:45", tod.Hour(), tod.Minute())
	}
	if tod.String() != "16:45" {
		t.Errorf("String() = %q, want 16:45", tod.String())
	}
}

func TestTimeOfDayAddMinutes(t *testing.T) {
	got := MustTimeOfDay("10:30").AddMinutes(90)
	if got != MustTimeOfDay("12:00") {
		t.Errorf("AddMinutes(90) = %s, want 12:00", got)
	}
}

func TestTimeOfDayAt(t *testing.T) {
	date := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	got := MustTimeOfDay("14:30").At(date, time.UTC)
	want := time.Date(2024, 5, 6, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %s, want %s", got, want)
	}
}
