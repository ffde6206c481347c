package model

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    Weekday
		wantErr bool
	}{
		{"Monday", Monday, false},
		{"monday", Monday, false},
		{"SUNDAY", Sunday, false},
		{"Wed", "", true},
		{"", "", true},
		{"Funday", "", true},
	}

	for _, tt := range tests {
		got, err := ParseWeekday(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWeekday(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekday(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWeekday(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWeekdaysOrder(t *testing.T) {
	if len(Weekdays) != 7 {
		t.Fatalf("got %d weekdays, want 7", len(Weekdays))
	}
	if Weekdays[0] != Monday || Weekdays[6] != Sunday {
		t.Errorf("weekdays not in Monday-first order: %v", Weekdays)
	}
}

func TestWeekdayTime(t *testing.T) {
	d, ok := Thursday.Time()
	if !ok || d != time.Thursday {
		t.Errorf("Thursday.Time() = %v, %v", d, ok)
	}

	if _, ok := Weekday("Someday").Time(); ok {
		t.Error("unknown weekday should not map to time.Weekday")
	}
}
