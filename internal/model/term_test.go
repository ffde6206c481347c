package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTermValidate(t *testing.T) {
	tests := []struct {
		name    string
		term    Term
		wantErr bool
	}{
		{
			name: "valid may-july",
			term: Term{Name: TermMayJuly, StartDate: date(2024, time.May, 1), EndDate: date(2024, time.July, 31)},
		},
		{
			name: "valid september-christmas",
			term: Term{Name: TermSeptemberChristmas, StartDate: date(2024, time.September, 2), EndDate: date(2024, time.December, 20)},
		},
		{
			name: "valid january-easter",
			term: Term{Name: TermJanuaryEaster, StartDate: date(2025, time.January, 6), EndDate: date(2025, time.April, 4)},
		},
		{
			name:    "unknown name",
			term:    Term{Name: "Summer", StartDate: date(2024, time.May, 1), EndDate: date(2024, time.July, 31)},
			wantErr: true,
		},
		{
			name:    "start after end",
			term:    Term{Name: TermMayJuly, StartDate: date(2024, time.July, 31), EndDate: date(2024, time.May, 1)},
			wantErr: true,
		},
		{
			name:    "start equals end",
			term:    Term{Name: TermMayJuly, StartDate: date(2024, time.May, 1), EndDate: date(2024, time.May, 1)},
			wantErr: true,
		},
		{
			name:    "start month outside window",
			term:    Term{Name: TermMayJuly, StartDate: date(2024, time.August, 1), EndDate: date(2024, time.October, 31)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.term.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTermString(t *testing.T) {
	term := Term{Name: TermMayJuly, StartDate: date(2024, time.May, 1), EndDate: date(2024, time.July, 31)}
	want := "May-July (2024-05-01 - 2024-07-31)"
	if got := term.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
