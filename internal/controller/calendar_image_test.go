package controller

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetutors/tutoring/internal/service"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderWeekImage(t *testing.T) {
	weekStart := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC) // a Monday

	events := []service.CalendarEvent{
		{
			LessonID:  1,
			BookingID: 1,
			Title:     "Python - Alice Wonder",
			Start:     weekStart.Add(10 * time.Hour),
			End:       weekStart.Add(11 * time.Hour),
		},
		{
			// Outside the rendered week, must be skipped without error.
			LessonID:  2,
			BookingID: 2,
			Title:     "Go - Bob Stone",
			Start:     weekStart.AddDate(0, 0, 9).Add(14 * time.Hour),
			End:       weekStart.AddDate(0, 0, 9).Add(15 * time.Hour),
		},
	}

	png, err := RenderWeekImage(weekStart, events)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output is not a PNG")
}

func TestRenderWeekImageNoEvents(t *testing.T) {
	weekStart := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	png, err := RenderWeekImage(weekStart, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			date: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "wednesday maps back to monday",
			date: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday maps back six days",
			date: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, startOfWeek(tt.date))
		})
	}
}
