package main

import (
	"fmt"
	"os"
	"time"

	"github.com/codetutors/tutoring/internal/controller"
	"github.com/codetutors/tutoring/internal/service"
)

// Renders a sample week calendar to calendar.png for eyeballing layout
// changes without a running server.
func main() {
	now := time.Now()
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for weekStart.Weekday() != time.Monday {
		weekStart = weekStart.AddDate(0, 0, -1)
	}

	events := []service.CalendarEvent{
		{
			LessonID:  1,
			BookingID: 1,
			Title:     "Python - Alice Wonder",
			Start:     weekStart.Add(10 * time.Hour),
			End:       weekStart.Add(11 * time.Hour),
		},
		{
			LessonID:  2,
			BookingID: 2,
			Title:     "Go - Bob Stone",
			Start:     weekStart.AddDate(0, 0, 1).Add(14 * time.Hour),
			End:       weekStart.AddDate(0, 0, 1).Add(15*time.Hour + 30*time.Minute),
		},
		{
			LessonID:  3,
			BookingID: 1,
			Title:     "Python - Alice Wonder",
			Start:     weekStart.AddDate(0, 0, 3).Add(16 * time.Hour),
			End:       weekStart.AddDate(0, 0, 3).Add(17 * time.Hour),
		},
	}

	png, err := controller.RenderWeekImage(weekStart, events)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("calendar.png", png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("wrote calendar.png")
}
