package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/codetutors/tutoring/internal/service"
)

type calendarAPI struct {
	lessons *service.LessonService
}

func registerCalendarAPI(g *echo.Group, lessons *service.LessonService) {
	api := calendarAPI{lessons: lessons}

	g.GET("/calendar", api.events)
	g.GET("/calendar/image", api.weekImage)
}

// events returns the lesson feed between ?from and ?to (defaults: the
// current month).
func (api *calendarAPI) events(ctx echo.Context) error {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	from, err := queryDate(ctx, "from", monthStart)
	if err != nil {
		return err
	}
	to, err := queryDate(ctx, "to", monthStart.AddDate(0, 1, -1))
	if err != nil {
		return err
	}

	events, err := api.lessons.CalendarEvents(ctx.Request().Context(), from, to)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, events)
}

// weekImage renders the PNG calendar for the week containing ?date
// (default: today). Weeks start on Monday.
func (api *calendarAPI) weekImage(ctx echo.Context) error {
	date, err := queryDate(ctx, "date", time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		return err
	}

	weekStart := startOfWeek(date)
	events, err := api.lessons.CalendarEvents(ctx.Request().Context(), weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return err
	}

	png, err := RenderWeekImage(weekStart, events)
	if err != nil {
		return err
	}

	return ctx.Blob(http.StatusOK, "image/png", png)
}

// startOfWeek returns the Monday on or before the given date.
func startOfWeek(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}
