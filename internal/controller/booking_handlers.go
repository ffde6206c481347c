package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	bookingpkg "github.com/codetutors/tutoring/internal/booking"
	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/service"
)

type bookingAPI struct {
	bookings *service.BookingService
	lessons  *service.LessonService
}

func registerBookingAPI(g *echo.Group, bookings *service.BookingService, lessons *service.LessonService) {
	api := bookingAPI{bookings: bookings, lessons: lessons}

	bg := g.Group("/bookings")
	bg.POST("", api.create)
	bg.GET("/pending", api.listPending)
	bg.GET("/student/:id", api.listByStudent)
	bg.GET("/tutor/:id", api.listByTutor)

	dg := bg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.POST("/assign", api.assignTutor)
	dg.POST("/accept", api.accept)
	dg.POST("/reject", api.reject)
	dg.GET("/lessons", api.listLessons)
}

type createBookingRequest struct {
	StudentID        int64  `json:"student_id" validate:"required"`
	TutorID          *int64 `json:"tutor_id"`
	LanguageID       int64  `json:"language_id" validate:"required"`
	SpecializationID *int64 `json:"specialization_id"`
	TermID           int64  `json:"term_id"`
	DayOfWeek        string `json:"day_of_week" validate:"required"`
	StartTime        string `json:"start_time" validate:"required"`
	DurationMinutes  int    `json:"duration_minutes" validate:"required,gt=0"`
	Frequency        string `json:"frequency" validate:"omitempty,oneof=Weekly Fortnightly"`
	ExperienceLevel  string `json:"experience_level"`
}

func (api *bookingAPI) create(ctx echo.Context) error {
	data := new(createBookingRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	day, err := model.ParseWeekday(data.DayOfWeek)
	if err != nil {
		return bookingpkg.ErrInvalidWeekday
	}

	start, err := model.ParseTimeOfDay(data.StartTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	b := &model.Booking{
		StudentID:        data.StudentID,
		TutorID:          data.TutorID,
		LanguageID:       data.LanguageID,
		SpecializationID: data.SpecializationID,
		TermID:           data.TermID,
		DayOfWeek:        day,
		StartTime:        start,
		DurationMinutes:  data.DurationMinutes,
		Frequency:        model.Frequency(data.Frequency),
		ExperienceLevel:  data.ExperienceLevel,
	}

	if err := api.bookings.CreateBooking(ctx.Request().Context(), b); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, b)
}

func (api *bookingAPI) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	b, err := api.bookings.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	if b == nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	return ctx.JSON(http.StatusOK, b)
}

func (api *bookingAPI) listPending(ctx echo.Context) error {
	bookings, err := api.bookings.GetPendingBookings(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookings)
}

func (api *bookingAPI) listByStudent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	bookings, err := api.bookings.GetStudentBookings(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookings)
}

func (api *bookingAPI) listByTutor(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	bookings, err := api.bookings.GetTutorBookings(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookings)
}

type assignTutorRequest struct {
	TutorID int64 `json:"tutor_id" validate:"required"`
}

func (api *bookingAPI) assignTutor(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	data := new(assignTutorRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	b, err := api.bookings.AssignTutor(ctx.Request().Context(), id, data.TutorID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, b)
}

type approvalRequest struct {
	Actor string `json:"actor" validate:"required,oneof=student tutor"`
}

func (api *bookingAPI) accept(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	data := new(approvalRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	b, err := api.bookings.Approve(ctx.Request().Context(), id, model.Actor(data.Actor))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, b)
}

func (api *bookingAPI) reject(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	data := new(approvalRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	b, err := api.bookings.Reject(ctx.Request().Context(), id, model.Actor(data.Actor))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, b)
}

func (api *bookingAPI) listLessons(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	lessons, err := api.lessons.GetByBookingID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lessons)
}

// pathID parses a numeric path parameter.
func pathID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
