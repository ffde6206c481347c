package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/service"
)

type tutorAPI struct {
	tutors *service.TutorService
}

func registerTutorAPI(g *echo.Group, tutors *service.TutorService) {
	api := tutorAPI{tutors: tutors}

	tg := g.Group("/tutors")
	tg.GET("", api.list)
	tg.GET("/:id", api.retrieve)
	tg.PUT("/:id/profile", api.updateProfile)
	tg.GET("/:id/availability", api.listAvailability)
	tg.POST("/:id/availability", api.declareAvailability)
	tg.DELETE("/:id/availability/:availabilityID", api.removeAvailability)

	ag := g.Group("/tutor-applications")
	ag.POST("", api.apply)
	ag.GET("/pending", api.listPendingApplications)
	ag.POST("/:id/review", api.reviewApplication)
}

func (api *tutorAPI) list(ctx echo.Context) error {
	tutors, err := api.tutors.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tutors)
}

func (api *tutorAPI) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	tutor, err := api.tutors.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	if tutor == nil {
		return echo.NewHTTPError(http.StatusNotFound, "tutor not found")
	}

	return ctx.JSON(http.StatusOK, tutor)
}

type updateProfileRequest struct {
	LanguageIDs       []int64 `json:"language_ids" validate:"required,min=1"`
	SpecializationIDs []int64 `json:"specialization_ids"`
}

func (api *tutorAPI) updateProfile(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	data := new(updateProfileRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	tutor, err := api.tutors.UpdateProfile(ctx.Request().Context(), id, data.LanguageIDs, data.SpecializationIDs)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, tutor)
}

type declareAvailabilityRequest struct {
	TermID    int64    `json:"term_id" validate:"required"`
	Weekdays  []string `json:"weekdays" validate:"required,min=1"`
	StartTime string   `json:"start_time" validate:"required"`
	EndTime   string   `json:"end_time" validate:"required"`
}

func (api *tutorAPI) declareAvailability(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	data := new(declareAvailabilityRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	days := make([]model.Weekday, 0, len(data.Weekdays))
	for _, raw := range data.Weekdays {
		day, err := model.ParseWeekday(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		days = append(days, day)
	}

	start, err := model.ParseTimeOfDay(data.StartTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	end, err := model.ParseTimeOfDay(data.EndTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	availability := &model.TutorAvailability{
		TutorID:   id,
		TermID:    data.TermID,
		Weekdays:  days,
		StartTime: start,
		EndTime:   end,
	}

	if err := api.tutors.DeclareAvailability(ctx.Request().Context(), availability); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return ctx.JSON(http.StatusCreated, availability)
}

func (api *tutorAPI) listAvailability(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	termID, err := pathQueryID(ctx, "term_id")
	if err != nil {
		return err
	}

	windows, err := api.tutors.GetAvailability(ctx.Request().Context(), id, termID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, windows)
}

func (api *tutorAPI) removeAvailability(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	availabilityID, err := pathID(ctx, "availabilityID")
	if err != nil {
		return err
	}

	if err := api.tutors.RemoveAvailability(ctx.Request().Context(), availabilityID, id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

type applyRequest struct {
	UserID  int64  `json:"user_id" validate:"required"`
	Message string `json:"message"`
}

func (api *tutorAPI) apply(ctx echo.Context) error {
	data := new(applyRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	application, err := api.tutors.Apply(ctx.Request().Context(), data.UserID, data.Message)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return ctx.JSON(http.StatusCreated, application)
}

func (api *tutorAPI) listPendingApplications(ctx echo.Context) error {
	applications, err := api.tutors.PendingApplications(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, applications)
}

type reviewApplicationRequest struct {
	Approve bool `json:"approve"`
}

func (api *tutorAPI) reviewApplication(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	data := new(reviewApplicationRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	application, err := api.tutors.ReviewApplication(ctx.Request().Context(), id, data.Approve)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return ctx.JSON(http.StatusOK, application)
}
