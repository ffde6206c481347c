package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/service"
)

type catalogAPI struct {
	catalog *service.CatalogService
}

func registerCatalogAPI(g *echo.Group, catalog *service.CatalogService) {
	api := catalogAPI{catalog: catalog}

	g.GET("/terms", api.listTerms)
	g.POST("/terms", api.createTerm)
	g.GET("/languages", api.listLanguages)
	g.POST("/languages", api.createLanguage)
	g.GET("/specializations", api.listSpecializations)
	g.POST("/specializations", api.createSpecialization)
}

type createTermRequest struct {
	Name      string `json:"name" validate:"required,oneof=September-Christmas January-Easter May-July"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (api *catalogAPI) createTerm(ctx echo.Context) error {
	data := new(createTermRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	startDate, err := time.Parse("2006-01-02", data.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date")
	}
	endDate, err := time.Parse("2006-01-02", data.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date")
	}

	term := &model.Term{
		Name:      model.TermName(data.Name),
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := api.catalog.CreateTerm(ctx.Request().Context(), term); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return ctx.JSON(http.StatusCreated, term)
}

func (api *catalogAPI) listTerms(ctx echo.Context) error {
	terms, err := api.catalog.ListTerms(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, terms)
}

type createLanguageRequest struct {
	Name string `json:"name" validate:"required"`
}

func (api *catalogAPI) createLanguage(ctx echo.Context) error {
	data := new(createLanguageRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	language, err := api.catalog.CreateLanguage(ctx.Request().Context(), data.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return ctx.JSON(http.StatusCreated, language)
}

func (api *catalogAPI) listLanguages(ctx echo.Context) error {
	languages, err := api.catalog.ListLanguages(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, languages)
}

type createSpecializationRequest struct {
	Name        string  `json:"name" validate:"required"`
	LanguageIDs []int64 `json:"language_ids"`
}

func (api *catalogAPI) createSpecialization(ctx echo.Context) error {
	data := new(createSpecializationRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	spec, err := api.catalog.CreateSpecialization(ctx.Request().Context(), data.Name, data.LanguageIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return ctx.JSON(http.StatusCreated, spec)
}

func (api *catalogAPI) listSpecializations(ctx echo.Context) error {
	specs, err := api.catalog.ListSpecializations(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, specs)
}
