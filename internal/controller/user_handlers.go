package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/service"
)

type userAPI struct {
	users *service.UserService
}

func registerUserAPI(g *echo.Group, users *service.UserService) {
	api := userAPI{users: users}

	ug := g.Group("/users")
	ug.POST("", api.register)
	ug.GET("", api.list)
	ug.GET("/:id", api.retrieve)
}

type registerUserRequest struct {
	Username    string `json:"username" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	AccountType string `json:"account_type" validate:"omitempty,oneof=student tutor admin"`
}

func (api *userAPI) register(ctx echo.Context) error {
	data := new(registerUserRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	user := &model.User{
		Username:    data.Username,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		AccountType: model.AccountType(data.AccountType),
	}

	if err := api.users.Register(ctx.Request().Context(), user); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return ctx.JSON(http.StatusCreated, user)
}

func (api *userAPI) list(ctx echo.Context) error {
	users, err := api.users.List(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userAPI) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	user, err := api.users.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	return ctx.JSON(http.StatusOK, user)
}
