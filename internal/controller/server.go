// Package controller exposes the booking engine over a JSON HTTP API.
package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	bookingpkg "github.com/codetutors/tutoring/internal/booking"
	"github.com/codetutors/tutoring/internal/service"
)

// Services bundles everything the API depends on.
type Services struct {
	Users    *service.UserService
	Tutors   *service.TutorService
	Bookings *service.BookingService
	Lessons  *service.LessonService
	Invoices *service.InvoiceService
	Catalog  *service.CatalogService
}

type Server struct {
	echo   *echo.Echo
	logger *zap.Logger
}

// NewServer builds the echo instance and registers all routes.
func NewServer(svcs Services, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &payloadValidator{validate: validator.New()}
	e.HTTPErrorHandler = errorHandler(logger)
	e.Use(middleware.Recover())

	api := e.Group("/api")
	registerUserAPI(api, svcs.Users)
	registerTutorAPI(api, svcs.Tutors)
	registerBookingAPI(api, svcs.Bookings, svcs.Lessons)
	registerCatalogAPI(api, svcs.Catalog)
	registerCalendarAPI(api, svcs.Lessons)
	registerInvoiceAPI(api, svcs.Invoices)

	return &Server{echo: e, logger: logger}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// payloadValidator adapts validator/v10 to echo's Validator interface.
type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// errorHandler maps rule-engine validation errors to 422 responses with the
// violated field and code; everything else falls through to echo defaults.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var validationErr *bookingpkg.ValidationError
		if errors.As(err, &validationErr) {
			_ = ctx.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
				"field":   validationErr.Field,
				"code":    validationErr.Code,
				"message": validationErr.Message,
			})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = ctx.JSON(httpErr.Code, map[string]interface{}{"message": httpErr.Message})
			return
		}

		logger.Error("Unhandled API error",
			zap.Error(err),
			zap.String("path", ctx.Request().URL.Path),
		)
		_ = ctx.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "internal server error"})
	}
}
