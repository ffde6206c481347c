package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// pathQueryID parses a required numeric query parameter.
func pathQueryID(ctx echo.Context, name string) (int64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// queryDate parses a "2006-01-02" query parameter, falling back to a default.
func queryDate(ctx echo.Context, name string, fallback time.Time) (time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return date, nil
}
