package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codetutors/tutoring/internal/service"
)

type invoiceAPI struct {
	invoices *service.InvoiceService
}

func registerInvoiceAPI(g *echo.Group, invoices *service.InvoiceService) {
	api := invoiceAPI{invoices: invoices}

	ig := g.Group("/invoices")
	ig.POST("", api.create)
	ig.GET("/unpaid", api.listUnpaid)
	ig.POST("/:id/pay", api.markPaid)
}

type createInvoiceRequest struct {
	LessonID    int64 `json:"lesson_id" validate:"required"`
	AmountCents int64 `json:"amount_cents" validate:"required,gt=0"`
}

func (api *invoiceAPI) create(ctx echo.Context) error {
	data := new(createInvoiceRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	invoice, err := api.invoices.CreateForLesson(ctx.Request().Context(), data.LessonID, data.AmountCents)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return ctx.JSON(http.StatusCreated, invoice)
}

func (api *invoiceAPI) listUnpaid(ctx echo.Context) error {
	invoices, err := api.invoices.ListUnpaid(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, invoices)
}

func (api *invoiceAPI) markPaid(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	if err := api.invoices.MarkPaid(ctx.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}
