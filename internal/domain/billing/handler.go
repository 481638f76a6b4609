package billing

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/bills", h.ListBills, auth.RequirePermission(auth.ModuleBilling, auth.ActionView))
	api.GET("/bills/stats", h.Stats, auth.RequirePermission(auth.ModuleBilling, auth.ActionView))
	api.GET("/bills/:id", h.GetBill, auth.RequirePermission(auth.ModuleBilling, auth.ActionView))
	api.POST("/bills", h.CreateBill, auth.RequirePermission(auth.ModuleBilling, auth.ActionCreate))
	api.PUT("/bills/:id", h.UpdateBill, auth.RequirePermission(auth.ModuleBilling, auth.ActionEdit))
	api.DELETE("/bills/:id", h.DeleteBill, auth.RequirePermission(auth.ModuleBilling, auth.ActionDelete))
	api.POST("/bills/:id/payments", h.RecordPayment, auth.RequirePermission(auth.ModuleBilling, auth.ActionEdit))
}

func (h *Handler) ListBills(c echo.Context) error {
	pg := pagination.FromContext(c)
	bills, total, err := h.svc.ListBills(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	views := make([]View, len(bills))
	for i, b := range bills {
		views[i] = NewView(b)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetBill(c echo.Context) error {
	bill, err := h.svc.GetBill(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(bill))
}

func (h *Handler) CreateBill(c echo.Context) error {
	var bill Bill
	if err := c.Bind(&bill); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateBill(c.Request().Context(), &bill)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewView(created))
}

func (h *Handler) UpdateBill(c echo.Context) error {
	var bill Bill
	if err := c.Bind(&bill); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bill.ID = c.Param("id")
	updated, err := h.svc.UpdateBill(c.Request().Context(), &bill)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(updated))
}

func (h *Handler) DeleteBill(c echo.Context) error {
	if err := h.svc.DeleteBill(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RecordPayment(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bill, err := h.svc.RecordPayment(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(bill))
}

func (h *Handler) Stats(c echo.Context) error {
	st, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, st)
}
