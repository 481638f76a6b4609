package lab

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
	api.GET("/lab-orders", h.ListOrders, auth.RequirePermission(auth.ModuleLab, auth.ActionView))
	api.GET("/lab-orders/stats", h.Stats, auth.RequirePermission(auth.ModuleLab, auth.ActionView))
	api.GET("/lab-orders/:id", h.GetOrder, auth.RequirePermission(auth.ModuleLab, auth.ActionView))
	api.POST("/lab-orders", h.CreateOrder, auth.RequirePermission(auth.ModuleLab, auth.ActionCreate))
	api.PUT("/lab-orders/:id", h.UpdateOrder, auth.RequirePermission(auth.ModuleLab, auth.ActionEdit))
	api.DELETE("/lab-orders/:id", h.DeleteOrder, auth.RequirePermission(auth.ModuleLab, auth.ActionDelete))
	api.POST("/lab-orders/:id/report", h.AttachReport, auth.RequirePermission(auth.ModuleLab, auth.ActionEdit))
	api.POST("/lab-orders/:id/complete", h.Complete, auth.RequirePermission(auth.ModuleLab, auth.ActionEdit))
}

func (h *Handler) ListOrders(c echo.Context) error {
	pg := pagination.FromContext(c)
	orders, total, err := h.svc.ListOrders(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	views := make([]View, len(orders))
	for i, o := range orders {
		views[i] = NewView(o)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetOrder(c echo.Context) error {
	order, err := h.svc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(order))
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var order LabOrder
	if err := c.Bind(&order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateOrder(c.Request().Context(), &order)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewView(created))
}

func (h *Handler) UpdateOrder(c echo.Context) error {
	var order LabOrder
	if err := c.Bind(&order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	order.ID = c.Param("id")
	updated, err := h.svc.UpdateOrder(c.Request().Context(), &order)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(updated))
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	if err := h.svc.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AttachReport accepts a multipart form with a "report" file field.
func (h *Handler) AttachReport(c echo.Context) error {
	fileHeader, err := c.FormFile("report")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "report file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read report file")
	}
	defer file.Close()

	order, err := h.svc.AttachReport(c.Request().Context(), c.Param("id"),
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(order))
}

type completeRequest struct {
	ResultSummary string `json:"result_summary"`
}

func (h *Handler) Complete(c echo.Context) error {
	var req completeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	order, err := h.svc.Complete(c.Request().Context(), c.Param("id"), req.ResultSummary)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(order))
}

func (h *Handler) Stats(c echo.Context) error {
	st, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, st)
}
