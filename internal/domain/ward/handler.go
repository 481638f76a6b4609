package ward

import (
	"net/http"
	"time"

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
	api.GET("/beds", h.ListBeds, auth.RequirePermission(auth.ModuleBeds, auth.ActionView))
	api.GET("/beds/stats", h.Stats, auth.RequirePermission(auth.ModuleBeds, auth.ActionView))
	api.GET("/beds/:id", h.GetBed, auth.RequirePermission(auth.ModuleBeds, auth.ActionView))
	api.POST("/beds", h.CreateBed, auth.RequirePermission(auth.ModuleBeds, auth.ActionCreate))
	api.PUT("/beds/:id", h.UpdateBed, auth.RequirePermission(auth.ModuleBeds, auth.ActionEdit))
	api.DELETE("/beds/:id", h.DeleteBed, auth.RequirePermission(auth.ModuleBeds, auth.ActionDelete))
	api.POST("/beds/:id/assign", h.AssignPatient, auth.RequirePermission(auth.ModuleBeds, auth.ActionEdit))
	api.GET("/beds/:id/discharge", h.PrepareDischarge, auth.RequirePermission(auth.ModuleBeds, auth.ActionEdit))
	api.POST("/beds/:id/discharge", h.ConfirmDischarge, auth.RequirePermission(auth.ModuleBeds, auth.ActionEdit))
}

func (h *Handler) ListBeds(c echo.Context) error {
	pg := pagination.FromContext(c)
	beds, total, err := h.svc.ListBeds(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	now := time.Now()
	views := make([]View, len(beds))
	for i, b := range beds {
		views[i] = NewView(b, now)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetBed(c echo.Context) error {
	bed, err := h.svc.GetBed(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(bed, time.Now()))
}

func (h *Handler) CreateBed(c echo.Context) error {
	var bed Bed
	if err := c.Bind(&bed); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateBed(c.Request().Context(), &bed)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewView(created, time.Now()))
}

func (h *Handler) UpdateBed(c echo.Context) error {
	var bed Bed
	if err := c.Bind(&bed); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bed.ID = c.Param("id")
	updated, err := h.svc.UpdateBed(c.Request().Context(), &bed)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(updated, time.Now()))
}

func (h *Handler) DeleteBed(c echo.Context) error {
	if err := h.svc.DeleteBed(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AssignPatient(c echo.Context) error {
	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bed, err := h.svc.AssignPatient(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(bed, time.Now()))
}

func (h *Handler) PrepareDischarge(c echo.Context) error {
	summary, err := h.svc.PrepareDischarge(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) ConfirmDischarge(c echo.Context) error {
	var req DischargeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.ConfirmDischarge(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Stats(c echo.Context) error {
	st, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, st)
}
