package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Svc
}

func NewHandler(svc *Svc) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/services", h.ListServices, auth.RequirePermission(auth.ModuleServices, auth.ActionView))
	api.GET("/services/stats", h.Stats, auth.RequirePermission(auth.ModuleServices, auth.ActionView))
	api.GET("/services/:id", h.GetService, auth.RequirePermission(auth.ModuleServices, auth.ActionView))
	api.POST("/services", h.CreateService, auth.RequirePermission(auth.ModuleServices, auth.ActionCreate))
	api.PUT("/services/:id", h.UpdateService, auth.RequirePermission(auth.ModuleServices, auth.ActionEdit))
	api.DELETE("/services/:id", h.DeleteService, auth.RequirePermission(auth.ModuleServices, auth.ActionDelete))
}

func (h *Handler) ListServices(c echo.Context) error {
	pg := pagination.FromContext(c)
	services, total, err := h.svc.ListServices(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	views := make([]View, len(services))
	for i, s := range services {
		views[i] = NewView(s)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetService(c echo.Context) error {
	svc, err := h.svc.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(svc))
}

func (h *Handler) CreateService(c echo.Context) error {
	var svc Service
	if err := c.Bind(&svc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateService(c.Request().Context(), &svc)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewView(created))
}

func (h *Handler) UpdateService(c echo.Context) error {
	var svc Service
	if err := c.Bind(&svc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	svc.ID = c.Param("id")
	updated, err := h.svc.UpdateService(c.Request().Context(), &svc)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(updated))
}

func (h *Handler) DeleteService(c echo.Context) error {
	if err := h.svc.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Stats(c echo.Context) error {
	st, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, st)
}
