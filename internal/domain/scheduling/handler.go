package scheduling

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
	api.GET("/appointments", h.ListAppointments, auth.RequirePermission(auth.ModuleAppointments, auth.ActionView))
	api.GET("/appointments/stats", h.Stats, auth.RequirePermission(auth.ModuleAppointments, auth.ActionView))
	api.GET("/appointments/:id", h.GetAppointment, auth.RequirePermission(auth.ModuleAppointments, auth.ActionView))
	api.POST("/appointments", h.CreateAppointment, auth.RequirePermission(auth.ModuleAppointments, auth.ActionCreate))
	api.PUT("/appointments/:id", h.UpdateAppointment, auth.RequirePermission(auth.ModuleAppointments, auth.ActionEdit))
	api.DELETE("/appointments/:id", h.DeleteAppointment, auth.RequirePermission(auth.ModuleAppointments, auth.ActionDelete))
	api.POST("/appointments/:id/checkin", h.CheckIn, auth.RequirePermission(auth.ModuleAppointments, auth.ActionEdit))
	api.PATCH("/appointments/:id/status", h.UpdateStatus, auth.RequirePermission(auth.ModuleAppointments, auth.ActionEdit))
}

func (h *Handler) ListAppointments(c echo.Context) error {
	pg := pagination.FromContext(c)
	appts, total, err := h.svc.ListAppointments(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	views := make([]View, len(appts))
	for i, a := range appts {
		views[i] = NewView(a)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetAppointment(c echo.Context) error {
	appt, err := h.svc.GetAppointment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(appt))
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var appt Appointment
	if err := c.Bind(&appt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateAppointment(c.Request().Context(), &appt)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewView(created))
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	var appt Appointment
	if err := c.Bind(&appt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appt.ID = c.Param("id")
	updated, err := h.svc.UpdateAppointment(c.Request().Context(), &appt)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(updated))
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	if err := h.svc.DeleteAppointment(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CheckIn(c echo.Context) error {
	appt, err := h.svc.CheckIn(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(appt))
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appt, err := h.svc.Transition(c.Request().Context(), c.Param("id"), Status(req.Status))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(appt))
}

func (h *Handler) Stats(c echo.Context) error {
	st, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, st)
}
