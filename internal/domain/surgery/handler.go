package surgery

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
	api.GET("/ot-schedules", h.ListSchedules, auth.RequirePermission(auth.ModuleSurgery, auth.ActionView))
	api.GET("/ot-schedules/stats", h.Stats, auth.RequirePermission(auth.ModuleSurgery, auth.ActionView))
	api.GET("/ot-schedules/:id", h.GetSchedule, auth.RequirePermission(auth.ModuleSurgery, auth.ActionView))
	api.POST("/ot-schedules", h.CreateSchedule, auth.RequirePermission(auth.ModuleSurgery, auth.ActionCreate))
	api.PUT("/ot-schedules/:id", h.UpdateSchedule, auth.RequirePermission(auth.ModuleSurgery, auth.ActionEdit))
	api.DELETE("/ot-schedules/:id", h.DeleteSchedule, auth.RequirePermission(auth.ModuleSurgery, auth.ActionDelete))
	api.POST("/ot-schedules/:id/start", h.Start, auth.RequirePermission(auth.ModuleSurgery, auth.ActionEdit))
	api.POST("/ot-schedules/:id/complete", h.Complete, auth.RequirePermission(auth.ModuleSurgery, auth.ActionEdit))
	api.POST("/ot-schedules/:id/postpone", h.Postpone, auth.RequirePermission(auth.ModuleSurgery, auth.ActionEdit))
}

func (h *Handler) ListSchedules(c echo.Context) error {
	pg := pagination.FromContext(c)
	schedules, total, err := h.svc.ListSchedules(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	views := make([]View, len(schedules))
	for i, s := range schedules {
		views[i] = NewView(s)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetSchedule(c echo.Context) error {
	sc, err := h.svc.GetSchedule(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(sc))
}

func (h *Handler) CreateSchedule(c echo.Context) error {
	var sc OTSchedule
	if err := c.Bind(&sc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateSchedule(c.Request().Context(), &sc)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewView(created))
}

func (h *Handler) UpdateSchedule(c echo.Context) error {
	var sc OTSchedule
	if err := c.Bind(&sc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sc.ID = c.Param("id")
	updated, err := h.svc.UpdateSchedule(c.Request().Context(), &sc)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(updated))
}

func (h *Handler) DeleteSchedule(c echo.Context) error {
	if err := h.svc.DeleteSchedule(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Start(c echo.Context) error {
	sc, err := h.svc.Start(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(sc))
}

type completeRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) Complete(c echo.Context) error {
	var req completeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sc, err := h.svc.Complete(c.Request().Context(), c.Param("id"), req.Notes)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(sc))
}

type postponeRequest struct {
	ScheduledDate string `json:"scheduled_date"`
}

func (h *Handler) Postpone(c echo.Context) error {
	var req postponeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sc, err := h.svc.Postpone(c.Request().Context(), c.Param("id"), req.ScheduledDate)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(sc))
}

func (h *Handler) Stats(c echo.Context) error {
	st, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, st)
}
