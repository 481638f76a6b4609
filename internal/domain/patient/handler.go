package patient

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
	api.GET("/patients", h.ListPatients, auth.RequirePermission(auth.ModulePatients, auth.ActionView))
	api.GET("/patients/stats", h.Stats, auth.RequirePermission(auth.ModulePatients, auth.ActionView))
	api.GET("/patients/:id", h.GetPatient, auth.RequirePermission(auth.ModulePatients, auth.ActionView))
	api.POST("/patients", h.CreatePatient, auth.RequirePermission(auth.ModulePatients, auth.ActionCreate))
	api.PUT("/patients/:id", h.UpdatePatient, auth.RequirePermission(auth.ModulePatients, auth.ActionEdit))
	api.DELETE("/patients/:id", h.DeletePatient, auth.RequirePermission(auth.ModulePatients, auth.ActionDelete))

	api.GET("/patients/:id/records", h.ListRecords, auth.RequirePermission(auth.ModulePatients, auth.ActionView))
	api.POST("/patients/:id/records", h.AddRecord, auth.RequirePermission(auth.ModulePatients, auth.ActionCreate))
	api.DELETE("/records/:id", h.DeleteRecord, auth.RequirePermission(auth.ModulePatients, auth.ActionDelete))
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	patients, total, err := h.svc.ListPatients(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	now := time.Now()
	views := make([]View, len(patients))
	for i, p := range patients {
		views[i] = NewView(p, now)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(p, time.Now()))
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreatePatient(c.Request().Context(), &p)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewView(created, time.Now()))
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = c.Param("id")
	updated, err := h.svc.UpdatePatient(c.Request().Context(), &p)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(updated, time.Now()))
}

func (h *Handler) DeletePatient(c echo.Context) error {
	if err := h.svc.DeletePatient(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListRecords(c echo.Context) error {
	pg := pagination.FromContext(c)
	records, total, err := h.svc.ListRecords(c.Request().Context(), c.Param("id"), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(records, total, pg.Limit, pg.Offset))
}

func (h *Handler) AddRecord(c echo.Context) error {
	var rec MedicalRecord
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec.PatientID = c.Param("id")
	created, err := h.svc.AddRecord(c.Request().Context(), &rec)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) DeleteRecord(c echo.Context) error {
	if err := h.svc.DeleteRecord(c.Request().Context(), c.Param("id")); err != nil {
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
