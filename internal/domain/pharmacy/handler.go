package pharmacy

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
	api.GET("/prescriptions", h.ListPrescriptions, auth.RequirePermission(auth.ModulePharmacy, auth.ActionView))
	api.GET("/prescriptions/stats", h.Stats, auth.RequirePermission(auth.ModulePharmacy, auth.ActionView))
	api.GET("/prescriptions/:id", h.GetPrescription, auth.RequirePermission(auth.ModulePharmacy, auth.ActionView))
	api.POST("/prescriptions", h.CreatePrescription, auth.RequirePermission(auth.ModulePharmacy, auth.ActionCreate))
	api.PUT("/prescriptions/:id", h.UpdatePrescription, auth.RequirePermission(auth.ModulePharmacy, auth.ActionEdit))
	api.DELETE("/prescriptions/:id", h.DeletePrescription, auth.RequirePermission(auth.ModulePharmacy, auth.ActionDelete))
	api.POST("/prescriptions/:id/dispense", h.Dispense, auth.RequirePermission(auth.ModulePharmacy, auth.ActionEdit))
	api.POST("/prescriptions/:id/cancel", h.Cancel, auth.RequirePermission(auth.ModulePharmacy, auth.ActionEdit))
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	pg := pagination.FromContext(c)
	prescriptions, total, err := h.svc.ListPrescriptions(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	views := make([]View, len(prescriptions))
	for i, p := range prescriptions {
		views[i] = NewView(p)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetPrescription(c echo.Context) error {
	p, err := h.svc.GetPrescription(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(p))
}

func (h *Handler) CreatePrescription(c echo.Context) error {
	var p Prescription
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreatePrescription(c.Request().Context(), &p)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewView(created))
}

func (h *Handler) UpdatePrescription(c echo.Context) error {
	var p Prescription
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = c.Param("id")
	updated, err := h.svc.UpdatePrescription(c.Request().Context(), &p)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(updated))
}

func (h *Handler) DeletePrescription(c echo.Context) error {
	if err := h.svc.DeletePrescription(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Dispense(c echo.Context) error {
	var req DispenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Dispense(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(p))
}

func (h *Handler) Cancel(c echo.Context) error {
	p, err := h.svc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(p))
}

func (h *Handler) Stats(c echo.Context) error {
	st, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, st)
}
