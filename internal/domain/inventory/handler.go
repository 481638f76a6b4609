package inventory

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
	api.GET("/inventory", h.ListItems, auth.RequirePermission(auth.ModuleInventory, auth.ActionView))
	api.GET("/inventory/stats", h.Stats, auth.RequirePermission(auth.ModuleInventory, auth.ActionView))
	api.GET("/inventory/:id", h.GetItem, auth.RequirePermission(auth.ModuleInventory, auth.ActionView))
	api.POST("/inventory", h.CreateItem, auth.RequirePermission(auth.ModuleInventory, auth.ActionCreate))
	api.PUT("/inventory/:id", h.UpdateItem, auth.RequirePermission(auth.ModuleInventory, auth.ActionEdit))
	api.DELETE("/inventory/:id", h.DeleteItem, auth.RequirePermission(auth.ModuleInventory, auth.ActionDelete))
	api.POST("/inventory/:id/adjust", h.AdjustStock, auth.RequirePermission(auth.ModuleInventory, auth.ActionEdit))
}

func (h *Handler) ListItems(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListItems(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	views := make([]View, len(items))
	for i, item := range items {
		views[i] = NewView(item)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetItem(c echo.Context) error {
	item, err := h.svc.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(item))
}

func (h *Handler) CreateItem(c echo.Context) error {
	var item Item
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateItem(c.Request().Context(), &item)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewView(created))
}

func (h *Handler) UpdateItem(c echo.Context) error {
	var item Item
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item.ID = c.Param("id")
	updated, err := h.svc.UpdateItem(c.Request().Context(), &item)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(updated))
}

func (h *Handler) DeleteItem(c echo.Context) error {
	if err := h.svc.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) AdjustStock(c echo.Context) error {
	var req adjustRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.svc.AdjustStock(c.Request().Context(), c.Param("id"), req.Delta)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewView(item))
}

func (h *Handler) Stats(c echo.Context) error {
	st, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, st)
}
