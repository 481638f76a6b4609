package staff

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
	api.GET("/employees", h.ListEmployees, auth.RequirePermission(auth.ModuleStaff, auth.ActionView))
	api.GET("/employees/stats", h.EmployeeStats, auth.RequirePermission(auth.ModuleStaff, auth.ActionView))
	api.GET("/employees/:id", h.GetEmployee, auth.RequirePermission(auth.ModuleStaff, auth.ActionView))
	api.POST("/employees", h.CreateEmployee, auth.RequirePermission(auth.ModuleStaff, auth.ActionCreate))
	api.PUT("/employees/:id", h.UpdateEmployee, auth.RequirePermission(auth.ModuleStaff, auth.ActionEdit))
	api.DELETE("/employees/:id", h.DeleteEmployee, auth.RequirePermission(auth.ModuleStaff, auth.ActionDelete))

	api.GET("/departments", h.ListDepartments, auth.RequirePermission(auth.ModuleStaff, auth.ActionView))
	api.GET("/departments/stats", h.DepartmentStats, auth.RequirePermission(auth.ModuleStaff, auth.ActionView))
	api.GET("/departments/:id", h.GetDepartment, auth.RequirePermission(auth.ModuleStaff, auth.ActionView))
	api.POST("/departments", h.CreateDepartment, auth.RequirePermission(auth.ModuleStaff, auth.ActionCreate))
	api.PUT("/departments/:id", h.UpdateDepartment, auth.RequirePermission(auth.ModuleStaff, auth.ActionEdit))
	api.DELETE("/departments/:id", h.DeleteDepartment, auth.RequirePermission(auth.ModuleStaff, auth.ActionDelete))
}

func (h *Handler) ListEmployees(c echo.Context) error {
	pg := pagination.FromContext(c)
	employees, total, err := h.svc.ListEmployees(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	views := make([]EmployeeView, len(employees))
	for i, e := range employees {
		views[i] = NewEmployeeView(e)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetEmployee(c echo.Context) error {
	e, err := h.svc.GetEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewEmployeeView(e))
}

func (h *Handler) CreateEmployee(c echo.Context) error {
	var e Employee
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateEmployee(c.Request().Context(), &e)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewEmployeeView(created))
}

func (h *Handler) UpdateEmployee(c echo.Context) error {
	var e Employee
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	e.ID = c.Param("id")
	updated, err := h.svc.UpdateEmployee(c.Request().Context(), &e)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewEmployeeView(updated))
}

func (h *Handler) DeleteEmployee(c echo.Context) error {
	if err := h.svc.DeleteEmployee(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) EmployeeStats(c echo.Context) error {
	st, err := h.svc.EmployeeStats(c.Request().Context())
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) ListDepartments(c echo.Context) error {
	pg := pagination.FromContext(c)
	departments, total, err := h.svc.ListDepartments(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return apierr.HTTP(err)
	}
	views := make([]DepartmentView, len(departments))
	for i, d := range departments {
		views[i] = NewDepartmentView(d)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetDepartment(c echo.Context) error {
	d, err := h.svc.GetDepartment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewDepartmentView(d))
}

func (h *Handler) CreateDepartment(c echo.Context) error {
	var d Department
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateDepartment(c.Request().Context(), &d)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusCreated, NewDepartmentView(created))
}

func (h *Handler) UpdateDepartment(c echo.Context) error {
	var d Department
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d.ID = c.Param("id")
	updated, err := h.svc.UpdateDepartment(c.Request().Context(), &d)
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, NewDepartmentView(updated))
}

func (h *Handler) DeleteDepartment(c echo.Context) error {
	if err := h.svc.DeleteDepartment(c.Request().Context(), c.Param("id")); err != nil {
		return apierr.HTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DepartmentStats(c echo.Context) error {
	st, err := h.svc.DepartmentStats(c.Request().Context())
	if err != nil {
		return apierr.HTTP(err)
	}
	return c.JSON(http.StatusOK, st)
}
