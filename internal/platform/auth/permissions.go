package auth

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Action names the permission bits on a module grant.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Module ids match the hosted User record's permissions map keys.
const (
	ModulePatients     = "patients"
	ModuleAppointments = "appointments"
	ModuleBeds         = "beds"
	ModuleBilling      = "billing"
	ModuleInventory    = "inventory"
	ModuleStaff        = "staff"
	ModuleServices     = "services"
	ModuleSurgery      = "surgery"
	ModuleLab          = "lab"
	ModulePharmacy     = "pharmacy"
	ModuleDashboard    = "dashboard"
)

// Allowed reports whether the grant permits the action.
func (p ModulePermissions) Allowed(action Action) bool {
	switch action {
	case ActionView:
		return p.View
	case ActionCreate:
		return p.Create
	case ActionEdit:
		return p.Edit
	case ActionDelete:
		return p.Delete
	default:
		return false
	}
}

// RequirePermission returns middleware that rejects callers whose permissions
// map does not grant the action on the module. Admins and callers with a nil
// permissions map pass.
func RequirePermission(module string, action Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			user := UserFromContext(ctx)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if user.Role == "admin" {
				return next(c)
			}
			perms, _ := PermissionsFromContext(ctx)
			if perms == nil {
				return next(c)
			}
			if grant, ok := perms[module]; ok && grant.Allowed(action) {
				return next(c)
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("missing %s permission on %s", action, module))
		}
	}
}
