package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RBAC admits requests whose "role" claim, set by Auth, is one of allowedRoles.
// A rejected request is reported through the central error handler as a 403.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}
	need := strings.Join(allowedRoles, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden").
					SetInternal(fmt.Errorf("role %q not in [%s]", role, need))
			}
			return next(c)
		}
	}
}
