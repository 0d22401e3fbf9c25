package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

// ctxPrincipal extracts the caller injected by the Auth middleware. Both the
// user id and the role must be present; a token without them is structurally
// valid but unusable.
func ctxPrincipal(c echo.Context) (ports.Principal, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return ports.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Principal{ID: id, Role: role}, nil
}
