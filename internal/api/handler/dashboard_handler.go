package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Learner handles GET /learners/dashboard.
//
// @Summary      Learner landing data
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  learnerDashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /learners/dashboard [get]
func (h *DashboardHandler) Learner(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	d, err := h.service.Learner(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toDashboard(d))
}
