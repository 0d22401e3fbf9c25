package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

// AdminHandler serves the admin-only endpoints.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// MentorApplications handles GET /admin/mentor-applications.
//
// @Summary      Mentors awaiting verification
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  mentorListResponse
// @Failure      403    {object}  errorResponse
// @Router       /admin/mentor-applications [get]
func (h *AdminHandler) MentorApplications(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	res, err := h.service.ListMentorApplications(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMentorList(res))
}

// ApproveMentor handles PATCH /admin/mentor-applications/:id/approve.
//
// @Summary      Verify a mentor
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Mentor ID"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/mentor-applications/{id}/approve [patch]
func (h *AdminHandler) ApproveMentor(c echo.Context) error {
	u, err := h.service.ApproveMentor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Analytics handles GET /admin/analytics.
//
// @Summary      Platform totals
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  analyticsResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/analytics [get]
func (h *AdminHandler) Analytics(c echo.Context) error {
	a, err := h.service.Analytics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAnalytics(a))
}

// RecomputeRating handles POST /admin/mentors/:id/recompute-rating.
//
// @Summary      Rebuild a mentor's rating from their rated sessions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Mentor ID"
// @Success      200  {object}  ratingResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/mentors/{id}/recompute-rating [post]
func (h *AdminHandler) RecomputeRating(c echo.Context) error {
	id := c.Param("id")
	sum, err := h.service.RecomputeRating(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratingResponse{MentorID: id, Rating: sum.Average, RatingCount: sum.Count})
}
