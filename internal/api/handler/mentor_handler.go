package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

// MentorHandler serves mentor discovery and presence.
type MentorHandler struct {
	service ports.MentorService
}

func NewMentorHandler(service ports.MentorService) *MentorHandler {
	return &MentorHandler{service: service}
}

// Search handles GET /mentors.
//
// @Summary      Search verified mentors
// @Tags         mentors
// @Produce      json
// @Param        q           query     string  false  "Full-text query on name, bio, subjects and tags"
// @Param        subjects    query     string  false  "Comma-separated subjects (any of)"
// @Param        tags        query     string  false  "Comma-separated tags (any of)"
// @Param        min_rating  query     number  false  "Minimum rating (0-5)"
// @Param        page        query     int     false  "Page (1-based)"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Success      200         {object}  mentorListResponse
// @Failure      400         {object}  errorResponse
// @Router       /mentors [get]
func (h *MentorHandler) Search(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	minRating, err := queryFloat(c, "min_rating")
	if err != nil {
		return err
	}

	res, err := h.service.Search(c.Request().Context(), ports.SearchMentorsInput{
		Query:     c.QueryParam("q"),
		Subjects:  splitCSV(c.QueryParam("subjects")),
		Tags:      splitCSV(c.QueryParam("tags")),
		MinRating: minRating,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMentorList(res))
}

// BestRated handles GET /mentors/best-rated.
//
// @Summary      Best rated verified mentors
// @Tags         mentors
// @Produce      json
// @Param        limit  query  int  false  "How many mentors to return"
// @Success      200    {array}   domain.User
// @Failure      400    {object}  errorResponse
// @Router       /mentors/best-rated [get]
func (h *MentorHandler) BestRated(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	mentors, err := h.service.BestRated(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, nonNilUsers(mentors))
}

// Get handles GET /mentors/:id.
//
// @Summary      Get a mentor profile
// @Tags         mentors
// @Produce      json
// @Param        id   path      string  true  "Mentor ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /mentors/{id} [get]
func (h *MentorHandler) Get(c echo.Context) error {
	m, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Heartbeat handles POST /mentors/heartbeat.
//
// @Summary      Mark the calling mentor as online
// @Tags         mentors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  heartbeatResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /mentors/heartbeat [post]
func (h *MentorHandler) Heartbeat(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Heartbeat(c.Request().Context(), p); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, heartbeatResponse{Status: "online", At: time.Now().UTC()})
}
