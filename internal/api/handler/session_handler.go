package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

// SessionHandler handles HTTP requests for the session lifecycle.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Book handles POST /sessions.
//
// @Summary      Request a session with a mentor
// @Description  The mentor must have no requested or confirmed session overlapping the new window.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookSessionRequest  true  "Session request"
// @Success      201   {object}  domain.Session
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /sessions [post]
func (h *SessionHandler) Book(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req bookSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	scheduledAt, err := parseScheduledAt(req.ScheduledAt)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s, err := h.service.Book(c.Request().Context(), p, ports.BookSessionInput{
		MentorID:        req.MentorID,
		LearnerID:       req.LearnerID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: req.DurationMinutes,
		Channel:         req.Channel,
		Notes:           req.Notes,
		Resources:       toResources(req.Resources),
		Price:           req.Price,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/sessions/"+s.ID)
	return c.JSON(http.StatusCreated, s)
}

// List handles GET /sessions.
//
// @Summary      List sessions
// @Description  Admins may filter by mentor and learner; everyone else sees only their own sessions.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        mentor_id   query     string  false  "Mentor filter (admin only)"
// @Param        learner_id  query     string  false  "Learner filter (admin only)"
// @Param        status      query     string  false  "Status filter"
// @Param        page        query     int     false  "Page (1-based)"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Success      200         {object}  sessionListResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Router       /sessions [get]
func (h *SessionHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}

	res, err := h.service.List(c.Request().Context(), p, ports.ListSessionsInput{
		MentorID:  c.QueryParam("mentor_id"),
		LearnerID: c.QueryParam("learner_id"),
		Status:    c.QueryParam("status"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toSessionList(res))
}

// Timeline handles GET /sessions/timeline.
//
// @Summary      Past and upcoming sessions of the caller
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  timelineResponse
// @Failure      401  {object}  errorResponse
// @Router       /sessions/timeline [get]
func (h *SessionHandler) Timeline(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	tl, err := h.service.Timeline(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTimeline(tl))
}

// Get handles GET /sessions/:id.
//
// @Summary      Get a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  domain.Session
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /sessions/{id} [get]
func (h *SessionHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	s, err := h.service.Get(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, s)
}

// Accept handles PATCH /sessions/:id/accept.
//
// @Summary      Accept a requested session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true   "Session ID"
// @Param        body  body      acceptSessionRequest  false  "Optional meeting link"
// @Success      200   {object}  domain.Session
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /sessions/{id}/accept [patch]
func (h *SessionHandler) Accept(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req acceptSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	s, err := h.service.Accept(c.Request().Context(), p, c.Param("id"), req.MeetingLink)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, s)
}

// Decline handles PATCH /sessions/:id/decline.
//
// @Summary      Decline a requested session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  domain.Session
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /sessions/{id}/decline [patch]
func (h *SessionHandler) Decline(c echo.Context) error {
	return h.transition(c, h.service.Decline)
}

// Cancel handles PATCH /sessions/:id/cancel.
//
// @Summary      Cancel a confirmed session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  domain.Session
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /sessions/{id}/cancel [patch]
func (h *SessionHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.service.Cancel)
}

// MarkCompleted handles PATCH /sessions/:id/mark-completed.
//
// @Summary      Mark a confirmed session as completed
// @Description  Only the session's learner, and only once the scheduled start has passed.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  domain.Session
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /sessions/{id}/mark-completed [patch]
func (h *SessionHandler) MarkCompleted(c echo.Context) error {
	return h.transition(c, h.service.MarkCompleted)
}

// Rate handles PATCH /sessions/:id/rate.
//
// @Summary      Rate a completed session
// @Description  A session can be rated once. The mentor's rating is recomputed from all rated sessions.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Session ID"
// @Param        body  body      rateSessionRequest  true  "Rating (1-5) and review"
// @Success      200   {object}  domain.Session
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /sessions/{id}/rate [patch]
func (h *SessionHandler) Rate(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req rateSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	s, err := h.service.Rate(c.Request().Context(), p, ports.RateSessionInput{
		SessionID: sessionIDParam(c),
		Rating:    req.Rating,
		Review:    req.Review,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, s)
}

// Feedback handles POST /feedback/:sessionId, kept as an alias of Rate.
//
// @Summary      Leave feedback for a completed session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sessionId  path      string              true  "Session ID"
// @Param        body       body      rateSessionRequest  true  "Rating (1-5) and review"
// @Success      200        {object}  domain.Session
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /feedback/{sessionId} [post]
func (h *SessionHandler) Feedback(c echo.Context) error {
	return h.Rate(c)
}

type transitionFunc func(ctx context.Context, p ports.Principal, sessionID string) (*domain.Session, error)

func (h *SessionHandler) transition(c echo.Context, fn transitionFunc) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	s, err := fn(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, s)
}

// sessionIDParam reads the session id from either route shape.
func sessionIDParam(c echo.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	return c.Param("sessionId")
}
