package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/pkg/response"
)

// List godoc
// @Summary     List recommendations
// @Description Returns the caller's pending recommendations, newest first. Accepted and dismissed ones are included on request.
// @Tags        Recommendation
// @Accept      json
// @Produce     json
// @Param       X-User-ID     header string true  "Caller user ID"
// @Param       include_acted query  bool   false "Also return accepted and dismissed recommendations"
// @Param       limit         query  int    false "Page size (default: 20, max: 100)"
// @Param       offset        query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recommendations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "recommendation.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Accept godoc
// @Summary     Accept a recommendation
// @Description Turns a recommendation into a real task and marks it accepted. Accepting is final.
// @Tags        Recommendation
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Recommendation ID"
// @Success     200 {object} acceptResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already acted on"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recommendations/{id}/accept [POST]
func (h *handler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Accept(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "recommendation.http.Accept: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAcceptResp(output))
}

// Dismiss godoc
// @Summary     Dismiss a recommendation
// @Description Marks a recommendation rejected without creating a task. Dismissing is final.
// @Tags        Recommendation
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Recommendation ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already acted on"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recommendations/{id}/dismiss [POST]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.Dismiss(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "recommendation.http.Dismiss: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Trigger godoc
// @Summary     Regenerate recommendations
// @Description Schedules a background regeneration of the caller's recommendations. Pending ones are replaced when the job lands.
// @Tags        Recommendation
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Success     202 {object} response.Resp "Accepted"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/recommendations/trigger [POST]
func (h *handler) Trigger(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Trigger(ctx, sc); err != nil {
		h.l.Errorf(ctx, "recommendation.http.Trigger: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Accepted(c, nil)
}
