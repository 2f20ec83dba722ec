package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/pkg/response"
)

// Generate godoc
// @Summary     Generate schedule suggestions
// @Description Replaces the caller's time-block suggestions for one day with a freshly generated set. Runs synchronously.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Caller user ID"
// @Param       body      body   generateReq true "Target date plus optional committed events to avoid"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/suggestions [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.GenerateSchedule(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// List godoc
// @Summary     List schedule suggestions
// @Description Returns the stored time-block suggestions for one day. Defaults to today.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Caller user ID"
// @Param       date      query  string false "Target day (YYYY-MM-DD, default: today)"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/suggestions [GET]
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

	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ListSchedule(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "schedule.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
