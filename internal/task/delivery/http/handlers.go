package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task and schedules its background enrichment. Enriched fields appear asynchronously.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user ID"
// @Param       body      body   createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list of the caller's tasks with optional filters.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Caller user ID"
// @Param       status    query  string false "Comma-separated statuses (pending,in_progress,completed,cancelled)"
// @Param       priority  query  int    false "Filter by priority (1-3)"
// @Param       search    query  string false "Substring match on title and description"
// @Param       order_by  query  string false "Sort key: created_at, -created_at, deadline, priority, -priority"
// @Param       limit     query  int    false "Page size (default: 20, max: 100)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task with its categories.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
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

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "task.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates a task. Completing a task stamps completed_at; leaving completed clears it.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user ID"
// @Param       id        path   string    true "Task ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
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

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "task.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Stats godoc
// @Summary     Task statistics
// @Description Summarizes the caller's workload: totals per status, overdue count, completion rate.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "task.http.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Export godoc
// @Summary     Export tasks as CSV
// @Description Streams all of the caller's tasks as a CSV attachment.
// @Tags        Task
// @Accept      json
// @Produce     text/csv
// @Param       X-User-ID header string true "Caller user ID"
// @Success     200 {string} string "CSV file"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	data, err := h.uc.ExportCSV(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "task.http.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	filename := fmt.Sprintf("tasks-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// CreateCategory godoc
// @Summary     Create a category
// @Description Resolves a category by name, creating it when missing. Posting the same name twice returns the same category.
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string            true "Caller user ID"
// @Param       body      body   createCategoryReq true "Category data"
// @Success     200 {object} categoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [POST]
func (h *handler) CreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateCategory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.CreateCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResp(output))
}

// ListCategories godoc
// @Summary     List categories
// @Description Returns all categories with their task counts.
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Success     200 {object} categoriesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [GET]
func (h *handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListCategories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "task.http.ListCategories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCategoriesResp(output))
}

// PopularCategories godoc
// @Summary     Most used categories
// @Description Returns the categories attached to the most tasks.
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Success     200 {object} categoriesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories/popular [GET]
func (h *handler) PopularCategories(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.PopularCategories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "task.http.PopularCategories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCategoriesResp(output))
}
