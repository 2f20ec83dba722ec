package http

import (
	"strings"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title                    string     `json:"title"       binding:"required,min=1,max=255"`
	Description              string     `json:"description" binding:"max=5000"`
	Priority                 int        `json:"priority"    binding:"omitempty,min=1,max=3"`
	Deadline                 *time.Time `json:"deadline"`
	CategoryIDs              []string   `json:"category_ids"`
	EstimatedDurationMinutes int        `json:"estimated_duration_minutes" binding:"omitempty,min=1"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateTaskInput {
	input := task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Deadline:    r.Deadline,
		CategoryIDs: r.CategoryIDs,
	}
	if r.EstimatedDurationMinutes > 0 {
		d := time.Duration(r.EstimatedDurationMinutes) * time.Minute
		input.EstimatedDuration = &d
	}
	return input
}

// ---

type listReq struct {
	Status       string     `form:"status"`
	Priority     int        `form:"priority"  binding:"omitempty,min=1,max=3"`
	DeadlineFrom *time.Time `form:"deadline_from" time_format:"2006-01-02T15:04:05Z07:00"`
	DeadlineTo   *time.Time `form:"deadline_to"   time_format:"2006-01-02T15:04:05Z07:00"`
	Search       string     `form:"search"`
	Limit        int        `form:"limit"`
	Offset       int        `form:"offset"`
	OrderBy      string     `form:"order_by"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListTasksInput {
	var statuses []model.TaskStatus
	for _, s := range strings.Split(r.Status, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			statuses = append(statuses, model.TaskStatus(s))
		}
	}

	return task.ListTasksInput{
		Statuses:     statuses,
		Priority:     r.Priority,
		DeadlineFrom: r.DeadlineFrom,
		DeadlineTo:   r.DeadlineTo,
		Search:       r.Search,
		Limit:        r.Limit,
		Offset:       r.Offset,
		OrderBy:      r.OrderBy,
	}
}

// ---

type updateReq struct {
	ID                       string            `json:"-"` // populated from URI param
	Title                    *string           `json:"title"       binding:"omitempty,min=1,max=255"`
	Description              *string           `json:"description" binding:"omitempty,max=5000"`
	Priority                 *int              `json:"priority"    binding:"omitempty,min=1,max=3"`
	Status                   *model.TaskStatus `json:"status"`
	Deadline                 *time.Time        `json:"deadline"`
	ClearDeadline            bool              `json:"clear_deadline"`
	CategoryIDs              []string          `json:"category_ids"`
	EstimatedDurationMinutes *int              `json:"estimated_duration_minutes" binding:"omitempty,min=1"`
	ActualDurationMinutes    *int              `json:"actual_duration_minutes"    binding:"omitempty,min=1"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateTaskInput {
	input := task.UpdateTaskInput{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Priority:      r.Priority,
		Status:        r.Status,
		Deadline:      r.Deadline,
		ClearDeadline: r.ClearDeadline,
		CategoryIDs:   r.CategoryIDs,
	}
	if r.EstimatedDurationMinutes != nil {
		d := time.Duration(*r.EstimatedDurationMinutes) * time.Minute
		input.EstimatedDuration = &d
	}
	if r.ActualDurationMinutes != nil {
		d := time.Duration(*r.ActualDurationMinutes) * time.Minute
		input.ActualDuration = &d
	}
	return input
}

// --- Response DTOs ---

type taskResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Priority int    `json:"priority"`
	Status   string `json:"status"`

	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	IsOverdue   bool       `json:"is_overdue"`

	AISuggestedPriority   *int       `json:"ai_suggested_priority,omitempty"`
	AISuggestedDeadline   *time.Time `json:"ai_suggested_deadline,omitempty"`
	AIReasoning           string     `json:"ai_reasoning,omitempty"`
	AIEnhancedDescription string     `json:"ai_enhanced_description,omitempty"`

	CategoryIDs []string `json:"category_ids"`
	ContextTags []string `json:"context_tags"`

	EstimatedDurationMinutes int `json:"estimated_duration_minutes,omitempty"`
	ActualDurationMinutes    int `json:"actual_duration_minutes,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:                    t.ID,
		Title:                 t.Title,
		Description:           t.Description,
		Priority:              t.Priority,
		Status:                string(t.Status),
		Deadline:              t.Deadline,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
		CompletedAt:           t.CompletedAt,
		IsOverdue:             t.IsOverdue(time.Now()),
		AISuggestedPriority:   t.AISuggestedPriority,
		AISuggestedDeadline:   t.AISuggestedDeadline,
		AIReasoning:           t.AIReasoning,
		AIEnhancedDescription: t.AIEnhancedDescription,
		CategoryIDs:           t.CategoryIDs,
		ContextTags:           t.ContextTags,
	}
	if resp.CategoryIDs == nil {
		resp.CategoryIDs = []string{}
	}
	if resp.ContextTags == nil {
		resp.ContextTags = []string{}
	}
	if t.EstimatedDuration != nil {
		resp.EstimatedDurationMinutes = int(t.EstimatedDuration.Minutes())
	}
	if t.ActualDuration != nil {
		resp.ActualDurationMinutes = int(t.ActualDuration.Minutes())
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type createCategoryReq struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

func (r createCategoryReq) toInput() task.CreateCategoryInput {
	return task.CreateCategoryInput{Name: r.Name}
}

type categoryResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Description string    `json:"description,omitempty"`
	TaskCount   int       `json:"task_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func newCategoryResp(out task.CategoryOutput) categoryResp {
	return categoryResp{
		ID:          out.Category.ID,
		Name:        out.Category.Name,
		Color:       out.Category.Color,
		Description: out.Category.Description,
		TaskCount:   out.TaskCount,
		CreatedAt:   out.Category.CreatedAt,
	}
}

type detailResp struct {
	Task       taskResp       `json:"task"`
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	categories := make([]categoryResp, len(out.Categories))
	for i, cat := range out.Categories {
		categories[i] = categoryResp{
			ID:          cat.ID,
			Name:        cat.Name,
			Color:       cat.Color,
			Description: cat.Description,
			CreatedAt:   cat.CreatedAt,
		}
	}
	return detailResp{Task: newTaskResp(out.Task), Categories: categories}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type statsResp struct {
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	PendingTasks      int     `json:"pending_tasks"`
	InProgressTasks   int     `json:"in_progress_tasks"`
	HighPriorityTasks int     `json:"high_priority_tasks"`
	OverdueTasks      int     `json:"overdue_tasks"`
	CompletionRate    float64 `json:"completion_rate"`
	AvgCompletionTime float64 `json:"avg_completion_time_hours"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp(out)
}

type categoriesResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newCategoriesResp(outs []task.CategoryOutput) categoriesResp {
	categories := make([]categoryResp, len(outs))
	for i, out := range outs {
		categories[i] = newCategoryResp(out)
	}
	return categoriesResp{Categories: categories}
}
