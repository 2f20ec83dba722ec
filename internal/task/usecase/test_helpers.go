package usecase

import (
	"context"
	"time"

	"smart-todo/internal/enrichment/queue"
	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository with per-method override hooks.
type mockRepository struct {
	createTaskFn    func(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error)
	getOneTaskFn    func(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error)
	listTasksFn     func(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error)
	updateTaskFn    func(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error)
	deleteTaskFn    func(ctx context.Context, id, userID string) error
	countStatsFn    func(ctx context.Context, userID string) (repo.TaskStatsCounts, error)
	listCatsFn      func(ctx context.Context) ([]model.TaskCategory, map[string]int, error)
	attachedTaskIDs []string
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.createTaskFn != nil {
		return m.createTaskFn(ctx, opt)
	}
	return model.Task{ID: "task-1", UserID: opt.UserID, Title: opt.Title, Priority: opt.Priority, Status: opt.Status}, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.getOneTaskFn != nil {
		return m.getOneTaskFn(ctx, opt)
	}
	return model.Task{}, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.listTasksFn != nil {
		return m.listTasksFn(ctx, opt)
	}
	return nil, 0, nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if m.updateTaskFn != nil {
		return m.updateTaskFn(ctx, opt)
	}
	return model.Task{}, nil
}

func (m *mockRepository) UpdateTaskEnrichment(ctx context.Context, opt repo.UpdateTaskEnrichmentOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, id, userID string) error {
	if m.deleteTaskFn != nil {
		return m.deleteTaskFn(ctx, id, userID)
	}
	return nil
}

func (m *mockRepository) CountTaskLoad(ctx context.Context, userID string) (repo.TaskLoadCounts, error) {
	return repo.TaskLoadCounts{}, nil
}

func (m *mockRepository) CountTaskStats(ctx context.Context, userID string) (repo.TaskStatsCounts, error) {
	if m.countStatsFn != nil {
		return m.countStatsFn(ctx, userID)
	}
	return repo.TaskStatsCounts{}, nil
}

func (m *mockRepository) GetOrCreateCategory(ctx context.Context, name string) (model.TaskCategory, error) {
	return model.TaskCategory{ID: "cat-" + name, Name: name, Color: model.DefaultCategoryColor, CreatedAt: time.Now()}, nil
}

func (m *mockRepository) ListCategories(ctx context.Context) ([]model.TaskCategory, map[string]int, error) {
	if m.listCatsFn != nil {
		return m.listCatsFn(ctx)
	}
	return nil, nil, nil
}

func (m *mockRepository) ListPopularCategories(ctx context.Context, limit int) ([]model.TaskCategory, map[string]int, error) {
	if m.listCatsFn != nil {
		return m.listCatsFn(ctx)
	}
	return nil, nil, nil
}

func (m *mockRepository) AttachCategories(ctx context.Context, taskID string, categoryIDs []string) error {
	m.attachedTaskIDs = append(m.attachedTaskIDs, taskID)
	return nil
}

func (m *mockRepository) ListTaskCategories(ctx context.Context, taskID string) ([]model.TaskCategory, error) {
	return nil, nil
}

// Mock enqueuer recording submitted jobs.
type mockEnqueuer struct {
	jobs []queue.Job
	err  error
}

func (m *mockEnqueuer) Enqueue(ctx context.Context, job queue.Job) error {
	if m.err != nil {
		return m.err
	}
	m.jobs = append(m.jobs, job)
	return nil
}
