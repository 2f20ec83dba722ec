package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
	"smart-todo/internal/model"
	"smart-todo/internal/task"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	task.UseCase

	createFn func(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error)
	detailFn func(ctx context.Context, sc model.Scope, id string) (task.DetailTaskOutput, error)
	statsFn  func(ctx context.Context, sc model.Scope) (task.StatsOutput, error)
	exportFn func(ctx context.Context, sc model.Scope) ([]byte, error)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	return m.createFn(ctx, sc, input)
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailTaskOutput, error) {
	return m.detailFn(ctx, sc, id)
}

func (m *mockUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	return m.statsFn(ctx, sc)
}

func (m *mockUseCase) ExportCSV(ctx context.Context, sc model.Scope) ([]byte, error) {
	return m.exportFn(ctx, sc)
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	mw := middleware.New(mockLogger{}, nil)
	RegisterRoutes(r.Group("/api/v1"), New(mockLogger{}, uc), mw)
	return r
}

func doRequest(r *gin.Engine, method, path, user string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	t.Run("creates under caller scope", func(t *testing.T) {
		var gotScope model.Scope
		uc := &mockUseCase{
			createFn: func(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
				gotScope = sc
				return task.CreateTaskOutput{Task: model.Task{
					ID:       "task-1",
					UserID:   sc.UserID,
					Title:    input.Title,
					Priority: model.PriorityMedium,
					Status:   model.TaskStatusPending,
				}}, nil
			},
		}
		r := newTestRouter(uc)

		w := doRequest(r, http.MethodPost, "/api/v1/tasks", "user-1", gin.H{"title": "Write report"})

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if gotScope.UserID != "user-1" {
			t.Errorf("scope user = %q, want user-1", gotScope.UserID)
		}

		var resp struct {
			Data createResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Data.Task.Title != "Write report" {
			t.Errorf("title = %q", resp.Data.Task.Title)
		}
	})

	t.Run("missing title rejected by binding", func(t *testing.T) {
		uc := &mockUseCase{
			createFn: func(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
				t.Fatal("use case must not be called")
				return task.CreateTaskOutput{}, nil
			},
		}
		r := newTestRouter(uc)

		w := doRequest(r, http.MethodPost, "/api/v1/tasks", "user-1", gin.H{"description": "no title"})

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("missing identity rejected", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doRequest(r, http.MethodPost, "/api/v1/tasks", "", gin.H{"title": "x"})

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}

func TestDetailHandler(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		uc := &mockUseCase{
			detailFn: func(ctx context.Context, sc model.Scope, id string) (task.DetailTaskOutput, error) {
				return task.DetailTaskOutput{}, task.ErrTaskNotFound
			},
		}
		r := newTestRouter(uc)

		w := doRequest(r, http.MethodGet, "/api/v1/tasks/nope", "user-1", nil)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestStatsHandler(t *testing.T) {
	uc := &mockUseCase{
		statsFn: func(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
			return task.StatsOutput{TotalTasks: 4, CompletedTasks: 2, CompletionRate: 0.5}, nil
		},
	}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/api/v1/tasks/stats", "user-1", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data statsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.TotalTasks != 4 || resp.Data.CompletionRate != 0.5 {
		t.Errorf("stats = %+v", resp.Data)
	}
}

func TestExportHandler(t *testing.T) {
	uc := &mockUseCase{
		exportFn: func(ctx context.Context, sc model.Scope) ([]byte, error) {
			return []byte("id,title\ntask-1,Write report\n"), nil
		},
	}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/api/v1/tasks/export", "user-1", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment;") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.Contains(w.Body.String(), "Write report") {
		t.Errorf("body = %q", w.Body.String())
	}
}
