package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"

	"smart-todo/internal/enrichment/queue"
	"smart-todo/internal/model"
	"smart-todo/internal/schedule"
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

type call struct {
	method string
	userID string
	id     string
}

type mockUseCase struct {
	calls []call
	err   error
}

func (m *mockUseCase) ProcessTask(ctx context.Context, sc model.Scope, taskID string) error {
	m.calls = append(m.calls, call{method: "ProcessTask", userID: sc.UserID, id: taskID})
	return m.err
}

func (m *mockUseCase) ProcessContextEntry(ctx context.Context, sc model.Scope, entryID string) error {
	m.calls = append(m.calls, call{method: "ProcessContextEntry", userID: sc.UserID, id: entryID})
	return m.err
}

func (m *mockUseCase) GenerateRecommendations(ctx context.Context, sc model.Scope) error {
	m.calls = append(m.calls, call{method: "GenerateRecommendations", userID: sc.UserID})
	return m.err
}

func (m *mockUseCase) GenerateSchedule(ctx context.Context, sc model.Scope, input schedule.GenerateInput) (schedule.GenerateOutput, error) {
	m.calls = append(m.calls, call{method: "GenerateSchedule", userID: sc.UserID})
	return schedule.GenerateOutput{}, m.err
}

func (m *mockUseCase) ListSchedule(ctx context.Context, sc model.Scope, input schedule.GenerateInput) (schedule.ListOutput, error) {
	m.calls = append(m.calls, call{method: "ListSchedule", userID: sc.UserID})
	return schedule.ListOutput{}, m.err
}

func jobMessage(t *testing.T, job queue.Job) *sarama.ConsumerMessage {
	t.Helper()

	value, err := json.Marshal(job)
	if err != nil {
		t.Fatalf("marshal job: %v", err)
	}
	return &sarama.ConsumerMessage{Topic: "enrichment-jobs", Value: value}
}

func TestHandleMessageDispatch(t *testing.T) {
	tests := []struct {
		name string
		job  queue.Job
		want call
	}{
		{
			name: "enrich task",
			job:  queue.Job{Kind: queue.JobEnrichTask, EntityID: "task-1", UserID: "user-1"},
			want: call{method: "ProcessTask", userID: "user-1", id: "task-1"},
		},
		{
			name: "analyze context",
			job:  queue.Job{Kind: queue.JobAnalyzeContext, EntityID: "entry-1", UserID: "user-2"},
			want: call{method: "ProcessContextEntry", userID: "user-2", id: "entry-1"},
		},
		{
			name: "generate recommendations",
			job:  queue.Job{Kind: queue.JobGenerateRecommendations, UserID: "user-3"},
			want: call{method: "GenerateRecommendations", userID: "user-3"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := &groupHandler{l: mockLogger{}, uc: uc}

			tc.job.EnqueuedAt = time.Now().UTC()
			h.handleMessage(context.Background(), jobMessage(t, tc.job))

			if len(uc.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(uc.calls))
			}
			if uc.calls[0] != tc.want {
				t.Errorf("dispatched %+v, want %+v", uc.calls[0], tc.want)
			}
		})
	}
}

func TestHandleMessageSkips(t *testing.T) {
	t.Run("undecodable payload", func(t *testing.T) {
		uc := &mockUseCase{}
		h := &groupHandler{l: mockLogger{}, uc: uc}

		h.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("not json")})

		if len(uc.calls) != 0 {
			t.Errorf("expected no calls, got %d", len(uc.calls))
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		uc := &mockUseCase{}
		h := &groupHandler{l: mockLogger{}, uc: uc}

		h.handleMessage(context.Background(), jobMessage(t, queue.Job{Kind: "reindex_everything", UserID: "user-1"}))

		if len(uc.calls) != 0 {
			t.Errorf("expected no calls, got %d", len(uc.calls))
		}
	})

	t.Run("missing user id", func(t *testing.T) {
		uc := &mockUseCase{}
		h := &groupHandler{l: mockLogger{}, uc: uc}

		h.handleMessage(context.Background(), jobMessage(t, queue.Job{Kind: queue.JobEnrichTask, EntityID: "task-1"}))

		if len(uc.calls) != 0 {
			t.Errorf("expected no calls, got %d", len(uc.calls))
		}
	})
}
