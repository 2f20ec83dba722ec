package usecase

import (
	"context"
	"strconv"
	"time"

	contextRepo "smart-todo/internal/contextentry/repository"
	"smart-todo/internal/enrichment/reasoner"
	"smart-todo/internal/model"
	recRepo "smart-todo/internal/recommendation/repository"
	schedRepo "smart-todo/internal/schedule/repository"
	taskRepo "smart-todo/internal/task/repository"
	"smart-todo/pkg/gcalendar"
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

// stubReasoner returns canned objects (or errors) in call order.
type stubReasoner struct {
	objects []map[string]any
	err     error
	calls   []reasoner.Call
}

func (s *stubReasoner) Complete(ctx context.Context, call reasoner.Call) (map[string]any, error) {
	s.calls = append(s.calls, call)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.objects) == 0 {
		return map[string]any{}, nil
	}
	obj := s.objects[0]
	if len(s.objects) > 1 {
		s.objects = s.objects[1:]
	}
	return obj, nil
}

// fakeTaskRepo is an in-memory task store.
type fakeTaskRepo struct {
	tasks      map[string]model.Task
	categories map[string]model.TaskCategory // by name
	attached   map[string][]string           // task id -> category ids
	load       taskRepo.TaskLoadCounts
}

func newFakeTaskRepo(tasks ...model.Task) *fakeTaskRepo {
	f := &fakeTaskRepo{
		tasks:      map[string]model.Task{},
		categories: map[string]model.TaskCategory{},
		attached:   map[string][]string{},
	}
	for _, t := range tasks {
		f.tasks[t.ID] = t
	}
	return f
}

func (f *fakeTaskRepo) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:       "task-" + strconv.Itoa(len(f.tasks)+1),
		UserID:   opt.UserID,
		Title:    opt.Title,
		Priority: opt.Priority,
		Status:   opt.Status,
	}
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeTaskRepo) GetOneTask(ctx context.Context, opt taskRepo.GetOneTaskOptions) (model.Task, error) {
	t, ok := f.tasks[opt.ID]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.Task{}, nil
	}
	return t, nil
}

func (f *fakeTaskRepo) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, int, error) {
	var out []model.Task
	for _, t := range f.tasks {
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if len(opt.Statuses) > 0 {
			match := false
			for _, s := range opt.Statuses {
				if t.Status == s {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (f *fakeTaskRepo) UpdateTask(ctx context.Context, opt taskRepo.UpdateTaskOptions) (model.Task, error) {
	return f.tasks[opt.ID], nil
}

func (f *fakeTaskRepo) UpdateTaskEnrichment(ctx context.Context, opt taskRepo.UpdateTaskEnrichmentOptions) (model.Task, error) {
	t, ok := f.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	t.Title = opt.Title
	t.AIEnhancedDescription = opt.AIEnhancedDescription
	t.Priority = opt.Priority
	p := opt.AISuggestedPriority
	t.AISuggestedPriority = &p
	t.Deadline = opt.Deadline
	t.AISuggestedDeadline = opt.AISuggestedDeadline
	t.AIReasoning = opt.AIReasoning
	t.ContextTags = opt.ContextTags
	f.tasks[opt.ID] = t
	return t, nil
}

func (f *fakeTaskRepo) DeleteTask(ctx context.Context, id, userID string) error {
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepo) CountTaskLoad(ctx context.Context, userID string) (taskRepo.TaskLoadCounts, error) {
	return f.load, nil
}

func (f *fakeTaskRepo) CountTaskStats(ctx context.Context, userID string) (taskRepo.TaskStatsCounts, error) {
	return taskRepo.TaskStatsCounts{}, nil
}

func (f *fakeTaskRepo) GetOrCreateCategory(ctx context.Context, name string) (model.TaskCategory, error) {
	if c, ok := f.categories[name]; ok {
		return c, nil
	}
	c := model.TaskCategory{ID: "cat-" + name, Name: name, Color: model.DefaultCategoryColor}
	f.categories[name] = c
	return c, nil
}

func (f *fakeTaskRepo) ListCategories(ctx context.Context) ([]model.TaskCategory, map[string]int, error) {
	return nil, nil, nil
}

func (f *fakeTaskRepo) ListPopularCategories(ctx context.Context, limit int) ([]model.TaskCategory, map[string]int, error) {
	return nil, nil, nil
}

func (f *fakeTaskRepo) AttachCategories(ctx context.Context, taskID string, categoryIDs []string) error {
	for _, id := range categoryIDs {
		exists := false
		for _, have := range f.attached[taskID] {
			if have == id {
				exists = true
			}
		}
		if !exists {
			f.attached[taskID] = append(f.attached[taskID], id)
		}
	}
	return nil
}

func (f *fakeTaskRepo) ListTaskCategories(ctx context.Context, taskID string) ([]model.TaskCategory, error) {
	return nil, nil
}

// fakeContextRepo is an in-memory context-entry store.
type fakeContextRepo struct {
	entries map[string]model.ContextEntry
	recent  []model.ContextEntry
}

func newFakeContextRepo(entries ...model.ContextEntry) *fakeContextRepo {
	f := &fakeContextRepo{entries: map[string]model.ContextEntry{}}
	for _, e := range entries {
		f.entries[e.ID] = e
		f.recent = append(f.recent, e)
	}
	return f
}

func (f *fakeContextRepo) CreateEntry(ctx context.Context, opt contextRepo.CreateEntryOptions) (model.ContextEntry, error) {
	return model.ContextEntry{}, nil
}

func (f *fakeContextRepo) GetOneEntry(ctx context.Context, opt contextRepo.GetOneEntryOptions) (model.ContextEntry, error) {
	e, ok := f.entries[opt.ID]
	if !ok || (opt.UserID != "" && e.UserID != opt.UserID) {
		return model.ContextEntry{}, nil
	}
	return e, nil
}

func (f *fakeContextRepo) ListEntries(ctx context.Context, opt contextRepo.ListEntriesOptions) ([]model.ContextEntry, int, error) {
	return nil, 0, nil
}

func (f *fakeContextRepo) ListRecentEntries(ctx context.Context, userID string, limit int) ([]model.ContextEntry, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeContextRepo) UpdateEntryAnalysis(ctx context.Context, opt contextRepo.UpdateEntryAnalysisOptions) (model.ContextEntry, error) {
	e, ok := f.entries[opt.ID]
	if !ok || e.UserID != opt.UserID {
		return model.ContextEntry{}, nil
	}
	e.ImportanceScore = opt.ImportanceScore
	e.Sentiment = opt.Sentiment
	e.Summary = opt.Summary
	e.Keywords = opt.Keywords
	e.ExtractedTasks = opt.ExtractedTasks
	e.ExtractedDeadlines = opt.ExtractedDeadlines
	e.ExtractedPeople = opt.ExtractedPeople
	f.entries[opt.ID] = e
	return e, nil
}

func (f *fakeContextRepo) DeleteEntry(ctx context.Context, id, userID string) error {
	delete(f.entries, id)
	return nil
}

// fakeRecRepo is an in-memory recommendation store.
type fakeRecRepo struct {
	recs   []model.TaskRecommendation
	nextID int
}

func (f *fakeRecRepo) ReplaceUnacted(ctx context.Context, userID string, opts []recRepo.CreateRecommendationOptions) ([]model.TaskRecommendation, error) {
	var kept []model.TaskRecommendation
	for _, r := range f.recs {
		if r.UserID != userID || r.IsAccepted || r.IsDismissed {
			kept = append(kept, r)
		}
	}
	f.recs = kept

	var created []model.TaskRecommendation
	for _, opt := range opts {
		f.nextID++
		rec := model.TaskRecommendation{
			ID:                  "rec-" + strconv.Itoa(f.nextID),
			UserID:              opt.UserID,
			Title:               opt.Title,
			Description:         opt.Description,
			SuggestedPriority:   opt.SuggestedPriority,
			Reasoning:           opt.Reasoning,
			ConfidenceScore:     opt.ConfidenceScore,
			BasedOnContext:      opt.BasedOnContext,
			SuggestedCategories: opt.SuggestedCategories,
		}
		f.recs = append(f.recs, rec)
		created = append(created, rec)
	}
	return created, nil
}

func (f *fakeRecRepo) GetOne(ctx context.Context, opt recRepo.GetOneOptions) (model.TaskRecommendation, error) {
	for _, r := range f.recs {
		if r.ID == opt.ID && r.UserID == opt.UserID {
			return r, nil
		}
	}
	return model.TaskRecommendation{}, nil
}

func (f *fakeRecRepo) List(ctx context.Context, opt recRepo.ListOptions) ([]model.TaskRecommendation, int, error) {
	return f.recs, len(f.recs), nil
}

func (f *fakeRecRepo) MarkAccepted(ctx context.Context, id, userID, taskID string) (model.TaskRecommendation, error) {
	return model.TaskRecommendation{}, nil
}

func (f *fakeRecRepo) MarkDismissed(ctx context.Context, id, userID string) (model.TaskRecommendation, error) {
	return model.TaskRecommendation{}, nil
}

// fakeSchedRepo is an in-memory suggestion store.
type fakeSchedRepo struct {
	suggestions []model.TimeBlockSuggestion
	nextID      int
}

func sameDay(a, b time.Time) bool {
	return a.UTC().Truncate(24*time.Hour) == b.UTC().Truncate(24*time.Hour)
}

func (f *fakeSchedRepo) ReplaceForDate(ctx context.Context, userID string, date time.Time, opts []schedRepo.CreateSuggestionOptions) ([]model.TimeBlockSuggestion, error) {
	var kept []model.TimeBlockSuggestion
	for _, s := range f.suggestions {
		if s.UserID != userID || !sameDay(s.SuggestedStartTime, date) {
			kept = append(kept, s)
		}
	}
	f.suggestions = kept

	var created []model.TimeBlockSuggestion
	for _, opt := range opts {
		f.nextID++
		s := model.TimeBlockSuggestion{
			ID:                 "sug-" + strconv.Itoa(f.nextID),
			UserID:             opt.UserID,
			TaskID:             opt.TaskID,
			SuggestedStartTime: opt.SuggestedStartTime,
			SuggestedEndTime:   opt.SuggestedEndTime,
			Reasoning:          opt.Reasoning,
		}
		f.suggestions = append(f.suggestions, s)
		created = append(created, s)
	}
	return created, nil
}

func (f *fakeSchedRepo) ListForDate(ctx context.Context, userID string, date time.Time) ([]model.TimeBlockSuggestion, error) {
	var out []model.TimeBlockSuggestion
	for _, s := range f.suggestions {
		if s.UserID == userID && sameDay(s.SuggestedStartTime, date) {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeCalendar returns canned events.
type fakeCalendar struct {
	events []gcalendar.Event
	err    error
	calls  int
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func newTestUseCase(tr *fakeTaskRepo, cr *fakeContextRepo, rr *fakeRecRepo, sr *fakeSchedRepo, r *stubReasoner, cal gcalendar.IGCalendar) *implUseCase {
	return New(&mockLogger{}, Config{WorkHours: "9am-6pm"}, r, tr, cr, rr, sr, cal)
}
