package http

import (
	"time"

	"smart-todo/internal/contextentry"
	"smart-todo/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Content   string     `json:"content"    binding:"required,min=1,max=10000"`
	EntryType string     `json:"entry_type" binding:"required"`
	EntryDate *time.Time `json:"entry_date"`
	Source    string     `json:"source"     binding:"max=255"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() contextentry.CreateEntryInput {
	return contextentry.CreateEntryInput{
		Content:   r.Content,
		EntryType: model.EntryType(r.EntryType),
		EntryDate: r.EntryDate,
		Source:    r.Source,
	}
}

// ---

type listReq struct {
	EntryType string     `form:"entry_type"`
	DateFrom  *time.Time `form:"date_from" time_format:"2006-01-02T15:04:05Z07:00"`
	DateTo    *time.Time `form:"date_to"   time_format:"2006-01-02T15:04:05Z07:00"`
	Search    string     `form:"search"`
	Limit     int        `form:"limit"`
	Offset    int        `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() contextentry.ListEntriesInput {
	return contextentry.ListEntriesInput{
		EntryType: model.EntryType(r.EntryType),
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
		Search:    r.Search,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// --- Response DTOs ---

type entryResp struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	EntryType string    `json:"entry_type"`
	EntryDate time.Time `json:"entry_date"`
	Source    string    `json:"source,omitempty"`

	ImportanceScore    float64  `json:"importance_score"`
	Sentiment          string   `json:"sentiment,omitempty"`
	Summary            string   `json:"summary,omitempty"`
	Keywords           []string `json:"keywords"`
	ExtractedTasks     []string `json:"extracted_tasks"`
	ExtractedDeadlines []string `json:"extracted_deadlines"`
	ExtractedPeople    []string `json:"extracted_people"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newEntryResp(e model.ContextEntry) entryResp {
	resp := entryResp{
		ID:                 e.ID,
		Content:            e.Content,
		EntryType:          string(e.EntryType),
		EntryDate:          e.EntryDate,
		Source:             e.Source,
		ImportanceScore:    e.ImportanceScore,
		Sentiment:          string(e.Sentiment),
		Summary:            e.Summary,
		Keywords:           e.Keywords,
		ExtractedTasks:     e.ExtractedTasks,
		ExtractedDeadlines: e.ExtractedDeadlines,
		ExtractedPeople:    e.ExtractedPeople,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
	if resp.Keywords == nil {
		resp.Keywords = []string{}
	}
	if resp.ExtractedTasks == nil {
		resp.ExtractedTasks = []string{}
	}
	if resp.ExtractedDeadlines == nil {
		resp.ExtractedDeadlines = []string{}
	}
	if resp.ExtractedPeople == nil {
		resp.ExtractedPeople = []string{}
	}
	return resp
}

type createResp struct {
	Entry entryResp `json:"entry"`
}

func (h *handler) newCreateResp(out contextentry.CreateEntryOutput) createResp {
	return createResp{Entry: newEntryResp(out.Entry)}
}

type listResp struct {
	Entries []entryResp `json:"entries"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
}

func (h *handler) newListResp(out contextentry.ListEntriesOutput) listResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = newEntryResp(e)
	}
	return listResp{
		Entries: entries,
		Total:   out.Total,
		Limit:   out.Limit,
		Offset:  out.Offset,
	}
}

type detailResp struct {
	Entry entryResp `json:"entry"`
}

func (h *handler) newDetailResp(out contextentry.DetailEntryOutput) detailResp {
	return detailResp{Entry: newEntryResp(out.Entry)}
}
