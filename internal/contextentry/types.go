package contextentry

import (
	"time"

	"smart-todo/internal/model"
)

// --- UseCase Inputs ---

type CreateEntryInput struct {
	Content   string
	EntryType model.EntryType
	EntryDate *time.Time // nil means now
	Source    string
}

type ListEntriesInput struct {
	EntryType model.EntryType
	DateFrom  *time.Time
	DateTo    *time.Time
	Search    string
	Limit     int
	Offset    int
}

// --- UseCase Outputs ---

type CreateEntryOutput struct {
	Entry model.ContextEntry
}

type ListEntriesOutput struct {
	Entries []model.ContextEntry
	Total   int
	Limit   int
	Offset  int
}

type DetailEntryOutput struct {
	Entry model.ContextEntry
}
