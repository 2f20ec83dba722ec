package model

import "time"

// Context entry types.
type EntryType string

const (
	EntryTypeMessage  EntryType = "message"
	EntryTypeEmail    EntryType = "email"
	EntryTypeNote     EntryType = "note"
	EntryTypeMeeting  EntryType = "meeting"
	EntryTypeCall     EntryType = "call"
	EntryTypeDocument EntryType = "document"
)

// ValidEntryType reports whether t is a known entry type.
func ValidEntryType(t EntryType) bool {
	switch t {
	case EntryTypeMessage, EntryTypeEmail, EntryTypeNote, EntryTypeMeeting, EntryTypeCall, EntryTypeDocument:
		return true
	}
	return false
}

// DisplayName returns the human-readable label used in prompts.
func (t EntryType) DisplayName() string {
	switch t {
	case EntryTypeMessage:
		return "Message"
	case EntryTypeEmail:
		return "Email"
	case EntryTypeNote:
		return "Note"
	case EntryTypeMeeting:
		return "Meeting"
	case EntryTypeCall:
		return "Phone Call"
	case EntryTypeDocument:
		return "Document"
	}
	return string(t)
}

// Sentiment values produced by context analysis.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ValidSentiment reports whether s is a known sentiment.
func ValidSentiment(s Sentiment) bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// ContextEntry is a raw personal-context snippet (email, note, meeting
// minutes) plus the structured signals the analysis workflow extracted
// from it. Extracted fields are overwritten wholesale on each analysis
// run, never appended to.
type ContextEntry struct {
	ID        string
	UserID    string
	Content   string
	EntryType EntryType
	EntryDate time.Time
	Source    string

	ImportanceScore    float64
	Sentiment          Sentiment
	Summary            string
	Keywords           []string
	ExtractedTasks     []string
	ExtractedDeadlines []string
	ExtractedPeople    []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultImportanceScore is the neutral importance before (or without) analysis.
const DefaultImportanceScore = 0.5
