package queue

import "time"

// JobKind identifies which enrichment workflow a job triggers.
type JobKind string

const (
	// JobEnrichTask enriches one task. EntityID is the task id.
	JobEnrichTask JobKind = "enrich_task"

	// JobAnalyzeContext analyzes one context entry. EntityID is the entry id.
	JobAnalyzeContext JobKind = "analyze_context"

	// JobGenerateRecommendations regenerates recommendations for a user.
	// EntityID is empty; the job is scoped by UserID alone.
	JobGenerateRecommendations JobKind = "generate_recommendations"
)

// Job is one unit of background enrichment work. Delivery is
// at-least-once and unordered across entities; every handler must
// converge when run twice.
type Job struct {
	Kind       JobKind   `json:"kind"`
	EntityID   string    `json:"entity_id,omitempty"`
	UserID     string    `json:"user_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Key returns the partition key: jobs for the same entity stay ordered,
// jobs for different entities spread across partitions.
func (j Job) Key() string {
	if j.EntityID != "" {
		return j.EntityID
	}
	return j.UserID
}
