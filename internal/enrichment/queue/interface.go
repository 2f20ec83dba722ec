package queue

import "context"

// Enqueuer submits enrichment jobs for later background execution.
// Callers enqueue only after the entity write has committed, so a job
// never references a row that was never stored.
type Enqueuer interface {
	Enqueue(ctx context.Context, job Job) error
}
