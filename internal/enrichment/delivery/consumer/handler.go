package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"smart-todo/internal/enrichment"
	"smart-todo/internal/enrichment/queue"
	"smart-todo/internal/model"
	"smart-todo/pkg/log"
)

// groupHandler implements sarama.ConsumerGroupHandler. Every message is
// marked regardless of outcome: the workflows already degrade to
// fallbacks internally, and a poisoned message must not wedge the
// partition.
type groupHandler struct {
	l  log.Logger
	uc enrichment.UseCase
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		h.handleMessage(session.Context(), msg)
		session.MarkMessage(msg, "")
	}
	return nil
}

func (h *groupHandler) handleMessage(ctx context.Context, msg *sarama.ConsumerMessage) {
	var job queue.Job
	if err := json.Unmarshal(msg.Value, &job); err != nil {
		h.l.Errorf(ctx, "consumer: undecodable job at %s/%d/%d: %v", msg.Topic, msg.Partition, msg.Offset, err)
		return
	}
	if job.UserID == "" {
		h.l.Errorf(ctx, "consumer: job %s without user id, skipping", job.Kind)
		return
	}

	sc := model.Scope{UserID: job.UserID}

	var err error
	switch job.Kind {
	case queue.JobEnrichTask:
		err = h.uc.ProcessTask(ctx, sc, job.EntityID)
	case queue.JobAnalyzeContext:
		err = h.uc.ProcessContextEntry(ctx, sc, job.EntityID)
	case queue.JobGenerateRecommendations:
		err = h.uc.GenerateRecommendations(ctx, sc)
	default:
		h.l.Warnf(ctx, "consumer: unknown job kind %q, skipping", job.Kind)
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "consumer: job %s for user %s failed: %v", job.Kind, job.UserID, err)
	}
}
