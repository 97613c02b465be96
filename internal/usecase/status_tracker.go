package usecase

import (
	"context"
	"log"
	"time"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase/interfaces"
)

const (
	failedWriteAttempts = 3
	failedWriteBackoff  = 250 * time.Millisecond
)

// StatusTracker owns the terminal transitions of the assessment state
// machine. Both writes are conditional on the record still being
// "processing", so a duplicate run loses the race cleanly instead of
// overwriting a terminal record.
type StatusTracker struct {
	repo interfaces.IAssessmentRepository
}

func NewStatusTracker(repo interfaces.IAssessmentRepository) *StatusTracker {
	return &StatusTracker{repo: repo}
}

// MarkCompleted commits the happy-path outcome. A store failure is returned
// to the caller; a lost race against another terminal write is logged and
// dropped.
func (t *StatusTracker) MarkCompleted(ctx context.Context, id string, results entities.Results, prediction entities.Prediction, processingTimeMs int64) error {
	updated, err := t.repo.MarkCompleted(ctx, id, results, prediction, processingTimeMs)
	if err != nil {
		log.Printf("[assessment][tracker] completed write failed assessment_id=%s err=%v", id, err)
		return err
	}
	if updated.ID == "" {
		log.Printf("[assessment][tracker] completed write skipped, record no longer processing assessment_id=%s", id)
		return nil
	}
	log.Printf("[assessment][tracker] completed assessment_id=%s score=%d duration_ms=%d", id, results.Score, processingTimeMs)
	return nil
}

// MarkFailed commits the failure outcome. This is the last chance to make
// the outcome observable, so the write is retried a few times with backoff;
// if every attempt fails the error is logged and swallowed and the record is
// left as-is (known best-effort limitation).
func (t *StatusTracker) MarkFailed(ctx context.Context, id string, aerr entities.AssessmentError, prediction *entities.Prediction, processingTimeMs int64) {
	backoff := failedWriteBackoff
	for attempt := 1; attempt <= failedWriteAttempts; attempt++ {
		updated, err := t.repo.MarkFailed(ctx, id, aerr, prediction, processingTimeMs)
		if err == nil {
			if updated.ID == "" {
				log.Printf("[assessment][tracker] failed write skipped, record no longer processing assessment_id=%s", id)
			} else {
				log.Printf("[assessment][tracker] failed assessment_id=%s code=%s msg=%q", id, aerr.Code, aerr.Message)
			}
			return
		}

		log.Printf("[assessment][tracker] failed write attempt error assessment_id=%s attempt=%d err=%v", id, attempt, err)
		if attempt < failedWriteAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	log.Printf("[assessment][tracker] giving up on failed write assessment_id=%s code=%s", id, aerr.Code)
}
