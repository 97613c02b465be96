package response

import (
	"testing"
	"time"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
)

func TestStatusFromAssessment(t *testing.T) {
	now := time.Now().UTC()

	t.Run("processing", func(t *testing.T) {
		got := StatusFromAssessment(entities.Assessment{
			ID:        "a-1",
			Status:    entities.AssessmentStatusProcessing,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if got.IsComplete || got.HasError {
			t.Fatalf("processing record flagged terminal: %+v", got)
		}
		if got.Score != nil {
			t.Fatalf("expected no score before completion")
		}
	})

	t.Run("completed carries the score", func(t *testing.T) {
		got := StatusFromAssessment(entities.Assessment{
			ID:      "a-1",
			Status:  entities.AssessmentStatusCompleted,
			Results: &entities.Results{Score: 72},
		})
		if !got.IsComplete || got.HasError {
			t.Fatalf("unexpected flags: %+v", got)
		}
		if got.Score == nil || *got.Score != 72 {
			t.Fatalf("expected score 72, got %v", got.Score)
		}
	})

	t.Run("failed carries the error", func(t *testing.T) {
		aerr := &entities.AssessmentError{Message: "boom", Code: "PROCESSING_ERROR", Timestamp: now}
		got := StatusFromAssessment(entities.Assessment{
			ID:     "a-1",
			Status: entities.AssessmentStatusFailed,
			Error:  aerr,
		})
		if got.IsComplete || !got.HasError {
			t.Fatalf("unexpected flags: %+v", got)
		}
		if got.Error == nil || got.Error.Code != "PROCESSING_ERROR" {
			t.Fatalf("expected error carried through, got %+v", got.Error)
		}
	})
}

func TestFromAssessment(t *testing.T) {
	a := entities.Assessment{
		ID:               "a-1",
		Building:         entities.BuildingDetails{RoofArea: 1500, RoofMaterial: "concrete"},
		Prediction:       &entities.Prediction{Value: 85, Confidence: 0.8, Source: "XGBoost"},
		Results:          &entities.Results{Score: 72},
		Status:           entities.AssessmentStatusCompleted,
		ProcessingTimeMs: 1200,
	}
	got := FromAssessment(a)
	if got.ID != "a-1" || got.Status != "completed" || got.ProcessingTimeMs != 1200 {
		t.Fatalf("unexpected mapping %+v", got)
	}
	if got.Prediction == nil || got.Prediction.Value != 85 {
		t.Fatalf("prediction not carried through")
	}
	if got.Results == nil || got.Results.Score != 72 {
		t.Fatalf("results not carried through")
	}
}

func TestAcceptedFromAssessment(t *testing.T) {
	now := time.Now().UTC()
	got := AcceptedFromAssessment(entities.Assessment{ID: "a-1", Status: entities.AssessmentStatusProcessing, CreatedAt: now})
	if got.ID != "a-1" || got.Status != "processing" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapping %+v", got)
	}
}
