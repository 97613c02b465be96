package interfaces

import (
	"context"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
)

// IAssessmentRepository abstracts DynamoDB persistence for Assessment.
//
// Conventions (shared with the use cases):
//   - GetByID returns a zero-value Assessment and a nil error when the record
//     does not exist; the use case maps that to its not-found sentinel.
//   - MarkCompleted / MarkFailed are conditional: they only transition a
//     record that is still "processing". When the condition fails (record
//     missing or already terminal) they return a zero-value Assessment and a
//     nil error, which makes duplicate terminal writes harmless.
type IAssessmentRepository interface {
	Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error)
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
	MarkCompleted(ctx context.Context, id string, results entities.Results, prediction entities.Prediction, processingTimeMs int64) (entities.Assessment, error)
	MarkFailed(ctx context.Context, id string, aerr entities.AssessmentError, prediction *entities.Prediction, processingTimeMs int64) (entities.Assessment, error)
}
