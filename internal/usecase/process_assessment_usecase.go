package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase/interfaces"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/pkg"
)

// CodeProcessingError is attached to failures that carry no code of their own.
const CodeProcessingError = "PROCESSING_ERROR"

// IProcessAssessmentUseCase is the background job run once per created
// assessment. It is dispatched by the worker pool and never awaited by the
// request that created the record.
type IProcessAssessmentUseCase interface {
	Run(ctx context.Context, assessmentID string)
}

type ProcessAssessmentUseCase struct {
	repo    interfaces.IAssessmentRepository
	gateway interfaces.IPredictionGateway
	tracker *StatusTracker
}

var _ IProcessAssessmentUseCase = (*ProcessAssessmentUseCase)(nil)

func NewProcessAssessmentUseCase(repo interfaces.IAssessmentRepository, gateway interfaces.IPredictionGateway, tracker *StatusTracker) *ProcessAssessmentUseCase {
	return &ProcessAssessmentUseCase{repo: repo, gateway: gateway, tracker: tracker}
}

// Run loads the record, acquires a soil prediction, derives the result
// payload and commits a terminal status. Every failure is contained here;
// the request that created the record has long since returned, so outcomes
// are observable only through the record itself.
func (u *ProcessAssessmentUseCase) Run(ctx context.Context, assessmentID string) {
	start := time.Now()
	log.Printf("[assessment][process] run start assessment_id=%s", assessmentID)

	a, err := u.repo.GetByID(ctx, assessmentID)
	if err != nil {
		// Nothing can be marked failed when the record cannot even be read.
		log.Printf("[assessment][process] load failed assessment_id=%s err=%v", assessmentID, err)
		return
	}
	if a.ID == "" {
		log.Printf("[assessment][process] record not found assessment_id=%s", assessmentID)
		return
	}
	if a.Status.IsTerminal() {
		log.Printf("[assessment][process] record already terminal assessment_id=%s status=%s", assessmentID, a.Status)
		return
	}

	prediction := u.gateway.PredictKsat(ctx, a.Location.Latitude, a.Location.Longitude)
	log.Printf("[assessment][process] prediction acquired assessment_id=%s ksat=%.2f source=%s", assessmentID, prediction.Value, prediction.Source)

	results, err := CalculateResults(a.Building, a.Environmental.AnnualRainfall, prediction)
	if err != nil {
		u.fail(ctx, assessmentID, err, &prediction, elapsedMs(start))
		return
	}

	if err := u.tracker.MarkCompleted(ctx, assessmentID, results, prediction, elapsedMs(start)); err != nil {
		u.fail(ctx, assessmentID, err, &prediction, elapsedMs(start))
		return
	}
	log.Printf("[assessment][process] run success assessment_id=%s duration_ms=%d", assessmentID, elapsedMs(start))
}

func (u *ProcessAssessmentUseCase) fail(ctx context.Context, assessmentID string, cause error, prediction *entities.Prediction, durationMs int64) {
	code := CodeProcessingError
	var appErr *pkg.AppError
	if errors.As(cause, &appErr) && appErr.Code != "" {
		code = appErr.Code
	}

	log.Printf("[assessment][process] run failed assessment_id=%s code=%s err=%v", assessmentID, code, cause)
	u.tracker.MarkFailed(ctx, assessmentID, entities.AssessmentError{
		Message:   cause.Error(),
		Code:      code,
		Timestamp: time.Now().UTC(),
	}, prediction, durationMs)
}

func elapsedMs(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
