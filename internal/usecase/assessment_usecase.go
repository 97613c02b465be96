package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrInvalidAssessmentID = errors.New("invalid assessment id")
	ErrInvalidRoofArea     = errors.New("invalid roof area")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
	ErrDispatchRejected    = errors.New("assessment dispatch rejected, queue full")
)

// IAssessmentUseCase exposes the assessment lifecycle to the HTTP adapter.
//
//   - Create persists a new record in "processing" and hands it to the
//     background pool; the caller gets the record back immediately and polls
//     for the outcome.
//   - GetByID serves both the full-record and the status-polling endpoints.
type IAssessmentUseCase interface {
	Create(ctx context.Context, building entities.BuildingDetails, location entities.Location, environmental entities.EnvironmentalData) (entities.Assessment, error)
	GetByID(ctx context.Context, id string) (entities.Assessment, error)
}

type AssessmentUseCase struct {
	repo       interfaces.IAssessmentRepository
	dispatcher interfaces.IAssessmentDispatcher
	rainfall   interfaces.IRainfallProvider
	tracker    *StatusTracker
}

var _ IAssessmentUseCase = (*AssessmentUseCase)(nil)

func NewAssessmentUseCase(repo interfaces.IAssessmentRepository, dispatcher interfaces.IAssessmentDispatcher, rainfall interfaces.IRainfallProvider, tracker *StatusTracker) *AssessmentUseCase {
	return &AssessmentUseCase{repo: repo, dispatcher: dispatcher, rainfall: rainfall, tracker: tracker}
}

func (u *AssessmentUseCase) Create(ctx context.Context, building entities.BuildingDetails, location entities.Location, environmental entities.EnvironmentalData) (entities.Assessment, error) {
	if building.RoofArea <= 0 {
		return entities.Assessment{}, ErrInvalidRoofArea
	}
	if location.Latitude < -90 || location.Latitude > 90 || location.Longitude < -180 || location.Longitude > 180 {
		return entities.Assessment{}, ErrInvalidCoordinates
	}

	if environmental.AnnualRainfall <= 0 && u.rainfall != nil {
		environmental.AnnualRainfall = u.rainfall.AnnualRainfall(location.Address)
		log.Printf("[assessment][usecase] rainfall resolved from lookup address=%q rainfall_mm=%.1f", location.Address, environmental.AnnualRainfall)
	}

	now := time.Now().UTC()
	a := entities.Assessment{
		ID:            uuid.NewString(),
		Building:      building,
		Location:      location,
		Environmental: environmental,
		Status:        entities.AssessmentStatusProcessing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[assessment][usecase] create failed err=%v", err)
		return entities.Assessment{}, err
	}
	log.Printf("[assessment][usecase] created assessment_id=%s roof_area=%.1f material=%s", created.ID, building.RoofArea, building.RoofMaterial)

	if err := u.dispatcher.Submit(created.ID); err != nil {
		// The record would otherwise sit in "processing" forever; surface the
		// shed load as a failed assessment.
		log.Printf("[assessment][usecase] dispatch rejected assessment_id=%s err=%v", created.ID, err)
		u.tracker.MarkFailed(ctx, created.ID, entities.AssessmentError{
			Message:   "assessment could not be queued for processing",
			Code:      "DISPATCH_REJECTED",
			Timestamp: time.Now().UTC(),
		}, nil, 0)
		return entities.Assessment{}, ErrDispatchRejected
	}

	return created, nil
}

func (u *AssessmentUseCase) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assessment{}, ErrInvalidAssessmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Assessment{}, err
	}
	if a.ID == "" {
		return entities.Assessment{}, ErrAssessmentNotFound
	}
	return a, nil
}
