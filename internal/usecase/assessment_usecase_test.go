package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
	mock_interfaces "github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssessmentUseCase_Create(t *testing.T) {
	building := entities.BuildingDetails{RoofArea: 1500, RoofMaterial: "concrete"}
	location := entities.Location{Latitude: 19.07, Longitude: 72.87, Address: "Mumbai"}
	environmental := entities.EnvironmentalData{AnnualRainfall: 650}

	t.Run("invalid roof area", func(t *testing.T) {
		uc := NewAssessmentUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.BuildingDetails{RoofArea: 0}, location, environmental)
		if !errors.Is(err, ErrInvalidRoofArea) {
			t.Fatalf("expected ErrInvalidRoofArea, got %v", err)
		}
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		uc := NewAssessmentUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), building, entities.Location{Latitude: 91}, environmental)
		if !errors.Is(err, ErrInvalidCoordinates) {
			t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
		}
	})

	t.Run("create success dispatches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		dispatcher := mock_interfaces.NewMockIAssessmentDispatcher(ctrl)
		uc := NewAssessmentUseCase(repo, dispatcher, nil, NewStatusTracker(repo))

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Assessment{})).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
				if a.ID == "" {
					t.Fatalf("expected generated id")
				}
				if a.Status != entities.AssessmentStatusProcessing {
					t.Fatalf("expected processing status, got %s", a.Status)
				}
				if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if a.Environmental.AnnualRainfall != 650 {
					t.Fatalf("expected caller rainfall kept, got %.1f", a.Environmental.AnnualRainfall)
				}
				return a, nil
			},
		)
		dispatcher.EXPECT().Submit(gomock.Any()).Return(nil)

		created, err := uc.Create(context.Background(), building, location, environmental)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected id on created assessment")
		}
	})

	t.Run("rainfall resolved from lookup when absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		dispatcher := mock_interfaces.NewMockIAssessmentDispatcher(ctrl)
		rainfall := mock_interfaces.NewMockIRainfallProvider(ctrl)
		uc := NewAssessmentUseCase(repo, dispatcher, rainfall, NewStatusTracker(repo))

		rainfall.EXPECT().AnnualRainfall("Mumbai").Return(2200.0)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Assessment{})).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) {
				if a.Environmental.AnnualRainfall != 2200 {
					t.Fatalf("expected lookup rainfall 2200, got %.1f", a.Environmental.AnnualRainfall)
				}
				return a, nil
			},
		)
		dispatcher.EXPECT().Submit(gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), building, location, entities.EnvironmentalData{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewAssessmentUseCase(repo, nil, nil, NewStatusTracker(repo))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Assessment{}, errors.New("dynamo down"))

		_, err := uc.Create(context.Background(), building, location, environmental)
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected dynamo error, got %v", err)
		}
	})

	t.Run("queue full fails the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		dispatcher := mock_interfaces.NewMockIAssessmentDispatcher(ctrl)
		uc := NewAssessmentUseCase(repo, dispatcher, nil, NewStatusTracker(repo))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Assessment) (entities.Assessment, error) { return a, nil },
		)
		dispatcher.EXPECT().Submit(gomock.Any()).Return(errors.New("assessment job queue full"))
		repo.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), gomock.Any(), nil, int64(0)).DoAndReturn(
			func(_ context.Context, id string, aerr entities.AssessmentError, _ *entities.Prediction, _ int64) (entities.Assessment, error) {
				if aerr.Code != "DISPATCH_REJECTED" {
					t.Fatalf("expected DISPATCH_REJECTED, got %s", aerr.Code)
				}
				return entities.Assessment{ID: id, Status: entities.AssessmentStatusFailed}, nil
			},
		)

		_, err := uc.Create(context.Background(), building, location, environmental)
		if !errors.Is(err, ErrDispatchRejected) {
			t.Fatalf("expected ErrDispatchRejected, got %v", err)
		}
	})
}

func TestAssessmentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewAssessmentUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidAssessmentID) {
			t.Fatalf("expected ErrInvalidAssessmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewAssessmentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Assessment{}, nil)

		_, err := uc.GetByID(context.Background(), "a-1")
		if !errors.Is(err, ErrAssessmentNotFound) {
			t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAssessmentRepository(ctrl)
		uc := NewAssessmentUseCase(repo, nil, nil, nil)

		want := entities.Assessment{ID: "a-1", Status: entities.AssessmentStatusCompleted}
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(want, nil)

		got, err := uc.GetByID(context.Background(), " a-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "a-1" {
			t.Fatalf("unexpected assessment: %+v", got)
		}
	})
}
