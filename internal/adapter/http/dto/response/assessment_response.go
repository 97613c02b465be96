package response

import (
	"time"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
)

// AssessmentAcceptedResponse is returned by POST /v1/assessments: the record
// was created and queued, the outcome arrives via polling.
type AssessmentAcceptedResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func AcceptedFromAssessment(a entities.Assessment) AssessmentAcceptedResponse {
	return AssessmentAcceptedResponse{
		ID:        a.ID,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}

// AssessmentResponse is the full record view.
type AssessmentResponse struct {
	ID               string                     `json:"id"`
	Building         entities.BuildingDetails   `json:"building"`
	Location         entities.Location          `json:"location"`
	Environmental    entities.EnvironmentalData `json:"environmental"`
	Prediction       *entities.Prediction       `json:"prediction,omitempty"`
	Results          *entities.Results          `json:"results,omitempty"`
	Status           string                     `json:"status"`
	Error            *entities.AssessmentError  `json:"error,omitempty"`
	ProcessingTimeMs int64                      `json:"processing_time_ms,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

func FromAssessment(a entities.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:               a.ID,
		Building:         a.Building,
		Location:         a.Location,
		Environmental:    a.Environmental,
		Prediction:       a.Prediction,
		Results:          a.Results,
		Status:           string(a.Status),
		Error:            a.Error,
		ProcessingTimeMs: a.ProcessingTimeMs,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// AssessmentStatusResponse is the lightweight polling surface.
type AssessmentStatusResponse struct {
	ID         string                    `json:"id"`
	Status     string                    `json:"status"`
	Error      *entities.AssessmentError `json:"error,omitempty"`
	Score      *int                      `json:"score,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
	IsComplete bool                      `json:"is_complete"`
	HasError   bool                      `json:"has_error"`
}

func StatusFromAssessment(a entities.Assessment) AssessmentStatusResponse {
	resp := AssessmentStatusResponse{
		ID:         a.ID,
		Status:     string(a.Status),
		Error:      a.Error,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		IsComplete: a.Status == entities.AssessmentStatusCompleted,
		HasError:   a.Status == entities.AssessmentStatusFailed,
	}
	if a.Results != nil {
		score := a.Results.Score
		resp.Score = &score
	}
	return resp
}
