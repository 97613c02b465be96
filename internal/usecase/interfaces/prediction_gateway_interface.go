package interfaces

import (
	"context"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
)

// IPredictionGateway calls the external soil-prediction service.
//
// PredictKsat never fails from the caller's point of view: transport errors,
// timeouts and malformed responses are logged by the gateway and absorbed
// into a fixed fallback prediction (source "fallback"). Prediction
// unavailability degrades result quality, it does not fail the job.
type IPredictionGateway interface {
	PredictKsat(ctx context.Context, latitude, longitude float64) entities.Prediction
}
