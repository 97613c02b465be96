package entities

import "time"

// AssessmentStatus represents the lifecycle of a rooftop assessment.
//
// Domain notes:
//   - Records are created already in "processing"; "pending" is reserved for a
//     future queued-but-not-dispatched phase and is never assigned today.
//   - "completed" and "failed" are terminal. A record never re-enters
//     "processing"; the repository enforces this with a conditional write.
type AssessmentStatus string

const (
	AssessmentStatusPending    AssessmentStatus = "pending"
	AssessmentStatusProcessing AssessmentStatus = "processing"
	AssessmentStatusCompleted  AssessmentStatus = "completed"
	AssessmentStatusFailed     AssessmentStatus = "failed"
)

// IsTerminal reports whether no further status transition is allowed.
func (s AssessmentStatus) IsTerminal() bool {
	return s == AssessmentStatusCompleted || s == AssessmentStatusFailed
}

// BuildingDetails describes the rooftop being assessed.
type BuildingDetails struct {
	RoofArea       float64 `json:"roof_area"`       // square feet
	RoofSlope      float64 `json:"roof_slope"`      // degrees
	RoofMaterial   string  `json:"roof_material"`   // metal | concrete | tiles | asphalt | other
	BuildingHeight float64 `json:"building_height"` // meters
}

// Location is the site position used for the soil prediction.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// EnvironmentalData carries site environment inputs.
type EnvironmentalData struct {
	AnnualRainfall float64 `json:"annual_rainfall"` // mm
}

// Prediction is the soil infiltration estimate attached by the processing
// pipeline. Source is either the ML model identifier or "fallback" when the
// prediction service was unavailable.
type Prediction struct {
	Value          float64            `json:"value"` // Ksat, mm/hr
	Confidence     float64            `json:"confidence"`
	Source         string             `json:"source"`
	SoilProperties map[string]float64 `json:"soil_properties,omitempty"`
}

// PredictionSourceFallback marks predictions synthesized locally when the ML
// service could not be reached.
const PredictionSourceFallback = "fallback"

// MonthlyVolume is one month of the harvesting breakdown.
type MonthlyVolume struct {
	Month      string  `json:"month"`
	Liters     int64   `json:"liters"`
	Efficiency float64 `json:"efficiency"` // share of annual yield, percent
}

// HarvestingPotential is the rainwater yield estimate.
//
// PeakMonthly is a heuristic ceiling (1.5x the monthly average), not the
// maximum of Monthly. Callers must not assume they agree.
type HarvestingPotential struct {
	AnnualLiters   int64           `json:"annual_liters"`
	AverageMonthly int64           `json:"average_monthly"`
	PeakMonthly    int64           `json:"peak_monthly"`
	Monthly        []MonthlyVolume `json:"monthly"`
}

// SystemRecommendation sizes the catchment system.
type SystemRecommendation struct {
	TankSizeLiters int64   `json:"tank_size_liters"`
	PipeSize       string  `json:"pipe_size"`
	FilterType     string  `json:"filter_type"`
	EstimatedCost  float64 `json:"estimated_cost"`
	PaybackMonths  int64   `json:"payback_months"`
}

// InfiltrationAnalysis classifies the predicted Ksat value.
type InfiltrationAnalysis struct {
	Rate            float64  `json:"rate"` // mm/hr
	Category        string   `json:"category"`
	Suitability     string   `json:"suitability"`
	Recommendations []string `json:"recommendations"`
}

// EnvironmentalImpact estimates the savings from harvesting.
type EnvironmentalImpact struct {
	WaterSavedLiters  int64   `json:"water_saved_liters"`
	CarbonReductionKg float64 `json:"carbon_reduction_kg"`
	CostSavings       float64 `json:"cost_savings"`
}

// Results is the full derived payload, present only on completed assessments.
type Results struct {
	Harvesting     HarvestingPotential  `json:"harvesting_potential"`
	Recommendation SystemRecommendation `json:"system_recommendation"`
	Infiltration   InfiltrationAnalysis `json:"infiltration_analysis"`
	Impact         EnvironmentalImpact  `json:"environmental_impact"`
	Score          int                  `json:"score"` // 0..100
}

// AssessmentError captures why a run failed, present only on failed assessments.
type AssessmentError struct {
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

// Assessment is the unit of work and of persistence.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The record is written twice per lifecycle: once at creation (processing)
// and once by the background run (completed or failed).
type Assessment struct {
	ID               string            `json:"id"`
	Building         BuildingDetails   `json:"building"`
	Location         Location          `json:"location"`
	Environmental    EnvironmentalData `json:"environmental"`
	Prediction       *Prediction       `json:"prediction,omitempty"`
	Results          *Results          `json:"results,omitempty"`
	Status           AssessmentStatus  `json:"status"`
	Error            *AssessmentError  `json:"error,omitempty"`
	ProcessingTimeMs int64             `json:"processing_time_ms,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
