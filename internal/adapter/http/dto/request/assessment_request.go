package request

import (
	"strings"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
)

type BuildingDetailsRequest struct {
	RoofArea       float64 `json:"roof_area" binding:"required,gt=0"`
	RoofSlope      float64 `json:"roof_slope" binding:"gte=0,lte=90"`
	RoofMaterial   string  `json:"roof_material"`
	BuildingHeight float64 `json:"building_height" binding:"gte=0"`
}

type LocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
	Address   string  `json:"address"`
}

type EnvironmentalRequest struct {
	AnnualRainfall float64 `json:"annual_rainfall" binding:"gte=0"`
}

// AssessmentRequest is the payload accepted by POST /v1/assessments.
// Annual rainfall is optional; when absent it is resolved from the address
// by the rainfall lookup.
type AssessmentRequest struct {
	Building      BuildingDetailsRequest `json:"building" binding:"required"`
	Location      LocationRequest        `json:"location" binding:"required"`
	Environmental EnvironmentalRequest   `json:"environmental"`
}

// ResolveMaterial normalizes the roof material. Unknown values are kept
// as-is; the calculation engine defaults their coefficients.
func (r AssessmentRequest) ResolveMaterial() string {
	return strings.ToLower(strings.TrimSpace(r.Building.RoofMaterial))
}

func (r AssessmentRequest) ToBuildingDetails() entities.BuildingDetails {
	return entities.BuildingDetails{
		RoofArea:       r.Building.RoofArea,
		RoofSlope:      r.Building.RoofSlope,
		RoofMaterial:   r.ResolveMaterial(),
		BuildingHeight: r.Building.BuildingHeight,
	}
}

func (r AssessmentRequest) ToLocation() entities.Location {
	return entities.Location{
		Latitude:  r.Location.Latitude,
		Longitude: r.Location.Longitude,
		Address:   strings.TrimSpace(r.Location.Address),
	}
}

func (r AssessmentRequest) ToEnvironmentalData() entities.EnvironmentalData {
	return entities.EnvironmentalData{AnnualRainfall: r.Environmental.AnnualRainfall}
}
