package usecase

import (
	"errors"
	"math"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
)

var (
	ErrNoHarvestableVolume = errors.New("no harvestable volume for given inputs")
)

const (
	sqftToSqm = 0.092903

	tankSizingFactor = 0.10
	tankMinLiters    = 5000
	tankMaxLiters    = 50000

	tankCostPerLiter = 15
	costPerSqftRoof  = 10

	waterPricePerLiter = 0.02
	carbonKgPerLiter   = 0.002

	recommendedFilter = "First-flush diverter with sand-charcoal filter"
)

// runoffCoefficients maps roof material to the fraction of rainfall that
// becomes collectible runoff. Unknown materials fall back to the "other"
// coefficient.
var runoffCoefficients = map[string]float64{
	"metal":    0.95,
	"concrete": 0.90,
	"tiles":    0.85,
	"asphalt":  0.80,
	"other":    0.75,
}

const defaultRunoffCoefficient = 0.75

// materialScores is the material contribution to the composite score.
var materialScores = map[string]float64{
	"metal":    20,
	"concrete": 18,
	"tiles":    15,
	"asphalt":  12,
	"other":    10,
}

const defaultMaterialScore = 10.0

// monsoonWeights is the seasonal share of annual rainfall per month
// (Jan..Dec), monsoon-heavy. The weights sum to exactly 1.00.
var monsoonWeights = [12]float64{0.02, 0.03, 0.05, 0.08, 0.25, 0.35, 0.15, 0.05, 0.01, 0.01, 0.00, 0.00}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// rechargeRecommendations is attached to every infiltration analysis.
var rechargeRecommendations = []string{
	"Install a recharge pit near the main roof downpipe",
	"Fit a first-flush diverter ahead of the storage tank",
	"Desilt recharge structures before the monsoon season",
	"Route tank overflow into a percolation trench",
}

// RunoffCoefficient resolves the runoff coefficient for a roof material.
func RunoffCoefficient(material string) float64 {
	if c, ok := runoffCoefficients[material]; ok {
		return c
	}
	return defaultRunoffCoefficient
}

// AnnualHarvestLiters converts roof area (sqft) and rainfall (mm) into the
// annual collectible volume in liters, rounded to the nearest liter.
func AnnualHarvestLiters(roofAreaSqft, rainfallMm float64, material string) int64 {
	areaM2 := roofAreaSqft * sqftToSqm
	return int64(math.Round(areaM2 * rainfallMm * RunoffCoefficient(material)))
}

// CalculateHarvestingPotential builds the yield section, including the
// month-by-month breakdown.
//
// PeakMonthly deliberately stays the historical 1.5x-average heuristic rather
// than max(Monthly); consumers of the reference output depend on it.
func CalculateHarvestingPotential(building entities.BuildingDetails, rainfallMm float64) entities.HarvestingPotential {
	annual := AnnualHarvestLiters(building.RoofArea, rainfallMm, building.RoofMaterial)
	average := int64(math.Round(float64(annual) / 12))

	monthly := make([]entities.MonthlyVolume, 0, 12)
	for i, w := range monsoonWeights {
		monthly = append(monthly, entities.MonthlyVolume{
			Month:      monthNames[i],
			Liters:     int64(math.Round(float64(annual) * w)),
			Efficiency: math.Round(w*100*10) / 10,
		})
	}

	return entities.HarvestingPotential{
		AnnualLiters:   annual,
		AverageMonthly: average,
		PeakMonthly:    int64(math.Round(float64(average) * 1.5)),
		Monthly:        monthly,
	}
}

// CalculateSystemRecommendation sizes tank, piping and filtration for the
// estimated yield. Returns ErrNoHarvestableVolume when the annual yield is
// zero, since the payback period is undefined there.
func CalculateSystemRecommendation(building entities.BuildingDetails, annualLiters int64) (entities.SystemRecommendation, error) {
	if annualLiters <= 0 {
		return entities.SystemRecommendation{}, ErrNoHarvestableVolume
	}

	tank := int64(math.Round(clamp(float64(annualLiters)*tankSizingFactor, tankMinLiters, tankMaxLiters)))

	pipe := "4 inch"
	if building.RoofArea > 2000 {
		pipe = "6 inch"
	}

	cost := float64(tank)*tankCostPerLiter + building.RoofArea*costPerSqftRoof
	payback := int64(math.Round(cost / (float64(annualLiters) * waterPricePerLiter)))

	return entities.SystemRecommendation{
		TankSizeLiters: tank,
		PipeSize:       pipe,
		FilterType:     recommendedFilter,
		EstimatedCost:  cost,
		PaybackMonths:  payback,
	}, nil
}

// ClassifyInfiltration bands a Ksat value (mm/hr) into a category and
// recharge suitability.
func ClassifyInfiltration(ksat float64) entities.InfiltrationAnalysis {
	var category, suitability string
	switch {
	case ksat > 100:
		category, suitability = "High", "Excellent for recharge"
	case ksat > 50:
		category, suitability = "Moderate", "Good for recharge"
	case ksat > 20:
		category, suitability = "Low", "Fair for recharge"
	default:
		category, suitability = "Very Low", "Poor for recharge"
	}

	return entities.InfiltrationAnalysis{
		Rate:            ksat,
		Category:        category,
		Suitability:     suitability,
		Recommendations: rechargeRecommendations,
	}
}

// CalculateEnvironmentalImpact derives savings from the annual yield.
func CalculateEnvironmentalImpact(annualLiters int64) entities.EnvironmentalImpact {
	saved := float64(annualLiters)
	return entities.EnvironmentalImpact{
		WaterSavedLiters:  annualLiters,
		CarbonReductionKg: math.Round(saved*carbonKgPerLiter*100) / 100,
		CostSavings:       math.Round(saved * waterPricePerLiter),
	}
}

// CalculateScore combines roof, rainfall, material and infiltration factors
// into a 0..100 suitability score.
func CalculateScore(building entities.BuildingDetails, rainfallMm, ksat float64) int {
	roofFactor := math.Min(building.RoofArea/2000*25, 25)
	rainFactor := math.Min(rainfallMm/1500*25, 25)

	materialFactor := defaultMaterialScore
	if s, ok := materialScores[building.RoofMaterial]; ok {
		materialFactor = s
	}

	infiltrationFactor := math.Min(ksat/150*30, 30)

	score := int(math.Round(roofFactor + rainFactor + materialFactor + infiltrationFactor))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// CalculateResults runs every stage and assembles the final payload.
func CalculateResults(building entities.BuildingDetails, rainfallMm float64, prediction entities.Prediction) (entities.Results, error) {
	harvesting := CalculateHarvestingPotential(building, rainfallMm)

	recommendation, err := CalculateSystemRecommendation(building, harvesting.AnnualLiters)
	if err != nil {
		return entities.Results{}, err
	}

	return entities.Results{
		Harvesting:     harvesting,
		Recommendation: recommendation,
		Infiltration:   ClassifyInfiltration(prediction.Value),
		Impact:         CalculateEnvironmentalImpact(harvesting.AnnualLiters),
		Score:          CalculateScore(building, rainfallMm, prediction.Value),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
