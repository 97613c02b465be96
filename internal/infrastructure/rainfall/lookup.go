package rainfall

import (
	"log"
	"strings"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase/interfaces"
)

// defaultAnnualRainfallMm is the country-wide average used when the address
// matches no known city.
const defaultAnnualRainfallMm = 1170

// cityAnnualRainfallMm holds long-term average annual rainfall per city, in
// millimeters. The table is matched against the free-text site address.
var cityAnnualRainfallMm = map[string]float64{
	"mumbai":     2200,
	"delhi":      790,
	"bengaluru":  980,
	"bangalore":  980,
	"hyderabad":  810,
	"chennai":    1400,
	"kolkata":    1580,
	"pune":       720,
	"ahmedabad":  800,
	"jaipur":     650,
	"lucknow":    1010,
	"bhopal":     1150,
	"patna":      1100,
	"kochi":      3000,
	"guwahati":   1720,
	"chandigarh": 1110,
	"nagpur":     1200,
	"surat":      1200,
	"indore":     960,
	"varanasi":   1060,
}

// Lookup resolves annual rainfall for a site from a static city table.
type Lookup struct{}

var _ interfaces.IRainfallProvider = (*Lookup)(nil)

func NewLookup() *Lookup {
	return &Lookup{}
}

// AnnualRainfall scans the address for a known city name and returns its
// average annual rainfall, falling back to the country-wide average.
func (l *Lookup) AnnualRainfall(address string) float64 {
	normalized := strings.ToLower(address)
	for city, mm := range cityAnnualRainfallMm {
		if strings.Contains(normalized, city) {
			return mm
		}
	}
	log.Printf("[rainfall][lookup] no city match address=%q; using country average", address)
	return defaultAnnualRainfallMm
}
