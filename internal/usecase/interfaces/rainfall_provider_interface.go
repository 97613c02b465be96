package interfaces

// IRainfallProvider resolves the average annual rainfall (mm) for a free-text
// site address. Implementations always resolve, falling back to a
// country-wide average when the address matches no known city.
type IRainfallProvider interface {
	AnnualRainfall(address string) float64
}
