package rainfall

import "testing"

func TestLookup_AnnualRainfall(t *testing.T) {
	l := NewLookup()

	cases := []struct {
		address string
		want    float64
	}{
		{"123 Marine Drive, Mumbai, Maharashtra", 2200},
		{"MUMBAI", 2200},
		{"Electronic City, Bangalore", 980},
		{"Fort Kochi", 3000},
		{"Somewhere in the countryside", defaultAnnualRainfallMm},
		{"", defaultAnnualRainfallMm},
	}
	for _, tc := range cases {
		if got := l.AnnualRainfall(tc.address); got != tc.want {
			t.Fatalf("address %q: expected %.0f mm, got %.0f", tc.address, tc.want, got)
		}
	}
}

func TestCityTableIsPlausible(t *testing.T) {
	for city, mm := range cityAnnualRainfallMm {
		if mm < 100 || mm > 5000 {
			t.Fatalf("city %s has implausible rainfall %.0f mm", city, mm)
		}
	}
}
