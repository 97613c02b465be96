package request

import "testing"

func TestAssessmentRequest_ResolveMaterial(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Concrete", "concrete"},
		{"  METAL  ", "metal"},
		{"tiles", "tiles"},
		{"", ""},
	}
	for _, tc := range cases {
		r := AssessmentRequest{Building: BuildingDetailsRequest{RoofMaterial: tc.in}}
		if got := r.ResolveMaterial(); got != tc.want {
			t.Fatalf("material %q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestAssessmentRequest_ToEntities(t *testing.T) {
	r := AssessmentRequest{
		Building: BuildingDetailsRequest{
			RoofArea:       1500,
			RoofSlope:      15,
			RoofMaterial:   " Concrete ",
			BuildingHeight: 10,
		},
		Location:      LocationRequest{Latitude: 19.07, Longitude: 72.87, Address: "  Mumbai  "},
		Environmental: EnvironmentalRequest{AnnualRainfall: 650},
	}

	b := r.ToBuildingDetails()
	if b.RoofArea != 1500 || b.RoofSlope != 15 || b.BuildingHeight != 10 {
		t.Fatalf("unexpected building mapping %+v", b)
	}
	if b.RoofMaterial != "concrete" {
		t.Fatalf("expected normalized material, got %q", b.RoofMaterial)
	}

	l := r.ToLocation()
	if l.Latitude != 19.07 || l.Longitude != 72.87 {
		t.Fatalf("unexpected location mapping %+v", l)
	}
	if l.Address != "Mumbai" {
		t.Fatalf("expected trimmed address, got %q", l.Address)
	}

	if e := r.ToEnvironmentalData(); e.AnnualRainfall != 650 {
		t.Fatalf("unexpected environmental mapping %+v", e)
	}
}
