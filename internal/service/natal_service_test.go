package service

import (
	"testing"

	"astroeph-api/internal/domain"
)

func TestValidateNatalChartRequestValid(t *testing.T) {
	ns := &NatalService{}
	req := &NatalChartRequest{
		Day: 15, Month: 6, Year: 1990, LocalTime: "12:00:00",
		Location:    domain.Location{Latitude: 40, Longitude: -70, Timezone: "UTC"},
		HouseSystem: "Placidus",
	}
	if err := ns.ValidateNatalChartRequest(req); err != nil {
		t.Errorf("expected valid request, got error: %v", err)
	}
}

func TestValidateNatalChartRequestRejectsOutOfRangeFields(t *testing.T) {
	ns := &NatalService{}
	base := NatalChartRequest{
		Day: 15, Month: 6, Year: 1990, LocalTime: "12:00:00",
		Location: domain.Location{Latitude: 40, Longitude: -70, Timezone: "UTC"},
	}

	cases := []struct {
		name   string
		mutate func(*NatalChartRequest)
	}{
		{"day too high", func(r *NatalChartRequest) { r.Day = 32 }},
		{"day too low", func(r *NatalChartRequest) { r.Day = 0 }},
		{"month too high", func(r *NatalChartRequest) { r.Month = 13 }},
		{"year too early", func(r *NatalChartRequest) { r.Year = 1700 }},
		{"empty local time", func(r *NatalChartRequest) { r.LocalTime = "" }},
		{"invalid coordinates", func(r *NatalChartRequest) { r.Location.Latitude = 200 }},
		{"invalid house system", func(r *NatalChartRequest) { r.HouseSystem = "Equal" }},
	}

	for _, c := range cases {
		req := base
		c.mutate(&req)
		if err := ns.ValidateNatalChartRequest(&req); err == nil {
			t.Errorf("%s: expected validation error, got nil", c.name)
		}
	}
}

func TestGetSupportedHouseSystemsIncludesAllThree(t *testing.T) {
	ns := &NatalService{}
	systems := ns.GetSupportedHouseSystems()
	want := map[string]bool{"Placidus": false, "Koch": false, "Whole Sign": false}
	for _, s := range systems {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("expected supported house systems to include %q", name)
		}
	}
}
