package astro

import (
	"testing"
	"time"

	"astroeph-api/internal/domain"
)

func buildTestChart(id string, sunLon float64, ascLon float64) *domain.Chart {
	birth := domain.BirthInfo{Date: "2000-01-01", Time: "12:00", Location: domain.Location{Latitude: 40, Longitude: -70}}
	chart := domain.NewChart(id, domain.ChartTypeNatal, "test", birth, time.Now())
	chart.AddBody(domain.NewBodyState(domain.Sun, sunLon, 0, 10, 0, 1.0))
	chart.AddBody(domain.NewBodyState(domain.Moon, sunLon+40, 0, 10, 0, 12.0))
	for i := 1; i <= 12; i++ {
		chart.AddHouse(domain.NewHouse(i, float64(i-1)*30))
	}
	chart.SetAngles(ascLon, ascLon+270)
	return chart
}

func TestMidpointBodiesTakesShorterArc(t *testing.T) {
	cc := NewCompositeCalculator()
	a := []domain.BodyState{domain.NewBodyState(domain.Sun, 350, 0, 0, 0, 1)}
	b := []domain.BodyState{domain.NewBodyState(domain.Sun, 10, 0, 0, 0, 1)}
	mid := cc.MidpointBodies(a, b)
	if len(mid) != 1 {
		t.Fatalf("expected one midpoint body, got %d", len(mid))
	}
	if mid[0].Longitude != 0 {
		t.Errorf("MidpointBodies shorter-arc longitude = %v, want 0", mid[0].Longitude)
	}
}

func TestMidpointBodiesSkipsUnmatched(t *testing.T) {
	cc := NewCompositeCalculator()
	a := []domain.BodyState{domain.NewBodyState(domain.Sun, 10, 0, 0, 0, 1)}
	b := []domain.BodyState{domain.NewBodyState(domain.Moon, 50, 0, 0, 0, 12)}
	mid := cc.MidpointBodies(a, b)
	if len(mid) != 0 {
		t.Errorf("expected no matched bodies, got %d", len(mid))
	}
}

func TestMidpointLocationAverages(t *testing.T) {
	a := domain.Location{Latitude: 10, Longitude: 20, Timezone: "UTC"}
	b := domain.Location{Latitude: 30, Longitude: 40, Timezone: "UTC"}
	got := MidpointLocation(a, b)
	if got.Latitude != 20 || got.Longitude != 30 {
		t.Errorf("MidpointLocation = %+v, want lat=20 lon=30", got)
	}
}

func TestCompositeComputeIsSymmetric(t *testing.T) {
	cc := NewCompositeCalculator()
	chartA := buildTestChart("a", 10, 0)
	chartB := buildTestChart("b", 100, 90)

	composite1 := cc.Compute(chartA, chartB)
	composite2 := cc.Compute(chartB, chartA)

	sun1 := composite1.BodyByID(domain.Sun)
	sun2 := composite2.BodyByID(domain.Sun)
	if sun1 == nil || sun2 == nil {
		t.Fatal("expected a composite Sun in both orderings")
	}
	if sun1.Longitude != sun2.Longitude {
		t.Errorf("composite Sun longitude not symmetric: %v vs %v", sun1.Longitude, sun2.Longitude)
	}
}
