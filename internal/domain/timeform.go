package domain

import "time"

// TransitReport is a transit-to-natal aspect snapshot.
type TransitReport struct {
	NatalChartID   string      `json:"natal_chart_id"`
	TransitInstant time.Time   `json:"transit_instant"`
	TransitBodies  []BodyState `json:"transit_bodies"`
	Aspects        []Aspect    `json:"aspects"`
}

// ProgressionReport is a secondary-progressions snapshot.
type ProgressionReport struct {
	NatalChartID      string      `json:"natal_chart_id"`
	ProgressedInstant time.Time   `json:"progressed_instant"`
	ProgressedBodies  []BodyState `json:"progressed_bodies"`
	Aspects           []Aspect    `json:"aspects"`
}

// SolarReturnReport is the result of a solar-return root-find.
type SolarReturnReport struct {
	NatalChartID string    `json:"natal_chart_id"`
	Year         int       `json:"year"`
	ReturnInstant time.Time `json:"return_instant"`
	Chart        *Chart    `json:"chart"`
	Estimated    bool      `json:"estimated"`
}

// LunarReturnReport is the result of a lunar-return root-find.
type LunarReturnReport struct {
	NatalChartID     string    `json:"natal_chart_id"`
	ReferenceInstant time.Time `json:"reference_instant"`
	ReturnInstant    time.Time `json:"return_instant"`
	Chart            *Chart    `json:"chart"`
	Estimated        bool      `json:"estimated"`
}
