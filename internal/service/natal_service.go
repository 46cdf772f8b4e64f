package service

import (
	"fmt"

	"astroeph-api/internal/astro"
	"astroeph-api/internal/corerr"
	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"
	"astroeph-api/internal/storage"

	"github.com/google/uuid"
)

// NatalService handles natal chart generation and persistence.
type NatalService struct {
	facade *astro.ChartFacade
	store  *storage.ChartStore
	logger *logging.Logger
}

// NewNatalService creates a new natal chart service.
func NewNatalService(facade *astro.ChartFacade, store *storage.ChartStore, logger *logging.Logger) *NatalService {
	return &NatalService{facade: facade, store: store, logger: logger}
}

// NatalChartRequest represents a request for natal chart calculation. The
// core never geocodes a place name: callers supply coordinates and a known
// IANA timezone directly.
type NatalChartRequest struct {
	Day                int             `json:"day" binding:"required,min=1,max=31"`
	Month              int             `json:"month" binding:"required,min=1,max=12"`
	Year               int             `json:"year" binding:"required"`
	LocalTime          string          `json:"local_time" binding:"required"` // HH:MM:SS
	Name               string          `json:"name,omitempty"`
	Location           domain.Location `json:"location" binding:"required"`
	HouseSystem        string          `json:"house_system,omitempty"` // defaults to "Placidus"
	IncludeMinorAspects bool           `json:"include_minor_aspects,omitempty"`
	IncludeDeclination bool            `json:"include_declination,omitempty"`
}

// CalculateNatalChart calculates a complete natal chart and persists it.
func (ns *NatalService) CalculateNatalChart(req *NatalChartRequest) (*domain.Chart, error) {
	ns.logger.CalculationLogger().
		Str("location", req.Location.GetDisplayName()).
		Int("year", req.Year).
		Int("month", req.Month).
		Int("day", req.Day).
		Str("house_system", req.HouseSystem).
		Msg("starting natal chart calculation")

	if req.HouseSystem == "" {
		req.HouseSystem = string(domain.HousePlacidus)
	}

	instant, err := domain.ParseTime(req.Year, req.Month, req.Day, req.LocalTime, req.Location.Timezone)
	if err != nil {
		return nil, corerr.Newf(corerr.InvalidInput, "failed to parse birth time: %s", err)
	}

	birthInfo := domain.BirthInfo{
		Date:     fmt.Sprintf("%04d-%02d-%02d", req.Year, req.Month, req.Day),
		Time:     req.LocalTime,
		Location: req.Location,
	}

	name := req.Name
	if name == "" {
		name = req.Location.GetDisplayName()
	}

	opts := astro.GenerateOptions{
		HouseSystem:        domain.HouseSystem(req.HouseSystem),
		IncludeMinor:       req.IncludeMinorAspects,
		IncludeDeclination: req.IncludeDeclination,
	}

	chart, err := ns.facade.Generate(uuid.NewString(), domain.ChartTypeNatal, name, birthInfo, instant, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate natal chart: %w", err)
	}

	if err := ns.store.Save(chart); err != nil {
		ns.logger.Error().Err(err).Str("chart_id", chart.ID).Msg("failed to persist natal chart")
	}

	ns.logger.Info().
		Str("endpoint", "natal-chart").
		Str("chart_id", chart.ID).
		Int("bodies_calculated", len(chart.Bodies)).
		Int("houses_calculated", len(chart.Houses)).
		Int("aspects_found", len(chart.Aspects)).
		Msg("natal chart calculation completed")

	return chart, nil
}

// GetSupportedHouseSystems returns the available house systems.
func (ns *NatalService) GetSupportedHouseSystems() []string {
	return []string{string(domain.HousePlacidus), string(domain.HouseKoch), string(domain.HouseWholeSign)}
}

// ValidateNatalChartRequest validates a natal chart request.
func (ns *NatalService) ValidateNatalChartRequest(req *NatalChartRequest) error {
	if req.Day < 1 || req.Day > 31 {
		return corerr.New(corerr.InvalidInput, "day must be between 1 and 31")
	}
	if req.Month < 1 || req.Month > 12 {
		return corerr.New(corerr.InvalidInput, "month must be between 1 and 12")
	}
	if req.Year < 1800 || req.Year > 2200 {
		return corerr.New(corerr.InvalidInput, "year must be between 1800 and 2200")
	}
	if req.LocalTime == "" {
		return corerr.New(corerr.InvalidInput, "local_time is required")
	}
	if !req.Location.IsValidCoordinates() {
		return corerr.New(corerr.InvalidInput, "location coordinates out of range")
	}
	if req.HouseSystem != "" && !domain.IsValidHouseSystem(req.HouseSystem) {
		return corerr.Newf(corerr.InvalidInput, "invalid house system: %s", req.HouseSystem)
	}
	return nil
}
