package service

import (
	"fmt"

	"astroeph-api/internal/astro"
	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"
)

// SynastryService handles cross-chart compatibility calculations: synastry
// aspects, a composite chart, and a weighted compatibility score.
type SynastryService struct {
	natalService *NatalService
	composite    *astro.CompositeCalculator
	aspects      *astro.AspectEngine
	logger       *logging.Logger
}

// NewSynastryService creates a new synastry service.
func NewSynastryService(natalService *NatalService, composite *astro.CompositeCalculator, logger *logging.Logger) *SynastryService {
	return &SynastryService{
		natalService: natalService,
		composite:    composite,
		aspects:      astro.NewAspectEngine(true, true),
		logger:       logger,
	}
}

// SynastryRequest represents a request for synastry calculation.
type SynastryRequest struct {
	Person1 PersonData `json:"person1" binding:"required"`
	Person2 PersonData `json:"person2" binding:"required"`
}

// PersonData represents birth data for one person.
type PersonData struct {
	Day         int             `json:"day" binding:"required,min=1,max=31"`
	Month       int             `json:"month" binding:"required,min=1,max=12"`
	Year        int             `json:"year" binding:"required"`
	LocalTime   string          `json:"local_time" binding:"required"`
	Name        string          `json:"name,omitempty"`
	Location    domain.Location `json:"location" binding:"required"`
	HouseSystem string          `json:"house_system,omitempty"`
}

// CalculateSynastry calculates the compatibility report between two charts:
// cross-chart aspects, a composite chart, and a weighted compatibility score.
func (ss *SynastryService) CalculateSynastry(req *SynastryRequest) (*domain.CompatibilityReport, error) {
	ss.logger.CalculationLogger().
		Str("person1", req.Person1.Name).
		Str("person2", req.Person2.Name).
		Msg("starting synastry calculation")

	chartA, err := ss.natalService.CalculateNatalChart(personToNatalRequest(req.Person1))
	if err != nil {
		return nil, fmt.Errorf("failed to calculate chart for person 1: %w", err)
	}
	chartB, err := ss.natalService.CalculateNatalChart(personToNatalRequest(req.Person2))
	if err != nil {
		return nil, fmt.Errorf("failed to calculate chart for person 2: %w", err)
	}

	synastryAspects := ss.aspects.Synastry(chartA.Bodies, chartB.Bodies)
	compositeChart := ss.composite.Compute(chartA, chartB)
	score := astro.CompatibilityScore(synastryAspects)

	ss.logger.Info().
		Int("synastry_aspects", len(synastryAspects)).
		Str("rating", score.Rating).
		Msg("synastry calculation completed")

	return &domain.CompatibilityReport{
		ChartAID:           chartA.ID,
		ChartBID:           chartB.ID,
		SynastryAspects:    synastryAspects,
		CompositeChart:     compositeChart,
		CompatibilityScore: score,
	}, nil
}

func personToNatalRequest(p PersonData) *NatalChartRequest {
	return &NatalChartRequest{
		Day:                p.Day,
		Month:              p.Month,
		Year:               p.Year,
		LocalTime:          p.LocalTime,
		Name:               p.Name,
		Location:           p.Location,
		HouseSystem:        p.HouseSystem,
		IncludeMinorAspects: true,
		IncludeDeclination: true,
	}
}
