package service

import (
	"fmt"

	"astroeph-api/internal/astro"
	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"
	"astroeph-api/internal/storage"
)

// CompositeService handles composite chart calculations.
type CompositeService struct {
	natalService *NatalService
	composite    *astro.CompositeCalculator
	store        *storage.ChartStore
	logger       *logging.Logger
}

// NewCompositeService creates a new composite service.
func NewCompositeService(natalService *NatalService, composite *astro.CompositeCalculator, store *storage.ChartStore, logger *logging.Logger) *CompositeService {
	return &CompositeService{natalService: natalService, composite: composite, store: store, logger: logger}
}

// CompositeChartRequest represents a request for composite chart calculation.
type CompositeChartRequest struct {
	Person1 PersonData `json:"person1" binding:"required"`
	Person2 PersonData `json:"person2" binding:"required"`
}

// CompositeChartResponse represents the response from composite chart
// calculation: the composite chart plus the two contributing natal charts.
type CompositeChartResponse struct {
	CompositeChart *domain.Chart `json:"composite_chart"`
	Person1Chart   *domain.Chart `json:"person1_chart"`
	Person2Chart   *domain.Chart `json:"person2_chart"`
}

// CalculateCompositeChart calculates a midpoint composite chart between two
// people. composite(A,B) == composite(B,A): the midpoint construction is
// symmetric regardless of argument order.
func (cs *CompositeService) CalculateCompositeChart(req *CompositeChartRequest) (*CompositeChartResponse, error) {
	cs.logger.CalculationLogger().
		Str("person1", req.Person1.Name).
		Str("person2", req.Person2.Name).
		Msg("starting composite chart calculation")

	person1Chart, err := cs.natalService.CalculateNatalChart(personToNatalRequest(req.Person1))
	if err != nil {
		return nil, fmt.Errorf("failed to calculate chart for person 1: %w", err)
	}
	person2Chart, err := cs.natalService.CalculateNatalChart(personToNatalRequest(req.Person2))
	if err != nil {
		return nil, fmt.Errorf("failed to calculate chart for person 2: %w", err)
	}

	compositeChart := cs.composite.Compute(person1Chart, person2Chart)

	if err := cs.store.Save(compositeChart); err != nil {
		cs.logger.Error().Err(err).Str("chart_id", compositeChart.ID).Msg("failed to persist composite chart")
	}

	cs.logger.Info().
		Int("composite_bodies", len(compositeChart.Bodies)).
		Int("composite_houses", len(compositeChart.Houses)).
		Msg("composite chart calculation completed")

	return &CompositeChartResponse{
		CompositeChart: compositeChart,
		Person1Chart:   person1Chart,
		Person2Chart:   person2Chart,
	}, nil
}
