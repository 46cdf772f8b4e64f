package service

import (
	"fmt"

	"astroeph-api/internal/astro"
	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"
	"astroeph-api/internal/storage"
)

// SolarReturnService handles solar return calculations.
type SolarReturnService struct {
	natalService *NatalService
	timeform     *astro.TimeFormCalculator
	store        *storage.ChartStore
	logger       *logging.Logger
}

// NewSolarReturnService creates a new solar return service.
func NewSolarReturnService(natalService *NatalService, timeform *astro.TimeFormCalculator, store *storage.ChartStore, logger *logging.Logger) *SolarReturnService {
	return &SolarReturnService{natalService: natalService, timeform: timeform, store: store, logger: logger}
}

// SolarReturnRequest represents a request for solar return calculation.
type SolarReturnRequest struct {
	BirthDay   int             `json:"birth_day" binding:"required,min=1,max=31"`
	BirthMonth int             `json:"birth_month" binding:"required,min=1,max=12"`
	BirthYear  int             `json:"birth_year" binding:"required"`
	BirthTime  string          `json:"birth_time" binding:"required"`
	Location   domain.Location `json:"location" binding:"required"`

	ReturnYear int `json:"return_year" binding:"required"`

	HouseSystem         string `json:"house_system,omitempty"`
	IncludeMinorAspects bool   `json:"include_minor_aspects,omitempty"`
	IncludeDeclination  bool   `json:"include_declination,omitempty"`
}

// CalculateSolarReturn finds the instant in the return year the Sun reaches
// its natal longitude and evaluates a full chart there.
func (srs *SolarReturnService) CalculateSolarReturn(req *SolarReturnRequest) (domain.SolarReturnReport, error) {
	srs.logger.CalculationLogger().
		Int("birth_year", req.BirthYear).
		Int("return_year", req.ReturnYear).
		Msg("starting solar return calculation")

	if req.HouseSystem == "" {
		req.HouseSystem = string(domain.HousePlacidus)
	}

	natalChart, err := srs.natalService.CalculateNatalChart(&NatalChartRequest{
		Day:         req.BirthDay,
		Month:       req.BirthMonth,
		Year:        req.BirthYear,
		LocalTime:   req.BirthTime,
		Location:    req.Location,
		HouseSystem: req.HouseSystem,
	})
	if err != nil {
		return domain.SolarReturnReport{}, fmt.Errorf("failed to calculate natal chart: %w", err)
	}

	opts := astro.GenerateOptions{
		HouseSystem:        domain.HouseSystem(req.HouseSystem),
		IncludeMinor:       req.IncludeMinorAspects,
		IncludeDeclination: req.IncludeDeclination,
	}

	report, err := srs.timeform.SolarReturn(natalChart, req.ReturnYear, opts)
	if err != nil {
		return domain.SolarReturnReport{}, fmt.Errorf("failed to calculate solar return: %w", err)
	}

	if err := srs.store.Save(report.Chart); err != nil {
		srs.logger.Error().Err(err).Str("chart_id", report.Chart.ID).Msg("failed to persist solar return chart")
	}

	if report.Estimated {
		srs.logger.Warn().Int("return_year", req.ReturnYear).Msg("solar return bracket widened; result is best-effort")
	}

	srs.logger.Info().Int("return_year", req.ReturnYear).Msg("solar return calculation completed")
	return report, nil
}
