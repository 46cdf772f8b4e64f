package service

import (
	"fmt"

	"astroeph-api/internal/astro"
	"astroeph-api/internal/domain"
	"astroeph-api/internal/logging"
	"astroeph-api/internal/storage"
)

// LunarReturnService handles lunar return calculations.
type LunarReturnService struct {
	natalService *NatalService
	timeform     *astro.TimeFormCalculator
	store        *storage.ChartStore
	logger       *logging.Logger
}

// NewLunarReturnService creates a new lunar return service.
func NewLunarReturnService(natalService *NatalService, timeform *astro.TimeFormCalculator, store *storage.ChartStore, logger *logging.Logger) *LunarReturnService {
	return &LunarReturnService{natalService: natalService, timeform: timeform, store: store, logger: logger}
}

// LunarReturnRequest represents a request for lunar return calculation. The
// reference date/time marks the window the Moon's return is searched
// around (roughly -3..+30 days around the reference instant).
type LunarReturnRequest struct {
	BirthDay   int             `json:"birth_day" binding:"required,min=1,max=31"`
	BirthMonth int             `json:"birth_month" binding:"required,min=1,max=12"`
	BirthYear  int             `json:"birth_year" binding:"required"`
	BirthTime  string          `json:"birth_time" binding:"required"`
	Location   domain.Location `json:"location" binding:"required"`

	ReferenceDay   int    `json:"reference_day" binding:"required,min=1,max=31"`
	ReferenceMonth int    `json:"reference_month" binding:"required,min=1,max=12"`
	ReferenceYear  int    `json:"reference_year" binding:"required"`
	ReferenceTime  string `json:"reference_time,omitempty"`

	HouseSystem         string `json:"house_system,omitempty"`
	IncludeMinorAspects bool   `json:"include_minor_aspects,omitempty"`
	IncludeDeclination  bool   `json:"include_declination,omitempty"`
}

// CalculateLunarReturn finds the instant nearest the reference date the
// Moon returns to its natal longitude and evaluates a full chart there.
func (lrs *LunarReturnService) CalculateLunarReturn(req *LunarReturnRequest) (domain.LunarReturnReport, error) {
	lrs.logger.CalculationLogger().
		Int("birth_year", req.BirthYear).
		Int("reference_year", req.ReferenceYear).
		Int("reference_month", req.ReferenceMonth).
		Msg("starting lunar return calculation")

	if req.HouseSystem == "" {
		req.HouseSystem = string(domain.HousePlacidus)
	}
	referenceTime := req.ReferenceTime
	if referenceTime == "" {
		referenceTime = req.BirthTime
	}

	natalChart, err := lrs.natalService.CalculateNatalChart(&NatalChartRequest{
		Day:         req.BirthDay,
		Month:       req.BirthMonth,
		Year:        req.BirthYear,
		LocalTime:   req.BirthTime,
		Location:    req.Location,
		HouseSystem: req.HouseSystem,
	})
	if err != nil {
		return domain.LunarReturnReport{}, fmt.Errorf("failed to calculate natal chart: %w", err)
	}

	referenceInstant, err := domain.ParseTime(req.ReferenceYear, req.ReferenceMonth, req.ReferenceDay, referenceTime, req.Location.Timezone)
	if err != nil {
		return domain.LunarReturnReport{}, fmt.Errorf("failed to parse reference time: %w", err)
	}

	opts := astro.GenerateOptions{
		HouseSystem:        domain.HouseSystem(req.HouseSystem),
		IncludeMinor:       req.IncludeMinorAspects,
		IncludeDeclination: req.IncludeDeclination,
	}

	report, err := lrs.timeform.LunarReturn(natalChart, referenceInstant, opts)
	if err != nil {
		return domain.LunarReturnReport{}, fmt.Errorf("failed to calculate lunar return: %w", err)
	}

	if err := lrs.store.Save(report.Chart); err != nil {
		lrs.logger.Error().Err(err).Str("chart_id", report.Chart.ID).Msg("failed to persist lunar return chart")
	}

	if report.Estimated {
		lrs.logger.Warn().Int("reference_year", req.ReferenceYear).Msg("lunar return bracket widened; result is best-effort")
	}

	lrs.logger.Info().Msg("lunar return calculation completed")
	return report, nil
}
