package main

import (
	"log"
	"net/http"

	"astroeph-api/internal/astro"
	"astroeph-api/internal/config"
	httpRouter "astroeph-api/internal/http"
	"astroeph-api/internal/logging"
	"astroeph-api/internal/service"
	"astroeph-api/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	logger := logging.NewLogger()
	logger.Info().
		Str("version", "v1.0.0").
		Str("service", "astroeph-api").
		Msg("starting astroeph-api server")

	ephemeris, err := astro.NewEphemeris(logger, cfg.Ephemeris.DataPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize ephemeris provider")
		log.Fatalf("failed to initialize ephemeris provider: %v", err)
	}

	frame := astro.NewFrame(logger)
	natal := astro.NewNatalCalculator(ephemeris, frame, logger)
	houses := astro.NewHouseCalculator()
	facade := astro.NewChartFacade(ephemeris, logger)
	timeform := astro.NewTimeFormCalculator(ephemeris, natal, houses, facade)
	composite := astro.NewCompositeCalculator()

	store, err := storage.NewChartStore(cfg.Database.Path, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize chart store")
		log.Fatalf("failed to initialize chart store: %v", err)
	}
	defer store.Close()

	natalService := service.NewNatalService(facade, store, logger)
	synastryService := service.NewSynastryService(natalService, composite, logger)
	compositeService := service.NewCompositeService(natalService, composite, store, logger)
	solarReturnService := service.NewSolarReturnService(natalService, timeform, store, logger)
	lunarReturnService := service.NewLunarReturnService(natalService, timeform, store, logger)
	progressionsService := service.NewProgressionsService(natalService, timeform, logger)
	transitsService := service.NewTransitsService(natalService, timeform, logger)

	logger.Info().Msg("all services initialized")

	ginRouter := gin.Default()

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "astrological calculation service is running",
			"version": "v1.0.0",
		})
	})

	httpRouter.RegisterRoutes(
		ginRouter,
		natalService,
		synastryService,
		compositeService,
		solarReturnService,
		lunarReturnService,
		progressionsService,
		transitsService,
		logger,
	)

	port := cfg.Server.Port
	logger.Info().
		Str("port", port).
		Str("health_endpoint", "http://localhost:"+port+"/health").
		Str("api_endpoint", "http://localhost:"+port+"/api/v1/natal-chart").
		Msg("server starting")

	if err := ginRouter.Run(":" + port); err != nil {
		logger.Error().Err(err).Msg("failed to run server")
		log.Fatalf("failed to run server: %v", err)
	}
}
