package main

import (
	"context"
	"math/rand"
	"net/http"

	_ "ipmap-dashboard/docs"
	"ipmap-dashboard/internal/config"
	"ipmap-dashboard/internal/handler"
	"ipmap-dashboard/internal/repository"
	"ipmap-dashboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           ipmap-dashboard API
// @version         1.0
// @description     Read-only JSON surface behind the synthetic IP map dashboard.
// @BasePath        /
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	gin.SetMode(config.GinMode)

	// One seeded source drives group assignment first, icon sampling second.
	// Run order is fixed, so a fixed seed reproduces the whole snapshot.
	rng := rand.New(rand.NewSource(config.GroupSeed))

	// Initialize layers
	repo := repository.NewCSVRepository(config.DatasetPath, config.StrictCoords)

	datasetService := service.NewDatasetService(repo, rng)
	mapService := service.NewMapService(rng)
	tableService := service.NewTableService()

	// The pipeline runs once; every request serves this snapshot read-only.
	snapshot, err := datasetService.LoadLabeled(context.Background())
	if err != nil {
		log.Fatal().Err(err).Str("dataset", config.DatasetPath).Msg("cannot load dataset")
	}
	if snapshot.Dropped > 0 {
		log.Warn().Int("dropped", snapshot.Dropped).Msg("rows dropped for malformed coordinates")
	}
	log.Info().
		Int("records", len(snapshot.Records)).
		Int64("seed", config.GroupSeed).
		Msg("dataset loaded and labeled")

	dashboardHandler := handler.NewDashboardHandler(
		snapshot.Records,
		mapService.BuildMapSpec(snapshot.Views),
		tableService.BuildTableSpec(snapshot.Records),
		snapshot.Dropped,
	)

	r := gin.Default()
	r.SetHTMLTemplate(handler.Template())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", dashboardHandler.Dashboard)
	r.GET("/api/records", dashboardHandler.Records)
	r.GET("/api/map", dashboardHandler.MapSpec)
	r.GET("/api/table", dashboardHandler.TableSpec)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
