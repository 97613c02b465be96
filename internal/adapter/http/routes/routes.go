package routes

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/bhavyaa-1001/Drop2Smart-sub001/docs" // swag-generated
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/adapter/http/handlers"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/adapter/persistence/repository"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/config"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/infrastructure/database"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/infrastructure/prediction"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/infrastructure/rainfall"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/worker"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the service together and starts the HTTP server plus the
// background worker pool.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pool := buildRoutes(cfg)
	pool.Start(ctx)

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}

	stop()
	pool.Wait()
}

func buildRoutes(cfg config.Config) *worker.Pool {
	ddb := database.ConnectDynamoDB()

	assessmentRepo := repository.NewAssessmentDynamoRepository(ddb)
	tracker := usecase.NewStatusTracker(assessmentRepo)

	predictionGateway := prediction.NewKsatGateway(cfg.MLServiceURL, cfg.PredictTimeout)
	processUseCase := usecase.NewProcessAssessmentUseCase(assessmentRepo, predictionGateway, tracker)

	pool := worker.NewPool(processUseCase, cfg.WorkerCount, cfg.WorkerQueueCapacity)

	assessmentUseCase := usecase.NewAssessmentUseCase(assessmentRepo, pool, rainfall.NewLookup(), tracker)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAssessmentRoutes(v1, assessmentHandler)

	return pool
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
