package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"lunarly/analyzer"
	"lunarly/cmd/api/auth"
	"lunarly/cmd/api/router"
	"lunarly/cmd/api/services"
	"lunarly/internal/logger"
	"lunarly/config"
	"lunarly/db"
	"lunarly/eventbus"
	"lunarly/quota"
	"lunarly/repositories"
)

// @title           Lunarly API
// @version         1.0
// @description     Dream journaling with AI-generated interpretations
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal("failed to initialize MongoDB: ", err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal("failed to init JWT manager: ", err)
	}

	var publisher eventbus.Publisher = eventbus.NoopPublisher{}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		bus, err := eventbus.NewKafkaBus(brokers)
		if err != nil {
			log.Fatal("failed to init Kafka producer: ", err)
		}
		defer bus.Close()
		publisher = bus
	}

	dreamRepo := repositories.NewDreamRepository(db.Database())
	analysisRepo := repositories.NewAnalysisRepository(db.Database())
	userRepo := repositories.NewUserRepository(db.Database())
	txnRunner := db.NewTxnRunner(db.Client())

	var invoker services.ModelInvoker
	var limiter services.QuotaReserver
	if cfg.Analysis.Engine != "offline" {
		invoker = analyzer.NewGeminiInvoker(
			os.Getenv("GEMINI_API_KEY"),
			cfg.Analysis.CandidateModels,
			time.Duration(cfg.Analysis.AttemptTimeoutSeconds)*time.Second,
		)
		limiter = quota.NewAnalysisQuotaLimiter(cfg.Analysis.Quota)
	} else {
		logger.Log.Warn("analysis engine is offline, using the deterministic generator only")
	}

	r := router.New(router.Deps{
		JWT:    jwtManager,
		Dreams: services.NewDreamService(dreamRepo, userRepo, publisher, cfg.Events.DreamsTopic),
		Analyses: services.NewAnalysisService(
			dreamRepo, analysisRepo, userRepo, txnRunner,
			invoker, limiter, publisher, cfg.Events.AnalysesTopic,
		),
		Stats:  services.NewStatsService(userRepo),
		Export: services.NewExportService(dreamRepo),
	})

	if err := r.Run(":8080"); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
