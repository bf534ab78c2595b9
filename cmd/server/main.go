package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/challenge75/internal/api"
	"alcyxob/challenge75/internal/config"
	"alcyxob/challenge75/internal/repository/mongo"
	"alcyxob/challenge75/internal/service"
	"alcyxob/challenge75/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title 75-Day Challenge API
// @version 1.0
// @description Tracks a 75-day coding, gym and diet challenge: daily logs, weigh-ins, problem sheets and progress analytics.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting 75-day challenge server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Printf("Configuration loaded (challenge timezone %s).", cfg.Challenge.Location())

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureIndexes(ctx, appDB)
	}()

	// --- Storage ---
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 10*time.Second)
	fileStorage, err := storage.NewS3Storage(storageCtx, cfg.S3)
	storageCancel()
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	dailyLogRepo := mongo.NewMongoDailyLogRepository(appDB)
	physiqueRepo := mongo.NewMongoPhysiqueLogRepository(appDB)
	photoRepo := mongo.NewMongoProgressPhotoRepository(appDB)
	sheetRepo := mongo.NewMongoSheetRepository(appDB)
	sheetProblemRepo := mongo.NewMongoSheetProblemRepository(appDB)
	problemRepo := mongo.NewMongoProblemRepository(appDB)
	bucketRepo := mongo.NewMongoBucketRepository(appDB)

	// --- Services ---
	clock := service.NewClock(cfg.Challenge.Location())
	services := api.Services{
		Auth:         service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, clock),
		DailyLog:     service.NewDailyLogService(userRepo, dailyLogRepo, clock),
		Physique:     service.NewPhysiqueService(userRepo, physiqueRepo, photoRepo, fileStorage),
		Analytics:    service.NewAnalyticsService(userRepo, dailyLogRepo, physiqueRepo, clock),
		Sheet:        service.NewSheetService(sheetRepo, sheetProblemRepo, problemRepo),
		SheetProblem: service.NewSheetProblemService(sheetRepo, sheetProblemRepo, problemRepo, clock),
		Bucket:       service.NewBucketService(bucketRepo, sheetRepo, sheetProblemRepo),
		Problem:      service.NewProblemService(problemRepo, dailyLogRepo, sheetRepo, clock),
	}

	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret, cfg.Server.CORSOrigins, services)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
