package api

import (
	"net/http"
	"time"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the HTTP layer talks to.
type Services struct {
	Auth         service.AuthService
	DailyLog     service.DailyLogService
	Physique     service.PhysiqueService
	Analytics    service.AnalyticsService
	Sheet        service.SheetService
	SheetProblem service.SheetProblemService
	Bucket       service.BucketService
	Problem      service.ProblemService
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func SetupRoutes(router *gin.Engine, jwtSecret string, corsOrigins []string, svc Services) {
	authHandler := NewAuthHandler(svc.Auth)
	dailyLogHandler := NewDailyLogHandler(svc.DailyLog)
	physiqueHandler := NewPhysiqueHandler(svc.Physique)
	analyticsHandler := NewAnalyticsHandler(svc.Analytics)
	sheetHandler := NewSheetHandler(svc.Sheet, svc.SheetProblem)
	bucketHandler := NewBucketHandler(svc.Bucket)
	problemHandler := NewProblemHandler(svc.Problem)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.Use(corsMiddleware(corsOrigins))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authMiddleware, authHandler.Me)
			authGroup.PUT("/profile", authMiddleware, authHandler.UpdateProfile)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		dailyLogs := protected.Group("/daily-logs")
		{
			dailyLogs.POST("", dailyLogHandler.SaveDailyLog)
			dailyLogs.GET("", dailyLogHandler.GetDailyLogs)
			dailyLogs.GET("/streak", dailyLogHandler.GetStreak)
			dailyLogs.GET("/weekly-summary", dailyLogHandler.GetWeeklySummary)
			dailyLogs.GET("/:date", dailyLogHandler.GetDailyLog)
			dailyLogs.DELETE("/:date", dailyLogHandler.DeleteDailyLog)
		}

		physique := protected.Group("/physique")
		{
			physique.POST("", physiqueHandler.SavePhysiqueLog)
			physique.GET("", physiqueHandler.GetPhysiqueLogs)
			physique.GET("/progress", physiqueHandler.GetProgress)
			physique.DELETE("/:id", physiqueHandler.DeletePhysiqueLog)
			// Photo upload is two steps: presigned PUT, then confirm.
			physique.POST("/:id/photos/upload-url", physiqueHandler.RequestPhotoUploadURL)
			physique.POST("/:id/photos", physiqueHandler.ConfirmPhoto)
			physique.GET("/:id/photos", physiqueHandler.GetPhotos)
			physique.DELETE("/:id/photos/:photoId", physiqueHandler.DeletePhoto)
		}

		analyticsGroup := protected.Group("/analytics")
		{
			analyticsGroup.GET("/dashboard", analyticsHandler.Dashboard)
			analyticsGroup.GET("/problems-trend", analyticsHandler.ProblemsTrend)
			analyticsGroup.GET("/platform-distribution", analyticsHandler.PlatformDistribution)
			analyticsGroup.GET("/difficulty-breakdown", analyticsHandler.DifficultyBreakdown)
			analyticsGroup.GET("/heatmap", analyticsHandler.Heatmap)
			analyticsGroup.GET("/codeforces-rating", analyticsHandler.CodeforcesRating)
			analyticsGroup.GET("/weight-progress", analyticsHandler.WeightProgress)
		}

		sheets := protected.Group("/sheets")
		{
			sheets.GET("/templates", sheetHandler.GetTemplates)
			sheets.POST("", sheetHandler.CreateSheet)
			sheets.GET("", sheetHandler.GetSheets)
			sheets.GET("/:id", sheetHandler.GetSheet)
			sheets.PUT("/:id", sheetHandler.UpdateSheet)
			sheets.DELETE("/:id", sheetHandler.DeleteSheet)
			sheets.POST("/:id/topics", sheetHandler.AddTopic)
			sheets.PUT("/:id/topics/:topicName", sheetHandler.UpdateTopicProgress)
		}

		sheetProblems := protected.Group("/sheet-problems")
		{
			sheetProblems.GET("/:sheetId", sheetHandler.GetSheetProblems)
			sheetProblems.POST("/:sheetId", sheetHandler.AddSheetProblem)
			sheetProblems.PUT("/problem/:id", sheetHandler.UpdateSheetProblem)
			sheetProblems.PATCH("/problem/:id/status", sheetHandler.UpdateSheetProblemStatus)
			sheetProblems.DELETE("/problem/:id", sheetHandler.DeleteSheetProblem)
		}

		buckets := protected.Group("/buckets")
		{
			buckets.GET("", bucketHandler.GetBuckets)
			buckets.GET("/:id", bucketHandler.GetBucket)
			buckets.POST("/import", bucketHandler.ImportBucket)
			buckets.POST("/create-sheet", bucketHandler.CreateSheetFromBucket)
			buckets.POST("/upsert", RoleMiddleware(domain.RoleAdmin), bucketHandler.UpsertBucket)
		}

		problems := protected.Group("/problems")
		{
			problems.POST("", problemHandler.CreateProblem)
			problems.GET("", problemHandler.GetProblems)
			problems.GET("/stats", problemHandler.GetStats)
			problems.GET("/by-date/:date", problemHandler.GetProblemsByDate)
			problems.GET("/:id", problemHandler.GetProblem)
			problems.PUT("/:id", problemHandler.UpdateProblem)
			problems.DELETE("/:id", problemHandler.DeleteProblem)
		}
	}
}
