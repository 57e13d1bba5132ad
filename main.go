package main

import (
	"log"
	"os"

	"portal-service/internal/database"
	"portal-service/internal/handlers"
	"portal-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Initialize Database
	database.Connect()
	database.Migrate()
	db := database.DB

	// Redis/Asynq Client
	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer asynqClient.Close()

	// Init Services
	ledgerService := services.NewLedgerService(db)
	authService := services.NewAuthService(db)
	planService := services.NewPlanService(db)
	investmentService := services.NewInvestmentService(db, ledgerService)
	transactionService := services.NewTransactionService(db, ledgerService)
	arbitrationService := services.NewArbitrationService(db, ledgerService, asynqClient)
	settingsService := services.NewSettingsService(db)
	adviceService := services.NewAdviceService()

	authHandler := handlers.NewAuthHandler(authService)
	portalHandler := handlers.NewPortalHandler(
		authService,
		planService,
		investmentService,
		transactionService,
		settingsService,
		adviceService,
	)
	adminHandler := handlers.NewAdminHandler(arbitrationService, planService, settingsService)

	// Initialize Gin
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome To Brac Portal service",
		})
	})

	// Public routes
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/portal/settings", portalHandler.GetSettings)
	r.GET("/plans", portalHandler.ListPlans)
	r.GET("/portal/advice", portalHandler.GetAdvice)

	// Authenticated user routes
	user := r.Group("/me", handlers.AuthRequired())
	{
		user.GET("", portalHandler.GetProfile)
		user.PUT("/wallet", portalHandler.SetWallet)
		user.GET("/investments", portalHandler.ListInvestments)
		user.POST("/investments", portalHandler.ActivatePlan)
		user.POST("/investments/:id/claim", portalHandler.Claim)
		user.POST("/deposits", portalHandler.RequestDeposit)
		user.POST("/withdrawals", portalHandler.RequestWithdraw)
		user.GET("/transactions", portalHandler.History)
	}

	// Admin routes
	admin := r.Group("/admin", handlers.AuthRequired(), handlers.AdminRequired())
	{
		admin.GET("/users", adminHandler.ListProfiles)
		admin.POST("/users/:id/balance", adminHandler.AdjustBalance)
		admin.GET("/transactions", adminHandler.ListTransactions)
		admin.POST("/transactions/:id/approve", adminHandler.Approve)
		admin.POST("/transactions/:id/reject", adminHandler.Reject)
		admin.GET("/settings", adminHandler.GetSettings)
		admin.PUT("/settings", adminHandler.UpdateSettings)
		admin.POST("/plans", adminHandler.CreatePlan)
		admin.PUT("/plans/:id", adminHandler.UpdatePlan)
	}

	// Start Cron Schedulers
	investmentService.StartScheduler()

	transactionArchiveService := services.NewTransactionArchiveService(db)
	transactionArchiveService.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("HTTP Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
