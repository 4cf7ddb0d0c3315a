package main

import (
	"context"
	"log"

	"incentivehub/internal/config"
	"incentivehub/internal/database"
	"incentivehub/internal/handler"
	"incentivehub/internal/logger"
	"incentivehub/internal/metrics"
	"incentivehub/internal/middleware"
	"incentivehub/internal/repository"
	"incentivehub/internal/service"
	"incentivehub/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.L().Sync()

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository()
	companyRepo := repository.NewCompanyRepository()
	productRepo := repository.NewProductRepository()
	saleRepo := repository.NewSaleRepository()
	purchaseRepo := repository.NewPurchaseRepository()
	stockRepo := repository.NewStockRepository()
	trainingRepo := repository.NewTrainingRepository()
	rewardRepo := repository.NewRewardRepository()
	rewardRequestRepo := repository.NewRewardRequestRepository()
	winnerRepo := repository.NewWinnerRepository()
	auditRepo := repository.NewAuditRepository()

	if err := database.Seed(context.Background(), database.Stores{
		Users:     userRepo,
		Companies: companyRepo,
		Products:  productRepo,
		Rewards:   rewardRepo,
	}); err != nil {
		logger.L().Fatal("failed to seed stores", zap.Error(err))
	}

	auditService := service.NewAuditService(auditRepo)
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret))
	userService := service.NewUserService(userRepo)
	companyService := service.NewCompanyService(companyRepo)
	productService := service.NewProductService(productRepo)
	saleService := service.NewSaleService(saleRepo, productRepo, userRepo, auditService, wsHub)
	purchaseService := service.NewPurchaseService(purchaseRepo, productRepo, userRepo, auditService, wsHub)
	stockService := service.NewStockService(stockRepo, productRepo, userRepo)
	trainingService := service.NewTrainingService(trainingRepo, userRepo, auditService, wsHub)
	rewardService := service.NewRewardService(rewardRepo, rewardRequestRepo, userRepo, auditService, wsHub)
	winnerService := service.NewWinnerService(winnerRepo, cfg.WinnersURL)
	exportService := service.NewExportService(saleRepo, purchaseRepo, stockRepo, rewardRequestRepo, winnerRepo)

	// Warm the winners gallery. The remote feed being down must not keep
	// the server from starting.
	if err := winnerService.Refresh(context.Background()); err != nil {
		logger.L().Warn("initial winners fetch failed", zap.Error(err))
	}

	auth := middleware.NewAuth([]byte(cfg.JWTSecret))

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService, auth)
	userHandler := handler.NewUserHandler(userService, auth)
	companyHandler := handler.NewCompanyHandler(companyService, auth)
	productHandler := handler.NewProductHandler(productService, auth)
	saleHandler := handler.NewSaleHandler(saleService, auth)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService, auth)
	stockHandler := handler.NewStockHandler(stockService, auth)
	trainingHandler := handler.NewTrainingHandler(trainingService, auth)
	rewardHandler := handler.NewRewardHandler(rewardService, auth)
	winnerHandler := handler.NewWinnerHandler(winnerService, auth)
	auditHandler := handler.NewAuditHandler(auditService, auth)
	exportHandler := handler.NewExportHandler(exportService, auth)

	// Set up Gin Router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), logger.Middleware(), metrics.Middleware())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", metrics.Handler())

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, []byte(cfg.JWTSecret))
	})

	// Register API Routes
	api := router.Group("")
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	companyHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	saleHandler.RegisterRoutes(api)
	purchaseHandler.RegisterRoutes(api)
	stockHandler.RegisterRoutes(api)
	trainingHandler.RegisterRoutes(api)
	rewardHandler.RegisterRoutes(api)
	winnerHandler.RegisterRoutes(api)
	auditHandler.RegisterRoutes(api)
	exportHandler.RegisterRoutes(api)

	logger.L().Info("server listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal("server failed", zap.Error(err))
	}
}
