package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventify/config"
	"eventify/database"
	catalogRepo "eventify/database/repository/catalog"
	plannerPackageRepo "eventify/database/repository/plannerPackage"
	"eventify/handlers"
	"eventify/middleware"
	"eventify/routes"
	"eventify/services/cart"
	"eventify/services/catalog"
	ai "eventify/services/intelligence"
	"eventify/services/planner"
	"eventify/services/recommend"
	"eventify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	rootCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(rootCtx, 30*time.Second, utils.RedisClients(), database.MongoClient)

	// Catalog: seeded copy from MongoDB when present, built-in defaults otherwise.
	loadCtx, cancelLoad := context.WithTimeout(rootCtx, 10*time.Second)
	cat := catalog.Load(loadCtx, catalogRepo.NewMongoCatalogRepo(database.Database()), logger)
	cancelLoad()

	images, err := utils.ImageResolver()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize image resolver: %v", err)
	}
	cat = cat.WithImages(images, logger)
	engine := recommend.NewEngine(cat.Categories(), cat.Keywords())

	// Gemini backs the chat fallback and the planner. Both degrade without it.
	var chat ai.ChatClient
	var generator ai.ContentGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(rootCtx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer gemini.Close()
		chat, generator = gemini, gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat fallback and planner drafts are disabled")
	}

	// repositories.
	packageRepo, err := plannerPackageRepo.NewMongoPlannerPackageRepo(database.Database())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to prepare planner packages: %v", err)
	}

	// services.
	ctxStore := ai.NewRedisContextStore(
		utils.GetAIContextCacheClient(),
		time.Duration(config.AppConfig.AIContextTTLMinutes)*time.Minute,
	)
	aiSvc := ai.NewAIService(engine, ctxStore, chat, logger)
	plannerSvc := ai.NewPlanner(engine, generator, cat, logger)

	cartSvc := cart.NewCartService(
		cart.NewRedisCartStore(utils.GetCacheClient(), 0),
		cart.NewStripeGateway(logger),
		config.AppConfig.Currency,
		logger,
	)

	packageSvc := &planner.DefaultPackageService{
		Repo:             packageRepo,
		Catalog:          cat,
		AffiliateBaseURL: config.AppConfig.AffiliateBaseURL,
		Logger:           logger,
	}

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewCatalogHandler(cat),
		handlers.NewAIHandler(aiSvc, plannerSvc, engine),
		handlers.NewCartHandler(cartSvc, cat),
		handlers.NewPlannerPackageHandler(packageSvc),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)
	routes.RegisterDocsRoutes(router, "./docs/openapi.yaml")

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.Int("categories", len(cat.Categories())))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}
	for _, client := range utils.RedisClients() {
		_ = client.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
