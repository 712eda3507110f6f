package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homewise/internal/config"
	"homewise/internal/dataset"
	"homewise/internal/finance"
	"homewise/internal/handler"
	"homewise/internal/repository"
	"homewise/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("HomeWise Buy-vs-Rent Advisor")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load the analyzed dataset
	store := dataset.Load(cfg.Dataset.AnalyzedPath)
	log.Printf("✅ Loaded %d analyzed properties from %s", store.Len(), cfg.Dataset.AnalyzedPath)

	// Financial model assumptions
	params := finance.Params{
		DownPaymentPercent:    cfg.Analysis.DownPaymentPercent,
		LoanRate:              cfg.Analysis.LoanRate,
		TaxRate:               cfg.Analysis.TaxRate,
		AppreciationRate:      cfg.Analysis.AppreciationRate,
		RentEscalation:        cfg.Analysis.RentEscalation,
		InvestRate:            cfg.Analysis.InvestRate,
		MonthlySaving:         cfg.Analysis.MonthlySaving,
		TenureYears:           cfg.Analysis.TenureYears,
		DeductCapitalGainsTax: cfg.Analysis.DeductCapitalGainsTax,
		SubtractRentPaid:      cfg.Analysis.SubtractRentPaid,
	}

	// Bank rates for the loan comparison endpoint (optional)
	bankRates, err := finance.LoadBankRates(cfg.Dataset.BankRatesPath)
	if err != nil {
		log.Printf("⚠️  Bank rates unavailable: %v", err)
	} else {
		log.Printf("✅ Loaded %d bank rates", len(bankRates))
	}

	// Initialize OpenAI client
	var openaiClient *service.OpenAIClient
	if cfg.OpenAI.Enabled {
		openaiClient = service.NewOpenAIClient(&cfg.OpenAI)
		log.Printf("✅ OpenAI client initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
		log.Printf("   - Embedding model: %s", cfg.OpenAI.EmbeddingModel)
	} else {
		log.Println("⚠️  OpenAI is disabled - EXPLAIN questions will use template answers")
		log.Println("   Set OPENAI_API_KEY environment variable to enable AI features")
	}

	// Vector index is optional; without it the chat service answers from
	// templates only.
	var vectorIndex *repository.VectorIndex
	if cfg.PostgreSQL.Enabled {
		vectorIndex, err = repository.NewVectorIndex(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to vector index: %v", err)
		}
		defer vectorIndex.Close()
		log.Println("✅ Connected to PostgreSQL vector index")
	} else {
		log.Println("⚠️  Vector index is disabled - set DATABASE_URL to enable retrieval")
	}

	// Initialize services
	interpreter := service.NewInterpreter(store)
	sessions := service.NewSessionStore()

	var retriever service.Retriever
	var generator service.Generator
	if vectorIndex != nil {
		if r := service.NewVectorRetriever(openaiClient, vectorIndex); r != nil {
			retriever = r
		}
	}
	if g := service.NewOpenAIGenerator(openaiClient); g != nil {
		generator = g
	}

	chatService := service.NewChatService(
		store,
		interpreter,
		sessions,
		retriever,
		generator,
		time.Duration(cfg.Chat.RAGTimeout)*time.Second,
	)

	log.Println("✅ Services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	propertyHandler := handler.NewPropertyHandler(store, 10, 100)
	dashboardHandler := handler.NewDashboardHandler(store)
	analyzeHandler := handler.NewAnalyzeHandler(
		store,
		params,
		cfg.Dataset.ListingsPath,
		cfg.Dataset.AnalyzedPath,
		bankRates,
		openaiClient,
		vectorIndex,
	)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "homewise-advisor",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
			"properties": store.Len(),
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Chat endpoints
		apiV1.POST("/chat", chatHandler.Chat)
		apiV1.GET("/chat/context", chatHandler.GetContext)
		apiV1.POST("/chat/reset", chatHandler.ResetContext)

		// Catalog endpoints
		apiV1.GET("/properties", propertyHandler.List)
		apiV1.GET("/cities", propertyHandler.Cities)
		apiV1.GET("/export", propertyHandler.Export)

		// Dashboard endpoints
		apiV1.GET("/dashboard", dashboardHandler.Dashboard)
		apiV1.GET("/charts", dashboardHandler.Charts)

		// Analysis endpoints
		apiV1.POST("/analyze", analyzeHandler.Analyze)
		apiV1.POST("/banks/compare", analyzeHandler.CompareBanks)
		apiV1.POST("/index/rebuild", analyzeHandler.RebuildIndex)
	}

	// Serve static files (frontend)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API Documentation: http://localhost:%d/api/v1", cfg.Server.Port)
	log.Printf("🌐 Web UI: http://localhost:%d", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
