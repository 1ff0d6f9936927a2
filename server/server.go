package server

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dinerozz/product-map-backend/config"
	"github.com/dinerozz/product-map-backend/docs"
	productMapHandler "github.com/dinerozz/product-map-backend/internal/handler/product_map"
	productMapService "github.com/dinerozz/product-map-backend/internal/service/product_map"
	redisService "github.com/dinerozz/product-map-backend/internal/service/redis"
	"github.com/dinerozz/product-map-backend/middleware"
)

type RouterHandler struct {
	productMapHandler *productMapHandler.ProductMapHandler
	logger            *slog.Logger
	baseURL           string
}

func RunServer(config *config.Config, logger *slog.Logger) {
	env := config.Env
	switch env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Println("🚀 Starting server in PRODUCTION mode")
	case "dev", "development":
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode (default)")
	}

	var cache productMapService.Cache
	redis, err := redisService.NewRedisService(redisService.RedisConfig{
		Host:     config.Redis.Host,
		Port:     config.Redis.Port,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	if err != nil {
		log.Printf("⚠️ Redis unavailable, product map cache disabled: %v", err)
	} else {
		cache = redis
		defer redis.Close()
	}

	source := productMapService.NewFileSource(config.Data.MetadataPath, config.Data.FunnelsPath)
	productMapSrv := productMapService.NewProductMapService(source, cache, config.Data.CacheTTL, logger)

	routerHandler := &RouterHandler{
		productMapHandler: productMapHandler.NewProductMapHandler(productMapSrv),
		logger:            logger,
		baseURL:           config.Server.BaseURL,
	}

	r := setupRouter(routerHandler)

	srv := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("✅ Server starting on port %s", config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	select {
	case <-ctx.Done():
		log.Println("⚠️ Server shutdown timeout exceeded")
	default:
		log.Println("✅ Server gracefully stopped")
	}
}

func setupRouter(routerHandler *RouterHandler) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(routerHandler.logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(routerHandler.baseURL))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "product-map",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.Host = "127.0.0.1:8080"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.Title = "Product map API"
	docs.SwaggerInfo.Description = "Page graph, navigation edges and journeys built from screenshot telemetry"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/api/v1"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	productMapRoutes := r.Group("/api/v1/product-map")
	{
		productMapRoutes.GET("", routerHandler.productMapHandler.GetProductMap)
		productMapRoutes.POST("/refresh", routerHandler.productMapHandler.RefreshProductMap)
		productMapRoutes.POST("/analyze", routerHandler.productMapHandler.Analyze)
		productMapRoutes.GET("/pages", routerHandler.productMapHandler.GetPages)
		productMapRoutes.GET("/pages/lookup", routerHandler.productMapHandler.GetPage)
		productMapRoutes.GET("/edges", routerHandler.productMapHandler.GetEdges)
		productMapRoutes.GET("/journeys", routerHandler.productMapHandler.GetJourneys)
	}

	return r
}
