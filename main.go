package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agrodoc/controllers"
	"agrodoc/database"
	"agrodoc/logger"
	"agrodoc/middleware"
	awspkg "agrodoc/pkg/aws"
	"agrodoc/repository"
	"agrodoc/routes"
	servicepkg "agrodoc/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appEnv := os.Getenv("APP_ENV")

	// CloudWatch log shipping is optional; local runs log to stdout only.
	cwLogs, cwErr := awspkg.NewCloudWatchLogsClient(context.Background(), "agrodoc")
	if cwErr == nil && cwLogs.IsEnabled() {
		logger.InitializeWithWriter(appEnv, cwLogs)
	} else {
		logger.Initialize(appEnv)
	}
	zapLog := logger.Log
	defer zapLog.Sync() //nolint:errcheck
	zap.ReplaceGlobals(zapLog)

	cfg, err := LoadConfig()
	if err != nil {
		zapLog.Fatal("Failed to load config", zap.Error(err))
	}

	if err := database.Connect(cfg.PostgresDSN()); err != nil {
		zapLog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	// AWS clients
	awsCfg, awsErr := awspkg.LoadAWSConfig(context.Background())
	var storage awspkg.BlobStorage
	var snsClient awspkg.SNSPublisher
	if awsErr != nil {
		zapLog.Fatal("AWS config unavailable, storage cannot start", zap.Error(awsErr))
	}
	storage = awspkg.NewS3Storage(awsCfg, cfg.S3Bucket, cfg.S3PublicBaseURL)
	snsClient = awspkg.NewSNSClient(awsCfg)

	metricsClient, metricsErr := awspkg.NewMetricsClient(context.Background())
	if metricsErr != nil {
		zapLog.Warn("CloudWatch metrics unavailable", zap.Error(metricsErr))
	}

	// Redis is an optional cache; the dashboard works without it.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			zapLog.Warn("Redis unavailable, caching disabled", zap.Error(err))
			redisClient = nil
		}
	}

	// DI chain
	shipRepo := repository.NewGormShipRepository(database.DB)
	userRepo := repository.NewGormUserRepository(database.DB)

	shipsService := servicepkg.NewShipsService(shipRepo, zapLog)
	filesService := servicepkg.NewFilesService(storage, zapLog)
	uploadService := servicepkg.NewUploadService(storage, snsClient, cfg.UploadSNSTopicARN, cfg.UploadKey, zapLog)
	authService := servicepkg.NewAuthService(userRepo, zapLog)

	cache := controllers.NewCacheManager(redisClient)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.Metrics(metricsClient, "agrodoc"))

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "agrodoc"})
	})

	routes.RegisterAPIRoutes(r, routes.APIControllers{
		Ships:  controllers.NewShipsController(shipsService, cache),
		Files:  controllers.NewFilesController(filesService, cache),
		Upload: controllers.NewUploadController(uploadService),
		Auth:   controllers.NewAuthController(authService),
	})
	routes.RegisterPageRoutes(r, controllers.NewPagesController(), cfg.AuthBypass, zapLog)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("Server failed", zap.Error(err))
		}
	}()

	zapLog.Info("Agrodoc backend started", zap.String("port", cfg.Port))
	<-quit
	zapLog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zapLog.Info("Server exited cleanly")
}
