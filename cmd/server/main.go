package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httpapi "ai-resume-backend/api/http"
	"ai-resume-backend/api/http/handlers"
	"ai-resume-backend/pkg/auth"
	"ai-resume-backend/pkg/chat"
	"ai-resume-backend/pkg/config"
	"ai-resume-backend/pkg/health"
	"ai-resume-backend/pkg/health/checkers"
	"ai-resume-backend/pkg/llm/openaicompat"
	"ai-resume-backend/pkg/logger"
	"ai-resume-backend/pkg/metrics"
	visionocr "ai-resume-backend/pkg/ocr/vision"
	mongorepo "ai-resume-backend/pkg/repository/mongodb"
	"ai-resume-backend/pkg/resume"
	"ai-resume-backend/pkg/security/jwt"
	"ai-resume-backend/pkg/storage/mongodb"
	"ai-resume-backend/pkg/thread"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	zlog := logger.New(cfg.LogLevel, cfg.LogFilePath, cfg.Production())
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()

	// Connect to MongoDB
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb connect: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	zlog.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	// Vision OCR client
	extractor, err := visionocr.New(ctx, cfg.GoogleCredentials)
	if err != nil {
		log.Fatalf("vision client: %v", err)
	}
	defer func() { _ = extractor.Close() }()

	// Wire dependencies
	var threadRepo thread.Repository = mongorepo.NewThreadRepository(client, cfg.MongoDatabase)

	llmClient := openaicompat.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	resumeSvc := resume.NewService(llmClient)

	m := metrics.New()
	chatSvc := chat.NewService(threadRepo, resumeSvc, extractor, llmClient, m, zlog)

	// Token generator and sample login
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC := auth.NewAuthService(jwtGen)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewMongoChecker(client))

	chatHandler := handlers.NewChatHandler(chatSvc, extractor, cfg.UploadDir, cfg.Production())
	threadHandler := handlers.NewThreadHandler(chatSvc, cfg.Production())
	healthHandler := handlers.NewHealthHandler(readiness)
	authHandler := handlers.NewAuthHandler(authUC)

	// JWT middleware is opt-in; the API is open by default.
	var authMW fiber.Handler
	if cfg.AuthRequired {
		authMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 16 << 20, // multipart uploads up to 15MB plus overhead
	})
	app.Use(httpapi.RequestLogger(zlog, m))
	httpapi.Register(app, chatHandler, threadHandler, healthHandler, authHandler, authMW)

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		zlog.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	zlog.Info("HTTP server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
