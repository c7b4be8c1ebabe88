package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/talentlink/api/internal/cache"
	"github.com/talentlink/api/internal/config"
	"github.com/talentlink/api/internal/handler"
	"github.com/talentlink/api/internal/logger"
	"github.com/talentlink/api/internal/messenger"
	"github.com/talentlink/api/internal/middleware"
	"github.com/talentlink/api/internal/queue"
	"github.com/talentlink/api/internal/ratelimit"
	"github.com/talentlink/api/internal/repository"
	"github.com/talentlink/api/internal/scheduler"
	"github.com/talentlink/api/internal/service"
	"github.com/talentlink/api/internal/worker"
	"github.com/talentlink/api/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Record store
	db, err := repository.Open(cfg.Database.DSN)
	if err != nil {
		zlog.Fatal("failed to open record store", zap.Error(err))
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		zlog.Warn("redis not available, cache and queues degraded", zap.Error(err))
	}

	// Initialize Asynq client
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer asynqClient.Close()

	// Initialize validator
	validate := validator.New()

	// Repositories
	jobRepo := repository.NewJobRepository(db)
	talentRepo := repository.NewTalentRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// Core components
	matchCache := cache.NewMatchCache(redisClient, cfg.Cache.MatchTTL, cfg.Cache.LookupTimeout, zlog)
	producer := queue.NewProducer(asynqClient, cfg.Queue.MaxAttempts, cfg.Queue.Retention, zlog)
	notifyLimiter := ratelimit.NewNotifyLimiter(redisClient, cfg.RateLimit.NotifyMax, cfg.RateLimit.NotifyWindow, zlog)
	messengerClient := messenger.NewClient(cfg.Messenger.BaseURL, cfg.Messenger.Token, zlog)

	// Initialize services
	matchService := service.NewMatchService(jobRepo, talentRepo, matchCache, zlog)
	talentService := service.NewTalentService(talentRepo, matchCache, producer, zlog)
	jobService := service.NewJobService(jobRepo, matchCache, producer, zlog)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, talentRepo, zlog)

	// Initialize handlers
	matchingHandler := handler.NewMatchingHandler(matchService)
	talentHandler := handler.NewTalentHandler(talentService, validate)
	jobHandler := handler.NewJobHandler(jobService, validate)
	applicationHandler := handler.NewApplicationHandler(applicationService, validate)
	statsHandler := handler.NewStatsHandler(jobRepo, talentRepo, applicationRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API routes
	api := app.Group("/", authMiddleware.Authenticate())

	// Matching routes
	matchingGroup := api.Group("/matching", rateLimiter.MatchingLimit(cfg.RateLimit.MatchingPerMin))
	matchingGroup.Get("/jobs/:jobId/talents", matchingHandler.TalentsForJob)
	matchingGroup.Get("/talents/:talentId/jobs", matchingHandler.JobsForTalent)

	// Talent routes
	talents := api.Group("/talents", rateLimiter.MutationLimit(cfg.RateLimit.MutationPerMin))
	talents.Post("/", talentHandler.Create)
	talents.Get("/", talentHandler.List)
	talents.Get("/:talentId", talentHandler.Get)
	talents.Patch("/:talentId", talentHandler.Update)
	talents.Put("/:talentId/status", talentHandler.UpdateStatus)
	talents.Get("/:talentId/applications", applicationHandler.ListByTalent)

	// Job routes
	jobs := api.Group("/jobs", rateLimiter.MutationLimit(cfg.RateLimit.MutationPerMin))
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:jobId", jobHandler.Get)
	jobs.Patch("/:jobId", jobHandler.Update)
	jobs.Put("/:jobId/status", jobHandler.UpdateStatus)
	jobs.Get("/:jobId/applications", applicationHandler.ListByJob)

	// Application routes
	applications := api.Group("/applications", rateLimiter.MutationLimit(cfg.RateLimit.MutationPerMin))
	applications.Post("/", applicationHandler.Create)
	applications.Put("/:applicationId/status", applicationHandler.UpdateStatus)

	// Admin routes
	api.Get("/admin/stats", statsHandler.Overview)

	// Start Asynq worker server
	go startWorkerServer(cfg, talentRepo, jobRepo, notifyLimiter, messengerClient, zlog)

	// Start match digest scheduler
	if cfg.Scheduler.Enabled {
		digest := scheduler.New(jobRepo, matchService, producer, cfg.Scheduler.DigestSpec, cfg.Scheduler.DigestTopN, zlog)
		if err := digest.Start(ctx); err != nil {
			zlog.Error("failed to start match digest scheduler", zap.Error(err))
		} else {
			defer digest.Stop()
		}
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	addr := ":" + cfg.Server.Port
	zlog.Info("server starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}

func startWorkerServer(cfg *config.Config, talentRepo *repository.TalentRepository, jobRepo *repository.JobRepository, limiter *ratelimit.NotifyLimiter, messengerClient *messenger.Client, zlog *zap.Logger) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: cfg.Queue.Concurrency,
			Queues: map[string]int{
				queue.TaskNotifyTalent:  4,
				queue.TaskPublishJob:    3,
				queue.TaskPublishTalent: 3,
			},
			RetryDelayFunc: queue.RetryDelay(cfg.Queue.BackoffBase),
		},
	)

	// Create workers
	publishTalentWorker := worker.NewPublishTalentWorker(talentRepo, messengerClient, zlog)
	publishJobWorker := worker.NewPublishJobWorker(jobRepo, messengerClient, cfg.Messenger.BroadcastChannel, zlog)
	notifyTalentWorker := worker.NewNotifyTalentWorker(talentRepo, jobRepo, limiter, messengerClient, zlog)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskPublishTalent, publishTalentWorker.ProcessTask)
	mux.HandleFunc(queue.TaskPublishJob, publishJobWorker.ProcessTask)
	mux.HandleFunc(queue.TaskNotifyTalent, notifyTalentWorker.ProcessTask)

	if err := srv.Run(mux); err != nil {
		zlog.Error("asynq worker error", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return response.Error(c, code, response.CodeServiceError, message, nil)
}
