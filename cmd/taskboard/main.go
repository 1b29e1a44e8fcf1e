package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/application/project"
	"github.com/kalbaitzer/taskboard/internal/application/report"
	"github.com/kalbaitzer/taskboard/internal/application/task"
	"github.com/kalbaitzer/taskboard/internal/application/user"
	"github.com/kalbaitzer/taskboard/internal/config"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/cache"
	httprouter "github.com/kalbaitzer/taskboard/internal/infrastructure/http"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/http/handlers"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/http/middleware"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/persistence/postgres"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/webhook"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	uow := postgres.NewUnitOfWork(pool)
	repos := postgres.NewRepoSet(pool)
	clock := ports.UTCClock{}

	var emitter ports.WebhookEmitter
	if cfg.Webhook.URL != "" {
		emitter = webhook.NewHTTPEmitter(cfg.Webhook.URL)
	} else {
		emitter = webhook.NewNoopEmitter()
	}

	var reportCache report.Cache
	if redisClient != nil {
		reportCache = cache.NewReportCache(redisClient, cfg.Redis.ReportTTL)
	}

	tasksHandler := handlers.NewTasksHandler(
		task.NewCreateTask(uow, clock),
		task.NewListProjectTasks(repos.Users, repos.Projects, repos.Tasks),
		task.NewGetTask(repos.Users, repos.Tasks),
		task.NewUpdateTaskDetails(uow, clock),
		task.NewUpdateTaskStatus(uow, clock),
		task.NewAddComment(uow, clock),
		task.NewDeleteTask(uow),
		task.NewGetTaskHistory(repos.Users, repos.Tasks, repos.History),
		emitter,
		log,
	)
	projectsHandler := handlers.NewProjectsHandler(
		project.NewCreateProject(uow, clock),
		project.NewListUserProjects(repos.Users, repos.Projects),
		project.NewGetProject(repos.Users, repos.Projects),
		project.NewDeleteProject(uow),
		emitter,
		log,
	)
	usersHandler := handlers.NewUsersHandler(
		user.NewRegisterUser(uow, clock),
		user.NewGetUser(repos.Users),
		user.NewListUsers(repos.Users),
		user.NewDeleteUser(uow),
		log,
	)
	reportsHandler := handlers.NewReportsHandler(
		report.NewPerformance(repos.Users, repos.Tasks, clock, reportCache, log),
		log,
	)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.Limits.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	userLimit, err := middleware.NewUserRateLimiter(cfg.Limits.RatePerUser)
	if err != nil {
		log.Fatal().Err(err).Msg("create user rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.DevMode))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		TasksHandler:    tasksHandler,
		ProjectsHandler: projectsHandler,
		UsersHandler:    usersHandler,
		ReportsHandler:  reportsHandler,
		HealthHandler:   healthHandler,
		Log:             log,
		Secure:          secureMiddleware,
		IPRateLimit:     ipLimit,
		UserRateLimit:   userLimit,
		Metrics:         true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
