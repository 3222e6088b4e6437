package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trait_tracer_backend/internal/config"
	"trait_tracer_backend/internal/controller"
	"trait_tracer_backend/internal/repository"
	"trait_tracer_backend/internal/service"
	"trait_tracer_backend/pkg/database"
	"trait_tracer_backend/pkg/logger"
	"trait_tracer_backend/pkg/monitoring"
	"trait_tracer_backend/pkg/security"
	"trait_tracer_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	rateLimiter     *security.IPRateLimiter
	sweepCancel     context.CancelFunc
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	organization *repository.OrganizationRepository
	job          *repository.JobRepository
	candidate    *repository.CandidateRepository
	application  *repository.ApplicationRepository
	assessment   *repository.AssessmentRepository
	analytics    *repository.AnalyticsRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	gemini       *service.GeminiService
	question     *service.QuestionService
	evaluation   *service.EvaluationService
	github       *service.GithubService
	organization *service.OrganizationService
	job          *service.JobService
	application  *service.ApplicationService
	assessment   *service.AssessmentService
	dashboard    *service.DashboardService
	preference   *service.PreferenceService
}

type controllers struct {
	auth         *controller.AuthController
	organization *controller.OrganizationController
	job          *controller.JobController
	application  *controller.ApplicationController
	assessment   *controller.AssessmentController
	dashboard    *controller.DashboardController
	preference   *controller.PreferenceController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// registerConfigCallbacks hooks the reloadable settings into ApplyConfig:
// session duration for new sessions and the per-IP rate limits.
func (a *App) registerConfigCallbacks(s *services) {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.assessment.SetDuration(time.Duration(cfg.Assessment.DurationSeconds) * time.Second)
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		if a.rateLimiter != nil {
			a.rateLimiter.SetLimits(cfg.RateLimit.MaxRequests,
				time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
		}
	})
}

// ApplyConfig absorbs a hot-reloaded config. Only settings that are read per
// request or per tick take effect; server wiring keeps its boot-time values.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config.Assessment = cfg.Assessment
	a.Config.RateLimit = cfg.RateLimit
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		organization: repository.NewOrganizationRepository(db),
		job:          repository.NewJobRepository(db),
		candidate:    repository.NewCandidateRepository(db),
		application:  repository.NewApplicationRepository(db),
		assessment:   repository.NewAssessmentRepository(db),
		analytics:    repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)

	gemini, err := service.NewGeminiService(cfg.Gemini)
	if err != nil {
		logger.Log.Warn("generative client unavailable, fallback content only", zap.Error(err))
		disabled := cfg.Gemini
		disabled.Disabled = true
		gemini, _ = service.NewGeminiService(disabled)
	}
	s.gemini = gemini
	s.question = service.NewQuestionService(gemini)
	s.evaluation = service.NewEvaluationService(gemini)
	s.github = service.NewGithubService(cfg.Github)

	s.organization = service.NewOrganizationService(repos.organization)
	s.job = service.NewJobService(repos.job, repos.organization)
	s.application = service.NewApplicationService(repos.application, repos.candidate, repos.job, repos.organization, s.github)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.application,
		s.question, s.evaluation, time.Duration(cfg.Assessment.DurationSeconds)*time.Second)
	s.dashboard = service.NewDashboardService(repos.analytics, repos.organization, repos.application, repos.candidate, rdb)
	s.preference = service.NewPreferenceService(rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		organization: controller.NewOrganizationController(s.organization, s.storage),
		job:          controller.NewJobController(s.job),
		application:  controller.NewApplicationController(s.application),
		assessment:   controller.NewAssessmentController(s.assessment, s.application),
		dashboard:    controller.NewDashboardController(s.dashboard),
		preference:   controller.NewPreferenceController(s.preference),
		health:       controller.NewHealthController(db, rdb, s.gemini),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.rateLimiter = security.NewIPRateLimiter(cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	router.Use(a.rateLimiter.Middleware())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks runs the deadline sweep that force-evaluates sessions
// whose countdown expired without a submit.
func (a *App) startBackgroundTasks(s *services) {
	ctx, cancel := context.WithCancel(context.Background())
	a.sweepCancel = cancel

	interval := time.Duration(a.Config.Assessment.SweepSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.assessment.SweepExpired(ctx)
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	// Release installs migrate only when asked; debug installs always do.
	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("trait-tracer", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)
	app.registerConfigCallbacks(services)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.sweepCancel != nil {
		a.sweepCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
