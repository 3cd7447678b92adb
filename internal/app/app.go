package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"life_score_backend/internal/catalog"
	"life_score_backend/internal/config"
	"life_score_backend/internal/controller"
	"life_score_backend/internal/repository"
	"life_score_backend/internal/service"
	"life_score_backend/internal/util"
	"life_score_backend/pkg/configwatcher"
	"life_score_backend/pkg/database"
	"life_score_backend/pkg/logger"
	"life_score_backend/pkg/monitoring"
	"life_score_backend/pkg/security"
	"life_score_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Redis   *redis.Client
	Catalog *catalog.Registry
}

type repositories struct {
	user *repository.UserRepository
	meta *repository.MetaRepository
	lock *repository.LockRepository
}

type services struct {
	auth       *service.AuthService
	assessment *service.AssessmentService
	symptom    *service.SymptomService
	biomarker  *service.BiomarkerService
	score      *service.ScoreService
	storage    *service.StorageService
	report     *service.ReportService
}

type controllers struct {
	auth       *controller.AuthController
	assessment *controller.AssessmentController
	symptom    *controller.SymptomController
	score      *controller.ScoreController
	admin      *controller.AdminController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user: repository.NewUserRepository(db),
		meta: repository.NewMetaRepository(db),
		lock: repository.NewLockRepository(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	provider, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	s := &services{}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.assessment = service.NewAssessmentService(a.Catalog, repos.meta, repos.lock, repos.user, cfg.Engine.SubmitRetries, cfg.Engine.LockTTLSeconds)
	s.symptom = service.NewSymptomService(repos.meta)
	s.biomarker = service.NewBiomarkerService(repos.meta, cfg.Engine.SubmitRetries)
	s.score = service.NewScoreService(a.Catalog, repos.meta)
	s.storage = service.NewStorageService(provider)
	s.report = service.NewReportService(repos.user, s.score, s.symptom, s.biomarker, s.storage)
	return s, nil
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		assessment: controller.NewAssessmentController(s.assessment, repos.user),
		symptom:    controller.NewSymptomController(s.symptom, s.biomarker),
		score:      controller.NewScoreController(s.score),
		admin:      controller.NewAdminController(repos.user, s.symptom, s.biomarker, s.score, s.report),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Error("Failed to initialize database", zap.Error(err))
		return nil, err
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Error("Failed to migrate database", zap.Error(err))
			return nil, err
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Error("Failed to initialize redis", zap.Error(err))
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: catalog.Default(),
	}

	repos := app.initRepositories(db, rdb)
	svcs, err := app.initServices(repos, cfg)
	if err != nil {
		return nil, err
	}
	ctrls := app.initControllers(svcs, repos, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("life-score-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
			return nil, err
		}
	}

	app.registerRoutes(router, ctrls, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	// Engine tuning follows config file edits without a restart.
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		c, ok := newCfg.(*config.Config)
		if !ok {
			return
		}
		svcs.assessment.Retune(c.Engine.SubmitRetries, c.Engine.LockTTLSeconds)
		logger.Log.Info("Config reloaded",
			zap.Int("submitRetries", c.Engine.SubmitRetries),
			zap.Int("lockTTLSeconds", c.Engine.LockTTLSeconds),
		)
	})

	return app, nil
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
