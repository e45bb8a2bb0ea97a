package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	"trivia_backend/internal/config"
	"trivia_backend/internal/controller"
	"trivia_backend/internal/middleware"
	"trivia_backend/internal/repository"
	"trivia_backend/internal/service"
	"trivia_backend/pkg/configwatcher"
	"trivia_backend/pkg/database"
	"trivia_backend/pkg/logger"
	"trivia_backend/pkg/monitoring"
	"trivia_backend/pkg/security"
	"trivia_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Runtime         *config.Runtime
	Router          *gin.Engine
	DB              *gorm.DB
	tracer          *trace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	question *repository.QuestionRepository
	category *repository.CategoryRepository
}

type services struct {
	category *service.CategoryService
	question *service.QuestionService
	quiz     *service.QuizService
}

type controllers struct {
	category *controller.CategoryController
	question *controller.QuestionController
	quiz     *controller.QuizController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		question: repository.NewQuestionRepository(db),
		category: repository.NewCategoryRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}

	s.category = service.NewCategoryService(repos.category)
	s.question = service.NewQuestionService(repos.question, s.category)
	s.quiz = service.NewQuizService(repos.question)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		category: controller.NewCategoryController(s.category, s.question, a.Runtime),
		question: controller.NewQuestionController(s.question, s.category, a.Runtime),
		quiz:     controller.NewQuizController(s.quiz),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := newApp(cfg, db)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

// newApp wires the HTTP stack around an already opened store.
func newApp(cfg *config.Config, db *gorm.DB) *App {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	app := &App{
		Config:  cfg,
		Runtime: config.NewRuntime(cfg),
		DB:      db,
	}
	app.RegisterConfigCallback(app.Runtime.Apply)

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	watchCtx, stopWatching := context.WithCancel(context.Background())
	defer stopWatching()
	if a.Config.Dir != "" {
		go func() {
			path := filepath.Join(a.Config.Dir, "config.yaml")
			if err := configwatcher.WatchConfig(watchCtx, path, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
