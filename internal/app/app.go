package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/config"
	"github.com/tctinsama/KtigerStudy/internal/controller"
	"github.com/tctinsama/KtigerStudy/internal/repository"
	"github.com/tctinsama/KtigerStudy/internal/service"
	"github.com/tctinsama/KtigerStudy/pkg/database"
	"github.com/tctinsama/KtigerStudy/pkg/logger"
	"github.com/tctinsama/KtigerStudy/pkg/monitoring"
	"github.com/tctinsama/KtigerStudy/pkg/security"
	"github.com/tctinsama/KtigerStudy/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user           *repository.UserRepository
	level          *repository.LevelRepository
	lesson         *repository.LessonRepository
	vocabulary     *repository.VocabularyRepository
	grammar        *repository.GrammarRepository
	exercise       *repository.ExerciseRepository
	mcq            *repository.MCQRepository
	srq            *repository.SentenceRewritingRepository
	exerciseResult *repository.ExerciseResultRepository
	progress       *repository.ProgressRepository
	xp             *repository.XPRepository
	levelXP        *repository.LevelXPRepository
	documentList   *repository.DocumentListRepository
	documentItem   *repository.DocumentItemRepository
	favorite       *repository.FavoriteRepository
	report         *repository.ReportRepository
	class          *repository.ClassRepository
	classUser      *repository.ClassUserRepository
	classDocument  *repository.ClassDocumentRepository
	chat           *repository.ChatRepository
}

type services struct {
	storage        *service.StorageService
	email          *service.EmailService
	gemini         *service.GeminiService
	xp             *service.XPService
	levelXP        *service.LevelXPService
	auth           *service.AuthService
	user           *service.UserService
	level          *service.LevelService
	lesson         *service.LessonService
	progress       *service.ProgressService
	theory         *service.TheoryService
	exercise       *service.ExerciseService
	question       *service.QuestionService
	document       *service.DocumentService
	documentSocial *service.DocumentSocialService
	class          *service.ClassService
	chat           *service.ChatService
}

type controllers struct {
	auth           *controller.AuthController
	user           *controller.UserController
	level          *controller.LevelController
	lesson         *controller.LessonController
	progress       *controller.ProgressController
	xp             *controller.XPController
	levelXP        *controller.LevelXPController
	theory         *controller.TheoryController
	exercise       *controller.ExerciseController
	question       *controller.QuestionController
	exerciseResult *controller.ExerciseResultController
	document       *controller.DocumentController
	documentItem   *controller.DocumentItemController
	documentSocial *controller.DocumentSocialController
	class          *controller.ClassController
	chat           *controller.ChatController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:           repository.NewUserRepository(db),
		level:          repository.NewLevelRepository(db),
		lesson:         repository.NewLessonRepository(db),
		vocabulary:     repository.NewVocabularyRepository(db),
		grammar:        repository.NewGrammarRepository(db),
		exercise:       repository.NewExerciseRepository(db),
		mcq:            repository.NewMCQRepository(db),
		srq:            repository.NewSentenceRewritingRepository(db),
		exerciseResult: repository.NewExerciseResultRepository(db),
		progress:       repository.NewProgressRepository(db),
		xp:             repository.NewXPRepository(db),
		levelXP:        repository.NewLevelXPRepository(db),
		documentList:   repository.NewDocumentListRepository(db),
		documentItem:   repository.NewDocumentItemRepository(db),
		favorite:       repository.NewFavoriteRepository(db),
		report:         repository.NewReportRepository(db),
		class:          repository.NewClassRepository(db),
		classUser:      repository.NewClassUserRepository(db),
		classDocument:  repository.NewClassDocumentRepository(db),
		chat:           repository.NewChatRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.email = service.NewEmailService(cfg.Mail)
	s.gemini = service.NewGeminiService(cfg.Gemini)

	s.xp = service.NewXPService(repos.xp, repos.levelXP, rdb)
	s.levelXP = service.NewLevelXPService(repos.levelXP)
	s.auth = service.NewAuthService(repos.user, s.xp, s.email, cfg)
	s.user = service.NewUserService(repos.user)
	s.level = service.NewLevelService(repos.level)
	s.lesson = service.NewLessonService(repos.lesson, repos.progress, s.xp)
	s.progress = service.NewProgressService(repos.progress, repos.lesson, repos.user)
	s.theory = service.NewTheoryService(repos.vocabulary, repos.grammar)
	s.exercise = service.NewExerciseService(repos.exercise, repos.mcq, repos.srq, repos.exerciseResult)
	s.question = service.NewQuestionService(repos.mcq, repos.srq)
	s.document = service.NewDocumentService(repos.documentList, repos.documentItem)
	s.documentSocial = service.NewDocumentSocialService(repos.favorite, repos.report, repos.documentList)
	s.class = service.NewClassService(repos.class, repos.classUser, repos.classDocument, repos.documentList, repos.user)
	s.chat = service.NewChatService(repos.chat, repos.user, s.gemini)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		user:           controller.NewUserController(s.user, s.storage),
		level:          controller.NewLevelController(s.level),
		lesson:         controller.NewLessonController(s.lesson),
		progress:       controller.NewProgressController(s.progress),
		xp:             controller.NewXPController(s.xp),
		levelXP:        controller.NewLevelXPController(s.levelXP),
		theory:         controller.NewTheoryController(s.theory),
		exercise:       controller.NewExerciseController(s.exercise),
		question:       controller.NewQuestionController(s.question),
		exerciseResult: controller.NewExerciseResultController(s.exercise),
		document:       controller.NewDocumentController(s.document),
		documentItem:   controller.NewDocumentItemController(s.document),
		documentSocial: controller.NewDocumentSocialController(s.documentSocial),
		class:          controller.NewClassController(s.class),
		chat:           controller.NewChatController(s.chat),
		health:         controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 排行榜缓存可降级，Redis不可用时仅告警
		logger.Log.Warn("Failed to initialize redis, leaderboard cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ktiger-study", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}
