package app

import (
	"github.com/tctinsama/KtigerStudy/docs"
	"github.com/tctinsama/KtigerStudy/internal/config"
	"github.com/tctinsama/KtigerStudy/internal/middleware"
	"github.com/tctinsama/KtigerStudy/internal/model"
	"github.com/tctinsama/KtigerStudy/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerLearnerRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/signup", c.auth.SignUp)
			auth.POST("/signin", c.auth.SignIn)
			auth.POST("/google", c.auth.SignInWithGoogle)
			auth.POST("/forgot-password", c.auth.ForgotPassword)
			auth.POST("/reset-password", c.auth.ResetPassword)
		}

		// 练习场景目录，登录前也可浏览
		public.GET("/chat/scenarios", c.chat.GetScenarios)
		public.GET("/chat/difficulties", c.chat.GetDifficulties)

		// 公开单词集，无需登录即可浏览
		public.GET("/document-lists/public", c.document.GetPublicLists)
		public.GET("/document-lists/public/grouped", c.document.GetPublicListsGrouped)
		public.GET("/document-lists/public/types", c.document.GetPublicTypes)
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	// 账号
	users := rg.Group("/users")
	{
		users.GET("/:id", c.user.GetUser)
		users.PUT("/:id", c.user.UpdateProfile)
		users.PUT("/:id/password", c.user.ChangePassword)
		users.POST("/:id/avatar", c.user.UploadAvatar)
	}

	// 课程内容（只读）
	levels := rg.Group("/levels")
	{
		levels.GET("", c.level.GetLevels)
		levels.GET("/:id", c.level.GetLevel)
	}

	lessons := rg.Group("/lessons")
	{
		lessons.GET("", c.lesson.GetLessonsByLevel)
		lessons.GET("/paged", c.lesson.GetLessonsPaged)
		lessons.GET("/progress", c.lesson.GetLessonsWithProgress)
		lessons.GET("/:id", c.lesson.GetLesson)
		lessons.POST("/complete", c.lesson.CompleteLesson)
	}

	rg.GET("/vocabulary-theories", c.theory.GetVocabularyByLesson)
	rg.GET("/grammar-theories", c.theory.GetGrammarByLesson)

	exercises := rg.Group("/exercises")
	{
		exercises.GET("", c.exercise.GetExercisesByLesson)
		exercises.GET("/:id", c.exercise.GetExercise)
	}

	rg.GET("/mcq", c.question.GetMCQByExercise)
	rg.GET("/sentence-rewriting", c.question.GetSentenceRewritingByExercise)

	results := rg.Group("/user-exercise-results")
	{
		results.POST("", c.exerciseResult.SubmitResult)
		results.GET("/:userId", c.exerciseResult.GetResultsByUser)
		results.GET("/:userId/best/:exerciseId", c.exerciseResult.GetBestScore)
	}

	// 进度与经验
	progress := rg.Group("/user-progress")
	{
		progress.POST("/complete", c.progress.CompleteLesson)
		progress.GET("/:userId", c.progress.GetUserProgress)
	}

	xp := rg.Group("/user-xp")
	{
		xp.GET("/leaderboard", c.xp.GetLeaderboard)
		xp.GET("/:userId", c.xp.GetUserXP)
		xp.POST("/add", c.xp.AddXP)
	}

	rg.GET("/level-xp", c.levelXP.GetAll)
	rg.GET("/level-xp/:levelNumber", c.levelXP.GetByLevelNumber)

	// 单词集
	documentLists := rg.Group("/document-lists")
	{
		documentLists.POST("", c.document.CreateList)
		documentLists.GET("", c.document.GetListsByUser)
		documentLists.GET("/:id", c.document.GetList)
		documentLists.PUT("/:id", c.document.UpdateList)
		documentLists.PUT("/:id/visibility", c.document.SetVisibility)
		documentLists.DELETE("/:id", c.document.DeleteList)
		documentLists.GET("/:id/export", c.document.ExportList)
		documentLists.POST("/:id/import", c.document.ImportList)
	}

	documentItems := rg.Group("/document-items")
	{
		documentItems.POST("", c.documentItem.CreateItem)
		documentItems.GET("", c.documentItem.GetItemsByList)
		documentItems.PUT("/:id", c.documentItem.UpdateItem)
		documentItems.DELETE("/:id", c.documentItem.DeleteItem)
	}

	favorites := rg.Group("/favorite-lists")
	{
		favorites.POST("", c.documentSocial.AddFavorite)
		favorites.DELETE("", c.documentSocial.RemoveFavorite)
		favorites.GET("/check", c.documentSocial.IsFavorite)
		favorites.GET("/count", c.documentSocial.GetFavoriteCount)
		favorites.GET("/:userId", c.documentSocial.GetFavorites)
	}

	rg.POST("/document-reports", c.documentSocial.ReportList)

	// 班级
	classes := rg.Group("/classes")
	{
		classes.POST("", c.class.CreateClass)
		classes.GET("", c.class.GetClasses)
		classes.GET("/:id", c.class.GetClass)
		classes.PUT("/:id", c.class.UpdateClass)
		classes.DELETE("/:id", c.class.DeleteClass)
	}

	classUsers := rg.Group("/class-users")
	{
		classUsers.POST("/join", c.class.JoinClass)
		classUsers.DELETE("", c.class.LeaveClass)
		classUsers.GET("/user/:userId", c.class.GetUserClasses)
		classUsers.GET("/:classId", c.class.GetClassMembers)
		classUsers.GET("/:classId/count", c.class.GetMemberCount)
	}

	classLists := rg.Group("/class-document-lists")
	{
		classLists.POST("", c.class.ShareList)
		classLists.DELETE("", c.class.UnshareList)
		classLists.GET("/:classId", c.class.GetClassLists)
	}

	// 会话练习
	chat := rg.Group("/chat")
	{
		chat.POST("/conversations", c.chat.CreateConversation)
		chat.POST("/conversations/:id/messages", c.chat.SendMessage)
		chat.GET("/conversations/:id/messages", c.chat.GetMessages)
		chat.DELETE("/conversations/:id", c.chat.DeleteConversation)
		chat.GET("/users/:userId/conversations", c.chat.GetUserConversations)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("")
	admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
	{
		// 学员管理
		admin.GET("/users", c.user.GetLearners)
		admin.GET("/users/by-email", c.user.GetUserByEmail)
		admin.PUT("/users/freeze", c.user.FreezeUsersBulk)
		admin.PUT("/users/unfreeze", c.user.UnfreezeUsersBulk)
		admin.PUT("/users/:id/freeze", c.user.FreezeUser)
		admin.PUT("/users/:id/unfreeze", c.user.UnfreezeUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)

		// 课程内容维护
		admin.POST("/levels", c.level.CreateLevel)
		admin.PUT("/levels/:id", c.level.UpdateLevel)
		admin.DELETE("/levels/:id", c.level.DeleteLevel)

		admin.POST("/lessons", c.lesson.CreateLesson)
		admin.PUT("/lessons/:id", c.lesson.UpdateLesson)
		admin.DELETE("/lessons/:id", c.lesson.DeleteLesson)

		admin.POST("/vocabulary-theories", c.theory.CreateVocabulary)
		admin.PUT("/vocabulary-theories/:id", c.theory.UpdateVocabulary)
		admin.DELETE("/vocabulary-theories/:id", c.theory.DeleteVocabulary)

		admin.POST("/grammar-theories", c.theory.CreateGrammar)
		admin.PUT("/grammar-theories/:id", c.theory.UpdateGrammar)
		admin.DELETE("/grammar-theories/:id", c.theory.DeleteGrammar)

		admin.POST("/exercises", c.exercise.CreateExercise)
		admin.PUT("/exercises/:id", c.exercise.UpdateExercise)
		admin.DELETE("/exercises/:id", c.exercise.DeleteExercise)

		admin.POST("/mcq", c.question.CreateMCQ)
		admin.PUT("/mcq/:id", c.question.UpdateMCQ)
		admin.DELETE("/mcq/:id", c.question.DeleteMCQ)

		admin.POST("/sentence-rewriting", c.question.CreateSentenceRewriting)
		admin.PUT("/sentence-rewriting/:id", c.question.UpdateSentenceRewriting)
		admin.DELETE("/sentence-rewriting/:id", c.question.DeleteSentenceRewriting)

		// 等级阈值维护
		admin.PUT("/level-xp", c.levelXP.Upsert)
		admin.DELETE("/level-xp/:levelNumber", c.levelXP.Delete)

		// 举报处理
		admin.GET("/document-reports", c.documentSocial.GetReports)
		admin.DELETE("/document-reports/:id", c.documentSocial.DeleteReport)
	}
}
