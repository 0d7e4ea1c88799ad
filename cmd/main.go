package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"quizdesk/config"
	"quizdesk/database"
	_ "quizdesk/docs" // Swagger docs - auto-generated
	adminctrl "quizdesk/internal/controller/admin"
	userctrl "quizdesk/internal/controller/user"
	"quizdesk/internal/logger"
	"quizdesk/internal/middleware"
	"quizdesk/internal/model"
	"quizdesk/internal/repository"
	"quizdesk/internal/service"
)

// @title QuizDesk API
// @version 1.0
// @description Student quiz-taking platform: browse and attempt published MCQ quizzes, scored results with leaderboards, and an admin console for authoring, AI-assisted extraction and notifications.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewAttemptRepository,
			repository.NewStudentProfileRepository,
			repository.NewNotificationRepository,
		),

		// Services layer
		fx.Provide(
			service.NewQuizService,
			service.NewSubmissionService,
			service.NewAdminQuizService,
			service.NewStudentService,
			service.NewNotificationService,
			service.NewAuthService,
			service.NewExtractService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewQuizController,
			userctrl.NewStudentController,
			userctrl.NewNotificationController,
			adminctrl.NewAuthController,
			adminctrl.NewQuizController,
			adminctrl.NewNotificationController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route Gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	quizCtrl *userctrl.QuizController,
	studentCtrl *userctrl.StudentController,
	notificationCtrl *userctrl.NotificationController,
	adminAuthCtrl *adminctrl.AuthController,
	adminQuizCtrl *adminctrl.QuizController,
	adminNotificationCtrl *adminctrl.NotificationController,
) {
	api := router.Group("/api/v1")
	{
		api.GET("/quizzes", quizCtrl.ListQuizzes)
		api.GET("/quizzes/:quiz_id", quizCtrl.GetQuiz)
		api.POST("/quizzes/:quiz_id/attempts", quizCtrl.SubmitAttempt)
		api.GET("/attempts/:attempt_id", quizCtrl.GetAttemptResult)

		api.POST("/students", studentCtrl.Register)
		api.POST("/students/login", studentCtrl.Login)
		api.GET("/students/:student_id/attempts", studentCtrl.GetAttemptHistory)

		api.GET("/notifications", notificationCtrl.ListActive)
		api.POST("/notifications/:notification_id/read", notificationCtrl.MarkRead)
		api.POST("/notifications/read-all", notificationCtrl.MarkAllRead)
	}

	adminAPI := router.Group("/api/v1/admin")
	{
		adminAPI.POST("/login", adminAuthCtrl.Login)
		adminAPI.POST("/verify", adminAuthCtrl.Verify)

		protected := adminAPI.Group("", middleware.AdminAuth(authService))
		{
			protected.GET("/quizzes", adminQuizCtrl.ListQuizzes)
			protected.POST("/quizzes", adminQuizCtrl.CreateQuiz)
			protected.GET("/quizzes/:quiz_id", adminQuizCtrl.GetQuiz)
			protected.PUT("/quizzes/:quiz_id", adminQuizCtrl.UpdateQuiz)
			protected.DELETE("/quizzes/:quiz_id", adminQuizCtrl.DeleteQuiz)
			protected.GET("/quizzes/:quiz_id/attempts", adminQuizCtrl.ListAttempts)
			protected.GET("/attempts/:attempt_id", adminQuizCtrl.GetAttemptDetail)
			protected.GET("/stats", adminQuizCtrl.GetStats)
			protected.POST("/extract", adminQuizCtrl.ExtractQuiz)

			protected.GET("/notifications", adminNotificationCtrl.ListNotifications)
			protected.POST("/notifications", adminNotificationCtrl.CreateNotification)
			protected.PUT("/notifications/:notification_id", adminNotificationCtrl.UpdateNotification)
			protected.DELETE("/notifications/:notification_id", adminNotificationCtrl.DeleteNotification)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizDesk API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Attempt{},
		&model.Answer{},
		&model.StudentProfile{},
		&model.Notification{},
		&model.NotificationRead{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
