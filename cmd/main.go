package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rimamd894-svg/ai-quiz-pro/config"
	"github.com/rimamd894-svg/ai-quiz-pro/database"
	_ "github.com/rimamd894-svg/ai-quiz-pro/docs" // Swagger docs
	"github.com/rimamd894-svg/ai-quiz-pro/internal/controller"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/logger"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/model"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/repository"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title AI Quiz Pro API
// @version 1.0.0
// @description Quiz service with AI-generated questions, scoring, leaderboard, and history.
// @host localhost:8001
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
		),

		fx.Provide(
			service.NewTokenService,
			service.NewAuthService,
			service.NewQuestionGeneratorService,
			func(
				quizRepo repository.QuizRepository,
				userRepo repository.UserRepository,
				generator service.QuestionGeneratorService,
				db *gorm.DB,
			) service.QuizService {
				return service.NewQuizService(quizRepo, userRepo, generator, db)
			},
			service.NewLeaderboardService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewQuizController,
			controller.NewUserController,
			controller.NewStatsController,
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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	quizCtrl *controller.QuizController,
	userCtrl *controller.UserController,
	statsCtrl *controller.StatsController,
	tokens service.TokenService,
	userRepo repository.UserRepository,
) {
	api := router.Group("/api")

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "AI Quiz Pro API"})
	})

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	api.GET("/quiz/categories", quizCtrl.GetCategories)
	api.GET("/leaderboard", statsCtrl.GetLeaderboard)
	api.GET("/stats", statsCtrl.GetStats)

	authRequired := api.Group("")
	authRequired.Use(controller.AuthRequired(tokens, userRepo))
	{
		authRequired.POST("/quiz/generate", quizCtrl.GenerateQuiz)
		authRequired.POST("/quiz/submit", quizCtrl.SubmitQuiz)
		authRequired.GET("/user/profile", userCtrl.GetProfile)
		authRequired.GET("/user/history", userCtrl.GetHistory)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("AI Quiz Pro API server starting on port %s", cfg.Server.Port)
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
		&model.User{},
		&model.Quiz{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
