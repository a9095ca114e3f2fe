package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/config"
	"github.com/lshigami/campuspulse/database"
	_ "github.com/lshigami/campuspulse/docs" // Swagger docs
	"github.com/lshigami/campuspulse/internal/auth"
	"github.com/lshigami/campuspulse/internal/cache"
	adminctrl "github.com/lshigami/campuspulse/internal/controller/admin"
	userctrl "github.com/lshigami/campuspulse/internal/controller/user"
	"github.com/lshigami/campuspulse/internal/logger"
	"github.com/lshigami/campuspulse/internal/repository"
	"github.com/lshigami/campuspulse/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title CampusPulse Survey API
// @version 1.0
// @description Student happiness survey with scoring, department rollups and admin analytics.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init("info")

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			cache.NewStatsCache,
			auth.NewTokenManager,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewDepartmentRepository,
			repository.NewUserRepository,
			repository.NewSurveyResponseRepository,
		),

		// Services
		fx.Provide(
			service.NewAuthService,
			service.NewDepartmentService,
			service.NewQuestionService,
			service.NewSurveyService,
			service.NewAnalyticsService,
			service.NewStudentService,
			service.NewTextGenerator,
			service.NewInsightService,
		),

		// Controllers
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewDepartmentController,
			userctrl.NewSurveyController,
			adminctrl.NewQuestionController,
			adminctrl.NewAnalyticsController,
			adminctrl.NewStudentController,
		),

		fx.Invoke(
			configureLogging,
			PrepareDatabase,
			RegisterRoutes,
			StartServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown finished with errors")
	}
}

func configureLogging(cfg *config.Config) {
	logger.Init(cfg.LogLevel)
	log.Debug().Interface("config", cfg.Redacted()).Msg("Configuration loaded")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// PrepareDatabase migrates the schema and seeds reference data when enabled.
func PrepareDatabase(lc fx.Lifecycle, db *gorm.DB, cfg *config.Config) error {
	if err := database.Migrate(db); err != nil {
		return err
	}
	if cfg.Seed.OnStart {
		opts := database.SeedOptions{AdminUsername: cfg.Seed.AdminUsername, AdminPassword: cfg.Seed.AdminPassword}
		if err := database.Seed(context.Background(), db, opts); err != nil {
			log.Error().Err(err).Msg("Database seed failed")
			return err
		}
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	return nil
}

// StartServer binds the router to the configured port and closes backing clients on stop.
func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, stats cache.StatsCache, generator service.TextGenerator) {
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Survey API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			if generator == nil {
				log.Warn().Msg("GEMINI_API_KEY not set, insights are disabled")
			}
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			err := server.Shutdown(shutdownCtx)
			if cerr := stats.Close(); cerr != nil {
				log.Warn().Err(cerr).Msg("Closing stats cache failed")
			}
			if c, ok := generator.(io.Closer); ok {
				if cerr := c.Close(); cerr != nil {
					log.Warn().Err(cerr).Msg("Closing text generator failed")
				}
			}
			return err
		},
	})
}
