package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/config"
	"github.com/sahajranjan/jobportal/database"
	_ "github.com/sahajranjan/jobportal/docs"
	"github.com/sahajranjan/jobportal/internal/controller"
	adminctrl "github.com/sahajranjan/jobportal/internal/controller/admin"
	userctrl "github.com/sahajranjan/jobportal/internal/controller/user"
	"github.com/sahajranjan/jobportal/internal/logger"
	"github.com/sahajranjan/jobportal/internal/middleware"
	"github.com/sahajranjan/jobportal/internal/model"
	"github.com/sahajranjan/jobportal/internal/repository"
	"github.com/sahajranjan/jobportal/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Job Portal API
// @version 1.0
// @description API for mock tests, eligibility gated job applications, interviews and admin management.
// @host localhost:8080
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
			middleware.NewTokenManager,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewTestRepository,
			repository.NewAssignedTestRepository,
			repository.NewJobRepository,
			repository.NewApplicationRepository,
			repository.NewInterviewRepository,
		),

		// Services
		fx.Provide(
			func(tm *middleware.TokenManager) service.TokenSigner { return tm.Sign },
			service.NewAuthService,
			service.NewEligibilityService,
			service.NewTestAdminService,
			service.NewTestTakingService,
			service.NewJobService,
			service.NewApplicationService,
			service.NewInterviewService,
			service.NewUserAdminService,
			service.NewCoverLetterService,
		),

		// Controllers
		fx.Provide(
			controller.NewAuthController,
			controller.NewCoverLetterController,
			adminctrl.NewTestAdminController,
			adminctrl.NewUserManagementController,
			adminctrl.NewApplicationManagementController,
			adminctrl.NewJobAdminController,
			userctrl.NewTestController,
			userctrl.NewJobController,
			userctrl.NewInterviewController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
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
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tm *middleware.TokenManager,
	authCtrl *controller.AuthController,
	coverLetterCtrl *controller.CoverLetterController,
	testAdminCtrl *adminctrl.TestAdminController,
	userMgmtCtrl *adminctrl.UserManagementController,
	appMgmtCtrl *adminctrl.ApplicationManagementController,
	jobAdminCtrl *adminctrl.JobAdminController,
	testCtrl *userctrl.TestController,
	jobCtrl *userctrl.JobController,
	interviewCtrl *userctrl.InterviewController,
) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	tests := api.Group("/tests")
	{
		// Candidate-facing test routes accept either a bearer token or
		// an explicit candidateId query parameter.
		tests.GET("/all", testCtrl.ListTests)
		tests.GET("/my", tm.OptionalAuth(), testCtrl.MyTests)
		tests.POST("/submit", tm.OptionalAuth(), testCtrl.SubmitTest)
		tests.GET("/eligibility", tm.OptionalAuth(), testCtrl.Eligibility)

		admin := tests.Group("", tm.RequireAuth(), middleware.RequireRole(model.RoleAdmin))
		{
			admin.POST("/create", testAdminCtrl.CreateTest)
			admin.POST("/assign", testAdminCtrl.AssignTest)
			admin.GET("/assigned", testAdminCtrl.ListAssignedTests)
			admin.PUT("/:id", testAdminCtrl.UpdateTest)
			admin.DELETE("/:id", testAdminCtrl.DeleteTest)
		}
		tests.GET("/:id", testCtrl.GetTest)
	}

	jobs := api.Group("/userjobs")
	{
		jobs.GET("", jobCtrl.ListJobs)
		jobs.GET("/applied", tm.OptionalAuth(), jobCtrl.MyApplications)
		jobs.GET("/:id", jobCtrl.GetJob)
		jobs.POST("/:id/apply", tm.OptionalAuth(), jobCtrl.Apply)

		admin := jobs.Group("", tm.RequireAuth(), middleware.RequireRole(model.RoleAdmin))
		{
			admin.POST("", jobAdminCtrl.CreateJob)
			admin.PATCH("/:id", jobAdminCtrl.UpdateJob)
			admin.DELETE("/:id", jobAdminCtrl.DeleteJob)
		}
	}

	applications := api.Group("/manageapplication", tm.RequireAuth(), middleware.RequireRole(model.RoleAdmin))
	{
		applications.GET("", appMgmtCtrl.List)
		applications.POST("", appMgmtCtrl.Create)
		applications.GET("/:id", appMgmtCtrl.Get)
		applications.PUT("/:id", appMgmtCtrl.UpdateStatus)
		applications.DELETE("/:id", appMgmtCtrl.Delete)
	}

	interviews := api.Group("/interviews", tm.RequireAuth())
	{
		interviews.GET("", interviewCtrl.List)
		interviews.GET("/:id", interviewCtrl.Get)
		interviews.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleInterviewer), interviewCtrl.Create)
		interviews.PUT("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleInterviewer), interviewCtrl.Update)
		interviews.DELETE("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleInterviewer), interviewCtrl.Delete)
	}

	users := api.Group("/manageusers", tm.RequireAuth(), middleware.RequireRole(model.RoleAdmin))
	{
		users.GET("/activity", userMgmtCtrl.Activity)
		users.GET("/roles", userMgmtCtrl.RoleCounts)
		users.GET("/export", userMgmtCtrl.Export)
	}

	api.POST("/coverletter/generate", tm.OptionalAuth(), coverLetterCtrl.Generate)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Job portal API server starting on port %s", cfg.Server.Port)
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
		&model.Test{},
		&model.Question{},
		&model.AssignedTest{},
		&model.AnswerResult{},
		&model.Job{},
		&model.Application{},
		&model.ApplicationStatusEvent{},
		&model.Interview{},
		&model.InterviewStatusEvent{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
