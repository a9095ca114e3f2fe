package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/database"
	"github.com/lshigami/campuspulse/internal/auth"
	adminctrl "github.com/lshigami/campuspulse/internal/controller/admin"
	userctrl "github.com/lshigami/campuspulse/internal/controller/user"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/middleware"
	"github.com/lshigami/campuspulse/internal/model"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Controllers groups every handler so RegisterRoutes keeps a short signature.
type Controllers struct {
	fx.In

	Auth       *userctrl.AuthController
	Department *userctrl.DepartmentController
	Survey     *userctrl.SurveyController
	Question   *adminctrl.QuestionController
	Analytics  *adminctrl.AnalyticsController
	Student    *adminctrl.StudentController
}

func RegisterRoutes(router *gin.Engine, db *gorm.DB, tokens *auth.TokenManager, c Controllers) {
	router.GET("/health", healthHandler(db))

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", c.Auth.Register)
		authGroup.POST("/login", c.Auth.Login)
		authGroup.POST("/logout", c.Auth.Logout)

		api.GET("/departments", c.Department.ListDepartments)
	}

	student := api.Group("/student", middleware.Authenticate(tokens), middleware.RequireRole(model.RoleStudent))
	{
		student.GET("/questions", c.Survey.GetQuestions)
		student.GET("/survey", c.Survey.GetMySurvey)
		student.POST("/survey", c.Survey.SubmitSurvey)
		student.DELETE("/survey", c.Survey.ClearMySurvey)
	}

	admin := api.Group("/admin", middleware.Authenticate(tokens), middleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("/questions", c.Question.ListQuestions)
		admin.POST("/questions", c.Question.CreateQuestion)
		admin.PUT("/questions/:id", c.Question.UpdateQuestion)
		admin.DELETE("/questions/:id", c.Question.DeleteQuestion)

		admin.GET("/stats", c.Analytics.GetStats)
		admin.GET("/responses", c.Analytics.ListResponses)
		admin.GET("/responses/:id", c.Analytics.GetResponse)
		admin.GET("/insights", c.Analytics.GetInsights)

		admin.GET("/students", c.Student.ListStudents)
		admin.DELETE("/students/:id", c.Student.DeleteStudent)
	}
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := database.Ping(db); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{OK: false, Name: "campuspulse", Database: "unreachable"})
			return
		}
		ctx.JSON(http.StatusOK, dto.HealthResponse{OK: true, Name: "campuspulse", Database: "ok"})
	}
}
