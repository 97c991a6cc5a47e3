package routes

import (
	"github.com/gin-gonic/gin"

	"campus_transport/internal/controllers"
	"campus_transport/internal/middleware"
	"campus_transport/internal/models"
	"campus_transport/internal/session"
)

func StudentRoutes(r *gin.Engine, sessions *session.Manager, dashboard *controllers.DashboardController) {
	student := r.Group("/student")
	student.Use(middleware.RequireRole(sessions, models.RoleStudent))
	{
		student.GET("/dashboard", dashboard.StudentDashboard)
	}
}
