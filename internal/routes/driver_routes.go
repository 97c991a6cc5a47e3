package routes

import (
	"github.com/gin-gonic/gin"

	"campus_transport/internal/controllers"
	"campus_transport/internal/middleware"
	"campus_transport/internal/models"
	"campus_transport/internal/session"
)

func DriverRoutes(r *gin.Engine, sessions *session.Manager, dashboard *controllers.DashboardController) {
	driver := r.Group("/driver")
	driver.Use(middleware.RequireRole(sessions, models.RoleDriver))
	{
		driver.GET("/dashboard", dashboard.DriverDashboard)
	}
}
