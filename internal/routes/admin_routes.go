package routes

import (
	"github.com/gin-gonic/gin"

	"campus_transport/internal/controllers"
	"campus_transport/internal/middleware"
	"campus_transport/internal/models"
	"campus_transport/internal/session"
)

// AdminRoutes mounts the whole management surface behind the admin role.
// Every mutating operation also requires the session's anti-forgery token.
func AdminRoutes(
	r *gin.Engine,
	sessions *session.Manager,
	students *controllers.StudentController,
	buses *controllers.BusController,
	routeCtrl *controllers.RouteController,
	drivers *controllers.DriverController,
	dashboard *controllers.DashboardController,
) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(sessions, models.RoleAdmin))
	csrf := middleware.RequireCSRF()
	{
		admin.GET("/dashboard", dashboard.AdminCounts)

		admin.GET("/students", students.List)
		admin.POST("/students", csrf, students.Create)
		admin.PUT("/students/:id", csrf, students.Update)
		admin.DELETE("/students/:id", csrf, students.Delete)

		admin.GET("/buses", buses.List)
		admin.POST("/buses", csrf, buses.Create)
		admin.PUT("/buses/:id", csrf, buses.Update)
		admin.DELETE("/buses/:id", csrf, buses.Delete)

		admin.GET("/routes", routeCtrl.List)
		admin.POST("/routes", csrf, routeCtrl.Create)
		admin.PUT("/routes/:id", csrf, routeCtrl.Update)
		admin.DELETE("/routes/:id", csrf, routeCtrl.Delete)

		admin.GET("/drivers", drivers.List)
		admin.POST("/drivers", csrf, drivers.Create)
		admin.PUT("/drivers/:id", csrf, drivers.Update)
		admin.DELETE("/drivers/:id", csrf, drivers.Delete)
	}
}
