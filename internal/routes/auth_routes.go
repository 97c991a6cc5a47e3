package routes

import (
	"github.com/gin-gonic/gin"

	"campus_transport/internal/controllers"
	"campus_transport/internal/middleware"
	"campus_transport/internal/session"
)

func AuthRoutes(r *gin.Engine, sessions *session.Manager, auth *controllers.AuthController) {
	group := r.Group("/auth")
	{
		group.POST("/login", auth.Login)
		group.POST("/logout", middleware.RequireAuth(sessions), auth.Logout)
	}
}
