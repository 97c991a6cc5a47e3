package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"campus_transport/internal/controllers"
	"campus_transport/internal/service"
	"campus_transport/internal/session"
)

// Deps is everything the router needs wired in from main.
type Deps struct {
	Sessions *session.Manager
	Services *service.Services
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()

	// Middleware must be installed before the routes that use it
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	auth := controllers.NewAuthController(deps.Services.Auth)
	students := controllers.NewStudentController(deps.Services.Students)
	buses := controllers.NewBusController(deps.Services.Buses)
	routeCtrl := controllers.NewRouteController(deps.Services.Routes)
	drivers := controllers.NewDriverController(deps.Services.Drivers)
	dashboard := controllers.NewDashboardController(deps.Services.Dashboard, deps.Services.Profiles)

	AuthRoutes(r, deps.Sessions, auth)
	AdminRoutes(r, deps.Sessions, students, buses, routeCtrl, drivers, dashboard)
	StudentRoutes(r, deps.Sessions, dashboard)
	DriverRoutes(r, deps.Sessions, dashboard)

	return r
}
