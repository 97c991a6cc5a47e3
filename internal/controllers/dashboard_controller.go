package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus_transport/internal/middleware"
	"campus_transport/internal/service"
)

// DashboardController serves the admin counts and the role-scoped own-profile
// views.
type DashboardController struct {
	dashboard *service.DashboardService
	profiles  *service.ProfileService
}

func NewDashboardController(dashboard *service.DashboardService, profiles *service.ProfileService) *DashboardController {
	return &DashboardController{dashboard: dashboard, profiles: profiles}
}

func (ct *DashboardController) AdminCounts(c *gin.Context) {
	counts, err := ct.dashboard.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

// StudentDashboard returns the calling student's own joined record. The id
// comes from the session, never from the request.
func (ct *DashboardController) StudentDashboard(c *gin.Context) {
	profile, err := ct.profiles.StudentProfile(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// DriverDashboard returns the calling driver's bus, route and roster.
func (ct *DashboardController) DriverDashboard(c *gin.Context) {
	profile, err := ct.profiles.DriverProfile(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
