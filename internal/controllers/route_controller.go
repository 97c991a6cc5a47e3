package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus_transport/internal/service"
)

type RouteController struct {
	routes *service.RouteService
}

func NewRouteController(routes *service.RouteService) *RouteController {
	return &RouteController{routes: routes}
}

func (ct *RouteController) List(c *gin.Context) {
	routes, err := ct.routes.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": routes})
}

func (ct *RouteController) Create(c *gin.Context) {
	var input service.RouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route input: " + err.Error()})
		return
	}

	route, err := ct.routes.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"route": route})
}

func (ct *RouteController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input service.RouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route input: " + err.Error()})
		return
	}

	route, err := ct.routes.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

func (ct *RouteController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ct.routes.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Route deleted successfully!"})
}
