package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus_transport/internal/service"
)

type DriverController struct {
	drivers *service.DriverService
}

func NewDriverController(drivers *service.DriverService) *DriverController {
	return &DriverController{drivers: drivers}
}

func (ct *DriverController) List(c *gin.Context) {
	drivers, err := ct.drivers.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

func (ct *DriverController) Create(c *gin.Context) {
	var input service.DriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	driver, err := ct.drivers.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

func (ct *DriverController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input service.DriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	driver, err := ct.drivers.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

func (ct *DriverController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ct.drivers.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully!"})
}
