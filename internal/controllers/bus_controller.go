package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus_transport/internal/service"
)

type BusController struct {
	buses *service.BusService
}

func NewBusController(buses *service.BusService) *BusController {
	return &BusController{buses: buses}
}

func (ct *BusController) List(c *gin.Context) {
	listings, err := ct.buses.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": listings})
}

func (ct *BusController) Create(c *gin.Context) {
	var input service.BusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus input: " + err.Error()})
		return
	}

	bus, err := ct.buses.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bus": bus})
}

func (ct *BusController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input service.BusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus input: " + err.Error()})
		return
	}

	bus, err := ct.buses.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus": bus})
}

func (ct *BusController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ct.buses.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bus deleted successfully!"})
}
