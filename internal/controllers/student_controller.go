package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus_transport/internal/service"
)

type StudentController struct {
	students *service.StudentService
}

func NewStudentController(students *service.StudentService) *StudentController {
	return &StudentController{students: students}
}

func (ct *StudentController) List(c *gin.Context) {
	listings, err := ct.students.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": listings})
}

func (ct *StudentController) Create(c *gin.Context) {
	var input service.StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student input: " + err.Error()})
		return
	}

	student, err := ct.students.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"student": student})
}

func (ct *StudentController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input service.StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student input: " + err.Error()})
		return
	}

	student, err := ct.students.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": student})
}

func (ct *StudentController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ct.students.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully!"})
}
