package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus_transport/internal/middleware"
	"campus_transport/internal/models"
	"campus_transport/internal/service"
)

type AuthController struct {
	auth *service.AuthService
}

func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type loginInput struct {
	Role     string `json:"role" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the table the role selects and returns the
// session tokens. A bad role is treated like bad credentials so the error
// shape never hints at what exists.
func (ct *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := models.ParseRole(input.Role)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials. Please try again."})
		return
	}

	result, err := ct.auth.Login(c.Request.Context(), role, input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      result.Token,
		"csrf_token": result.CSRFToken,
		"user": gin.H{
			"id":   result.UserID,
			"role": result.Role,
			"name": result.Name,
		},
	})
}

// Logout revokes the caller's session.
func (ct *AuthController) Logout(c *gin.Context) {
	token := middleware.BearerToken(c)
	if err := ct.auth.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out successfully."})
}
