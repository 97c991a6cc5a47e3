// Package controllers holds the thin gin handlers: bind input, call the
// service, map the failure taxonomy to a status code. No query text, no
// authorization rules.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campus_transport/internal/apperrors"
)

// idParam parses the :id path segment. The second return is false after an
// error response has already been written.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps a domain failure to its HTTP shape. Anything outside the
// taxonomy is a 500 with a generic message; the detail goes to the log, not
// the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials. Please try again."})
	case errors.Is(err, apperrors.ErrSessionInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	case errors.Is(err, apperrors.ErrCSRFMismatch):
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid security token. Please try again."})
	case errors.Is(err, apperrors.ErrPasswordRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required!"})
	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrDriverNotFound),
		errors.Is(err, apperrors.ErrRouteNotFound),
		errors.Is(err, apperrors.ErrBusNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRollNumberExists),
		errors.Is(err, apperrors.ErrBusNumberExists),
		errors.Is(err, apperrors.ErrUsernameExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
