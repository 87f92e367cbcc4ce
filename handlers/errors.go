// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	permissionsRepo "lakehouse/database/repository/permissions"
	"lakehouse/models"
	"lakehouse/services/admin"
	"lakehouse/services/reservation"
	"lakehouse/services/rounds"
)

// respondError maps service errors onto HTTP statuses. Validation failures
// and eligibility denials are expected outcomes with user-facing messages;
// everything else surfaces as an opaque store failure.
func respondError(c *gin.Context, err error) {
	var notEligible reservation.NotEligibleError
	var configErr rounds.ConfigurationError

	switch {
	case errors.Is(err, models.ErrGuestNameRequired),
		errors.Is(err, models.ErrBookerRequired),
		errors.Is(err, models.ErrEndBeforeStart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notEligible):
		c.JSON(http.StatusForbidden, gin.H{"error": notEligible.Reason})
	case errors.As(err, &configErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": configErr.Error()})
	case errors.Is(err, admin.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Administrator access required."})
	case errors.Is(err, permissionsRepo.ErrPermissionsMissing):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Permissions are not configured."})
	case status.Code(err) == codes.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
