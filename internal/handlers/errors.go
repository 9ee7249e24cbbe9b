// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/craftloom/handloom-backend/internal/services"
	"github.com/craftloom/handloom-backend/internal/utils"
)

// respondServiceError maps a service error class onto the HTTP taxonomy.
// notFoundMessage names the missing resource; everything outside the known
// classes is a 500 carrying the raw message.
func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, notFoundMessage)
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrOrderMismatch),
		errors.Is(err, services.ErrDuplicateReview):
		utils.BadRequestResponse(c, err.Error())
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
