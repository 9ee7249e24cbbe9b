// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/craftloom/handloom-backend/internal/models"
	"github.com/craftloom/handloom-backend/internal/services"
	"github.com/craftloom/handloom-backend/internal/utils"
)

// AdminHandler covers the review moderation queue. User administration lives
// on the users resource itself.
type AdminHandler struct {
	reviewService *services.ReviewService
}

func NewAdminHandler(reviewService *services.ReviewService) *AdminHandler {
	return &AdminHandler{
		reviewService: reviewService,
	}
}

// GET /api/admin/reviews
func (h *AdminHandler) ListReviews(c *gin.Context) {
	var status *models.ReviewStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.ReviewStatus(statusStr)
		if !s.Valid() {
			utils.BadRequestResponse(c, "Invalid status filter")
			return
		}
		status = &s
	}

	reviews, err := h.reviewService.ListByStatus(status)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"count":   len(reviews),
		"reviews": reviews,
	})
}

// PUT /api/admin/reviews/:id/approve
func (h *AdminHandler) ApproveReview(c *gin.Context) {
	h.moderate(c, models.ReviewStatusApproved)
}

// PUT /api/admin/reviews/:id/reject
func (h *AdminHandler) RejectReview(c *gin.Context) {
	h.moderate(c, models.ReviewStatusRejected)
}

func (h *AdminHandler) moderate(c *gin.Context, status models.ReviewStatus) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.Moderate(id, status)
	if err != nil {
		respondServiceError(c, err, "Review not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"review": review,
	})
}

// POST /api/admin/reviews/:id/response
func (h *AdminHandler) RespondToReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID")
		return
	}

	var req struct {
		Response string `json:"response" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.Respond(id, req.Response)
	if err != nil {
		respondServiceError(c, err, "Review not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"review": review,
	})
}
