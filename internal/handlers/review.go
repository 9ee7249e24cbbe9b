// internal/handlers/review.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/craftloom/handloom-backend/internal/services"
	"github.com/craftloom/handloom-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// GET /api/products/:id/reviews
func (h *ReviewHandler) ListProductReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	reviews, err := h.reviewService.ListProductReviews(productID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reviews": reviews,
	})
}

// POST /api/products/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	buyerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.CreateReview(productID, buyerID, &req)
	if err != nil {
		respondServiceError(c, err, "Product not found")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"review": review,
	})
}

// PUT /api/reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID")
		return
	}

	buyerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.UpdateReview(id, buyerID, &req)
	if err != nil {
		respondServiceError(c, err, "Review not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"review": review,
	})
}

// DELETE /api/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID")
		return
	}

	actorID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	actorRole, _ := utils.GetRoleFromContext(c)

	if err := h.reviewService.DeleteReview(id, actorID, actorRole); err != nil {
		respondServiceError(c, err, "Review not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Review deleted",
	})
}

// POST /api/reviews/:id/helpful
func (h *ReviewHandler) VoteHelpful(c *gin.Context) {
	h.vote(c, true)
}

// POST /api/reviews/:id/unhelpful
func (h *ReviewHandler) VoteUnhelpful(c *gin.Context) {
	h.vote(c, false)
}

func (h *ReviewHandler) vote(c *gin.Context, helpful bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.Vote(id, helpful)
	if err != nil {
		respondServiceError(c, err, "Review not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"review": review,
	})
}
