// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/craftloom/handloom-backend/internal/models"
	"github.com/craftloom/handloom-backend/internal/services"
	"github.com/craftloom/handloom-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GET /api/users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": user,
	})
}

// PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// GET /api/users (Admin only)
func (h *UserHandler) ListUsers(c *gin.Context) {
	filter := services.UserFilter{
		Search: c.Query("search"),
	}

	if roleStr := c.Query("role"); roleStr != "" {
		role := models.Role(roleStr)
		if !role.Valid() {
			utils.BadRequestResponse(c, "Invalid role filter")
			return
		}
		filter.Role = &role
	}

	users, err := h.userService.ListUsers(filter)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"count": len(users),
		"users": users,
	})
}

// GET /api/users/:id (self or Admin)
func (h *UserHandler) GetUser(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	actorID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	actorRole, _ := utils.GetRoleFromContext(c)

	user, err := h.userService.GetUser(targetID, actorID, actorRole)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": user,
	})
}

// DELETE /api/users/:id (self or Admin)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	actorID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	actorRole, _ := utils.GetRoleFromContext(c)

	if err := h.userService.DeleteUser(targetID, actorID, actorRole); err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "User deleted successfully",
	})
}
