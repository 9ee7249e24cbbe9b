// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/craftloom/handloom-backend/internal/services"
	"github.com/craftloom/handloom-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	authResponse, err := h.authService.Signup(&req)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"token": authResponse.Token,
		"user":  authResponse.User,
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.BadRequestResponse(c, "Email and password required")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	authResponse, err := h.authService.Login(&req)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token": authResponse.Token,
		"user":  authResponse.User,
	})
}

// GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": user,
	})
}
