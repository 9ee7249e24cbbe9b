// internal/handlers/upload.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/craftloom/handloom-backend/internal/services"
	"github.com/craftloom/handloom-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
	}
}

// POST /api/uploads/images
func (h *UploadHandler) UploadImages(c *gin.Context) {
	if _, exists := utils.GetUserIDFromContext(c); !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No images uploaded")
		return
	}

	folder := c.DefaultQuery("folder", "products")
	options := h.storageService.GetDefaultUploadOptions(folder)

	var uploaded []services.UploadResult
	var skipped []string
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			skipped = append(skipped, fileHeader.Filename)
			continue
		}

		if err := h.storageService.ValidateImage(file); err != nil {
			file.Close()
			skipped = append(skipped, fileHeader.Filename)
			continue
		}

		result, err := h.storageService.UploadFile(file, fileHeader, options)
		file.Close()

		if err != nil {
			skipped = append(skipped, fileHeader.Filename)
			continue
		}

		uploaded = append(uploaded, *result)
	}

	if len(uploaded) == 0 {
		utils.BadRequestResponse(c, "No valid images uploaded")
		return
	}

	payload := gin.H{"images": uploaded}
	if len(skipped) > 0 {
		payload["skipped"] = skipped
	}

	utils.SuccessResponse(c, payload)
}
