// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/craftloom/handloom-backend/internal/models"
	"github.com/craftloom/handloom-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	Rating  int       `json:"rating" validate:"required,min=1,max=5"`
	Title   string    `json:"title" validate:"required,max=255"`
	Comment string    `json:"comment" validate:"required"`
	Images  []string  `json:"images,omitempty"`
}

type UpdateReviewRequest struct {
	Rating  *int     `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Title   string   `json:"title,omitempty" validate:"omitempty,max=255"`
	Comment string   `json:"comment,omitempty"`
	Images  []string `json:"images,omitempty"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func buyerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "profile_image")
}

// ListProductReviews returns the approved reviews for a product in insertion
// order.
func (s *ReviewService) ListProductReviews(productID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("product_id = ? AND status = ?", productID, models.ReviewStatusApproved).
		Preload("Buyer", buyerSummary).
		Order("created_at ASC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, nil
}

func (s *ReviewService) CreateReview(productID uuid.UUID, buyerID uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderMismatch
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.BuyerID != buyerID {
		return nil, ErrOrderMismatch
	}

	// One review per order
	var existing models.Review
	if err := s.db.Where("order_id = ?", req.OrderID).First(&existing).Error; err == nil {
		return nil, ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	review := &models.Review{
		ProductID: productID,
		BuyerID:   buyerID,
		OrderID:   req.OrderID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		Images:    pq.StringArray(req.Images),
		Status:    models.ReviewStatusPending,
		// A review is verified when it comes from a delivered order for
		// this exact product.
		Verified: order.ProductID == productID && order.Status == models.OrderStatusDelivered,
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) UpdateReview(id uuid.UUID, buyerID uuid.UUID, req *UpdateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if review.BuyerID != buyerID {
		return nil, ErrForbidden
	}

	updates := make(map[string]interface{})
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Comment != "" {
		updates["comment"] = req.Comment
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(req.Images)
	}

	if len(updates) > 0 {
		// An edited review goes back through moderation.
		updates["status"] = models.ReviewStatusPending
		if err := s.db.Model(&review).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update review: %w", err)
		}
	}

	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload review: %w", err)
	}

	return &review, nil
}

func (s *ReviewService) DeleteReview(id uuid.UUID, actorID uuid.UUID, actorRole models.Role) error {
	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !models.CanMutate(actorID, actorRole, review.BuyerID) {
		return ErrForbidden
	}

	if err := s.db.Delete(&review).Error; err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}

// Vote bumps the helpful or unhelpful counter.
func (s *ReviewService) Vote(id uuid.UUID, helpful bool) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	column := "unhelpful"
	if helpful {
		column = "helpful"
	}

	if err := s.db.Model(&review).UpdateColumn(column, gorm.Expr(column+" + 1")).Error; err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload review: %w", err)
	}

	return &review, nil
}

// ListByStatus is the moderation queue view; a nil status returns everything.
func (s *ReviewService) ListByStatus(status *models.ReviewStatus) ([]models.Review, error) {
	query := s.db.Model(&models.Review{}).
		Preload("Buyer", buyerSummary).
		Order("created_at ASC")

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, nil
}

func (s *ReviewService) Moderate(id uuid.UUID, status models.ReviewStatus) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&review).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update review status: %w", err)
	}

	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload review: %w", err)
	}

	return &review, nil
}

func (s *ReviewService) Respond(id uuid.UUID, response string) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"admin_response":     response,
		"admin_responded_at": &now,
	}

	if err := s.db.Model(&review).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to save response: %w", err)
	}

	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload review: %w", err)
	}

	return &review, nil
}
