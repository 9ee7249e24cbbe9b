// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftloom/handloom-backend/internal/models"
	"github.com/craftloom/handloom-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Stock       int     `json:"stock" validate:"min=0"`
	Image       string  `json:"image,omitempty"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Category    string   `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	Image       string   `json:"image,omitempty"`
}

// ProductFilter translates the listing query parameters into a persistence
// predicate. Absent fields contribute nothing; an empty filter matches every
// record.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

func (f ProductFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}

	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}

	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}

	if f.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}

	return query
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// artisanSummary limits the joined artisan record to its public fields.
func artisanSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "profile_image", "bio")
}

func (s *ProductService) ListProducts(filter ProductFilter) ([]models.Product, error) {
	query := filter.Apply(s.db.Model(&models.Product{})).
		Preload("Artisan", artisanSummary).
		Order("created_at ASC")

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Artisan", artisanSummary).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

func (s *ProductService) CreateProduct(artisanID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		ArtisanID:   artisanID,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.db.Preload("Artisan", artisanSummary).First(product, "id = ?", product.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, actorID uuid.UUID, actorRole models.Role, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !models.CanMutate(actorID, actorRole, product.ArtisanID) {
		return nil, ErrForbidden
	}

	// Partial merge: only fields present in the request are replaced.
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	if err := s.db.Preload("Artisan", artisanSummary).First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID, actorID uuid.UUID, actorRole models.Role) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !models.CanMutate(actorID, actorRole, product.ArtisanID) {
		return ErrForbidden
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
