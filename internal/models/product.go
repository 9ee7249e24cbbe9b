// internal/models/product.go
package models

import (
	"github.com/google/uuid"
)

type Product struct {
	BaseModel
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string    `json:"category" gorm:"size:100;index"`
	Stock       int       `json:"stock" gorm:"default:0"`
	Image       string    `json:"image,omitempty" gorm:"size:500"`
	ArtisanID   uuid.UUID `json:"artisan_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Artisan *User    `json:"artisan,omitempty" gorm:"foreignKey:ArtisanID"`
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}
