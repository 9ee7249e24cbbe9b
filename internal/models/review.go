// internal/models/review.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Review struct {
	BaseModel
	ProductID        uuid.UUID      `json:"product_id" gorm:"type:uuid;not null;index"`
	BuyerID          uuid.UUID      `json:"buyer_id" gorm:"type:uuid;not null;index"`
	OrderID          uuid.UUID      `json:"order_id" gorm:"type:uuid;not null;index"`
	Rating           int            `json:"rating" gorm:"not null"`
	Title            string         `json:"title" gorm:"size:255;not null"`
	Comment          string         `json:"comment" gorm:"type:text;not null"`
	Images           pq.StringArray `json:"images,omitempty" gorm:"type:text[]"`
	Helpful          int            `json:"helpful" gorm:"default:0"`
	Unhelpful        int            `json:"unhelpful" gorm:"default:0"`
	Verified         bool           `json:"verified" gorm:"default:false"`
	Status           ReviewStatus   `json:"status" gorm:"type:varchar(20);default:'Pending';index"`
	AdminResponse    string         `json:"admin_response,omitempty" gorm:"type:text"`
	AdminRespondedAt *time.Time     `json:"admin_responded_at,omitempty"`

	// Relationships
	Buyer   *User    `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Order   *Order   `json:"order,omitempty" gorm:"foreignKey:OrderID"`
}
