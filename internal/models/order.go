// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

// Order backs the buyer's purchase history and review verification. Orders
// are created out of band; there is no checkout flow in this service.
type Order struct {
	BaseModel
	BuyerID     uuid.UUID   `json:"buyer_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID   `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity    int         `json:"quantity" gorm:"default:1"`
	TotalAmount float64     `json:"total_amount" gorm:"type:decimal(10,2)"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);default:'Pending'"`

	// Relationships
	Buyer   *User    `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
