// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields. Records are hard-deleted; the marketplace
// keeps no tombstones or audit trail.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Enums
type Role string

const (
	RoleBuyer     Role = "Buyer"
	RoleArtisan   Role = "Artisan"
	RoleAdmin     Role = "Admin"
	RoleMarketing Role = "Marketing Specialist"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleArtisan, RoleAdmin, RoleMarketing:
		return true
	}
	return false
}

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "Pending"
	ReviewStatusApproved ReviewStatus = "Approved"
	ReviewStatusRejected ReviewStatus = "Rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// CanMutate is the ownership rule applied to every mutating operation on an
// owned resource: the actor must own it or be an admin.
func CanMutate(actorID uuid.UUID, role Role, ownerID uuid.UUID) bool {
	return actorID == ownerID || role == RoleAdmin
}
