// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	Role         Role   `json:"role" gorm:"type:varchar(30);not null"`
	ProfileImage string `json:"profile_image,omitempty" gorm:"size:500"`
	Bio          string `json:"bio,omitempty" gorm:"type:text"`
	Phone        string `json:"phone,omitempty" gorm:"size:30"`
	Address      string `json:"address,omitempty" gorm:"size:255"`
	City         string `json:"city,omitempty" gorm:"size:100"`
	Country      string `json:"country,omitempty" gorm:"size:100"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:ArtisanID"`
	Orders   []Order   `json:"orders,omitempty" gorm:"foreignKey:BuyerID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
