// internal/services/service_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/craftloom/handloom-backend/internal/config"
	"github.com/craftloom/handloom-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Review{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey: "test-secret",
			TTLHours:  1,
		},
	}
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)

	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, artisanID uuid.UUID, name, category string, price float64) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:      name,
		Category:  category,
		Price:     price,
		Stock:     10,
		ArtisanID: artisanID,
	}
	require.NoError(t, db.Create(product).Error)

	return product
}

func createTestOrder(t *testing.T, db *gorm.DB, buyerID, productID uuid.UUID, status models.OrderStatus) *models.Order {
	t.Helper()

	order := &models.Order{
		BuyerID:     buyerID,
		ProductID:   productID,
		Quantity:    1,
		TotalAmount: 1000,
		Status:      status,
	}
	require.NoError(t, db.Create(order).Error)

	return order
}
