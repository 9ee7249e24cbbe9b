// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/craftloom/handloom-backend/internal/config"
	"github.com/craftloom/handloom-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Review{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_artisan ON products(artisan_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_buyer ON orders(buyer_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_product ON orders(product_id)",

		// Review indexes
		"CREATE INDEX IF NOT EXISTS idx_reviews_product_status ON reviews(product_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_buyer ON reviews(buyer_id)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_reviews_order ON reviews(order_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	logrus.Info("Seeding initial data...")

	// Create default admin user
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			Name:  "System Administrator",
			Email: "admin@handloom.local",
			Role:  models.RoleAdmin,
		}

		if err := admin.SetPassword("admin123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		logrus.Info("Default admin user created successfully")
	}

	// Seed a demo artisan and catalog when the product table is empty
	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)

	if productCount == 0 {
		artisan := &models.User{
			Name:  "Artisan Co",
			Email: "artisan@handloom.local",
			Role:  models.RoleArtisan,
			Bio:   "Traditional handloom weavers collective",
		}

		if err := artisan.SetPassword("artisan123!@#"); err != nil {
			return fmt.Errorf("failed to set artisan password: %w", err)
		}

		if err := db.Create(artisan).Error; err != nil {
			return fmt.Errorf("failed to create demo artisan: %w", err)
		}

		catalog := []models.Product{
			{Name: "Handwoven Saree", Price: 4500, Category: "Sarees", Description: "Traditional handwoven saree", Stock: 10, Image: "/images/saree1.jpg", ArtisanID: artisan.ID},
			{Name: "Cotton Dupatta", Price: 1200, Category: "Dupattas", Description: "Finest cotton dupatta", Stock: 25, Image: "/images/dupatta1.jpg", ArtisanID: artisan.ID},
			{Name: "Silk Scarf", Price: 2800, Category: "Scarves", Description: "Pure silk hand-dyed scarf", Stock: 15, Image: "/images/scarf1.jpg", ArtisanID: artisan.ID},
		}

		for i := range catalog {
			if err := db.Create(&catalog[i]).Error; err != nil {
				return fmt.Errorf("failed to seed product %q: %w", catalog[i].Name, err)
			}
		}

		logrus.Info("Sample catalog seeded successfully")
	}

	logrus.Info("Initial data seeding completed")
	return nil
}
