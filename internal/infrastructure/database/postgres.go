package database

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/elitesports/pos-api/internal/config"
	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/pkg/utils"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.LoginOTP{},

		&entity.Product{},
		&entity.ProductSize{},

		&entity.Order{},
		&entity.OrderItem{},

		&entity.UploadBatch{},
		&entity.UploadChange{},

		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the admin account from environment configuration
// and, when SEED_DEMO_DATA is set, loads the demo catalog and order history
// into an empty database.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	var admin *entity.User
	if adminEmail != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != nil {
			hashed, err := utils.HashPassword(adminPassword)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Store Admin"
				}
				admin = &entity.User{
					Name:     adminName,
					Email:    adminEmail,
					Password: hashed,
				}
				if err := db.Create(admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
					admin = nil
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			admin = &existing
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	if viper.GetBool("SEED_DEMO_DATA") {
		if err := seedDemoCatalog(db); err != nil {
			return err
		}
		if admin != nil {
			if err := seedDemoOrders(db, admin.ID); err != nil {
				return err
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

// seedDemoCatalog loads the demo sports catalog when the products table is empty
func seedDemoCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []entity.Product{
		{Name: "Cricket Bat", Category: "Cricket", WholesalePrice: 80000, RetailPrice: 120000, Quantity: 10},
		{Name: "Football", Category: "Football", WholesalePrice: 40000, RetailPrice: 65000, Quantity: 15},
		{Name: "Tennis Racket", Category: "Tennis", WholesalePrice: 150000, RetailPrice: 220000, Quantity: 5},
		{Name: "Basketball", Category: "Basketball", WholesalePrice: 60000, RetailPrice: 95000, Quantity: 8},
		{Name: "Table Tennis Paddle", Category: "Table Tennis", WholesalePrice: 30000, RetailPrice: 48000, Quantity: 20},
		{Name: "Badminton Racket", Category: "Badminton", WholesalePrice: 70000, RetailPrice: 110000, Quantity: 12},
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed demo catalog: %w", err)
	}

	log.Printf("Seeded %d demo products", len(products))
	return nil
}

// seedDemoOrders loads the demo order history (numbers 101-103) when empty
func seedDemoOrders(db *gorm.DB, uid uuid.UUID) error {
	var count int64
	if err := db.Model(&entity.Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	orders := []entity.Order{
		{
			Number: 101, UserID: uid, OrderDate: date("2025-01-28"), Total: 130000, Profit: 50000,
			Items: []entity.OrderItem{{Name: "Football", Qty: 2, Price: 130000}},
		},
		{
			Number: 102, UserID: uid, OrderDate: date("2025-01-27"), Total: 120000, Profit: 40000,
			Items: []entity.OrderItem{{Name: "Cricket Bat", Qty: 1, Price: 120000}},
		},
		{
			Number: 103, UserID: uid, OrderDate: date("2025-01-26"), Total: 410000, Profit: 140000,
			Items: []entity.OrderItem{
				{Name: "Tennis Racket", Qty: 1, Price: 220000},
				{Name: "Basketball", Qty: 2, Price: 190000},
			},
		},
	}

	if err := db.Create(&orders).Error; err != nil {
		return fmt.Errorf("failed to seed demo orders: %w", err)
	}

	log.Printf("Seeded %d demo orders", len(orders))
	return nil
}
