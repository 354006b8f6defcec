package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"cakehouse-pos/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config tells Open which driver to dial. The shop runs on a local
// sqlite file; mysql is there for installs that already have a server.
type Config struct {
	Driver string // "sqlite" (default) or "mysql"
	DSN    string // file path for sqlite, full DSN for mysql
}

// ConfigFromEnv reads DB_DRIVER / DB_DSN from the environment.
func ConfigFromEnv() Config {
	cfg := Config{
		Driver: os.Getenv("DB_DRIVER"),
		DSN:    os.Getenv("DB_DSN"),
	}
	if cfg.Driver == "" {
		cfg.Driver = "sqlite"
	}
	if cfg.DSN == "" && cfg.Driver == "sqlite" {
		cfg.DSN = "cakehouse.db"
	}
	return cfg
}

// Open connects, migrates the schema and seeds the admin user.
// It returns the handle instead of stashing it in a package global so
// tests can spin up an isolated store per test.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		if cfg.DSN == "" {
			return nil, fmt.Errorf("DB_DSN is required when DB_DRIVER=mysql")
		}
		dialector = mysql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q (want sqlite or mysql)", cfg.Driver)
	}

	var db *gorm.DB
	var err error

	// Wait for the DB to be ready (matters for mysql in docker)
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after 5 attempts: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Ingredient{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := seedAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedAdmin creates admin/admin123 on a fresh database so the first
// login is possible without poking the DB by hand.
func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Admin user created: admin / admin123")
	return nil
}
