package database

import (
	"errors"
	"fmt"

	"github.com/wilardzysenpai/portfolio-core/internal/config"
	"github.com/wilardzysenpai/portfolio-core/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Seed defaults, matching the original site bootstrap. The admin password
// must be changed after first login.
const (
	SeedAdminUsername = "admin"
	seedAdminPassword = "admin123"

	SettingContactForm = "contactFormStatus"
)

// Connect opens the MySQL connection, runs migration and seeds defaults.
// The returned handle is the single store instance for the process; it is
// owned by the entry point and passed down explicitly.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.DSN,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// Migrate applies the schema and seeds the admin user and default settings.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.MessageModel{},
		&models.SettingModel{},
	); err != nil {
		return err
	}
	if err := seedAdminUser(db); err != nil {
		return err
	}
	return seedDefaultSettings(db)
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.UserModel{
		Username: SeedAdminUsername,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}).Error
}

func seedDefaultSettings(db *gorm.DB) error {
	var existing models.SettingModel
	err := db.Where("name = ?", SettingContactForm).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	// Contact form ships disabled until the owner turns it on.
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.SettingModel{
		Name:  SettingContactForm,
		Value: "false",
	}).Error
}
