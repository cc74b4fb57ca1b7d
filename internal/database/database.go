package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sophearak/movievault/internal/config"
)

// Open connects to Postgres and returns the handle. TranslateError is enabled
// so duplicate-key and not-found conditions surface as gorm.ErrDuplicatedKey
// and gorm.ErrRecordNotFound regardless of driver.
func Open(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s dbname=%s port=%s sslmode=%s password=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBPassword)

	log.Printf("connecting to database host=%s db=%s user=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBName, cfg.DBUser, cfg.DBPort, cfg.DBSSLMode)

	gormLogger := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  true,
	})

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	log.Println("database connection established")
	return db, nil
}

// Migrate runs AutoMigrate for the given models. Safe to call repeatedly.
func Migrate(db *gorm.DB, models ...interface{}) error {
	log.Println("running AutoMigrate")
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Println("migrations complete")
	return nil
}
