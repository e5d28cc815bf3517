package database

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func DSN(config *viper.Viper) string {
	sslmode := config.GetString("database.sslmode")
	if sslmode == "" {
		sslmode = "disable"
	}
	timezone := config.GetString("database.timezone")
	if timezone == "" {
		timezone = "UTC"
	}
	port := config.GetInt("database.port")
	if port == 0 {
		port = 5432
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		config.GetString("database.host"),
		config.GetString("database.username"),
		config.GetString("database.password"),
		config.GetString("database.dbname"),
		port,
		sslmode,
		timezone,
	)
}

func New(config *viper.Viper) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(config)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
