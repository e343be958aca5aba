package database

import (
	"fmt"
	"log"

	"agrodoc/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the shared database handle.
var DB *gorm.DB

// Connect opens the Postgres connection described by dsn and migrates the
// schema. The DSN comes from the resolved config so Secrets Manager
// overrides reach the connection.
func Connect(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := DB.AutoMigrate(&models.ShipRow{}, &models.User{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Println("Connected to PostgreSQL")
	return nil
}

// Close releases the underlying connection pool.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
