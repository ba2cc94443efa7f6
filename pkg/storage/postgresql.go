package storage

import (
	"fmt"
	"log/slog"

	"github.com/fairfinder/fair-finder/pkg/config"
	"github.com/fairfinder/fair-finder/pkg/model"
	slogGorm "github.com/orandin/slog-gorm"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(logger *slog.Logger, c config.Postgresql) (*gorm.DB, error) {
	host := c.Host
	port := c.Port
	username := c.Username
	password := c.Password
	name := c.DatabaseName

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", host, username, password, name, port)

	databaseConfig := gorm.Config{
		Logger:         slogGorm.New(slogGorm.WithHandler(logger.Handler())),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, err
	}

	err = db.Use(otelgorm.NewPlugin(otelgorm.WithDBName(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to register tracing plugin: %v", err)
	}

	err = Migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate enables PostGIS and creates or updates the tables of all models.
func Migrate(db *gorm.DB) error {
	err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error
	if err != nil {
		return fmt.Errorf("failed to enable postgis: %v", err)
	}

	return db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.Participation{},
		&model.Test{},
	)
}
