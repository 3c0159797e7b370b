package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	models "skyshield/bastion/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// Migrate creates or updates the defense schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.RadarStation{},
		&models.Operator{},
		&models.DetectedAircraft{},
		&models.ClassificationRule{},
		&models.ClassifiedThreat{},
		&models.Missile{},
		&models.InterceptionLog{},
		&models.IncidentReport{},
		&models.AutomatedAlert{},
	)
}
