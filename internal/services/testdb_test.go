package services

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skyshield/bastion/internal/constants"
	gormModels "skyshield/bastion/internal/models/gorm"
)

// setupTestDB opens an in-memory SQLite database shared between GORM
// (schema and fixtures) and sqlx (the code under test). The pool is
// pinned to one connection because each SQLite memory connection is its
// own database.
func setupTestDB(t *testing.T) (*sqlx.DB, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&gormModels.RadarStation{},
		&gormModels.Operator{},
		&gormModels.DetectedAircraft{},
		&gormModels.ClassificationRule{},
		&gormModels.ClassifiedThreat{},
		&gormModels.Missile{},
		&gormModels.InterceptionLog{},
		&gormModels.IncidentReport{},
		&gormModels.AutomatedAlert{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db := sqlx.NewDb(sqlDB, "sqlite3")
	t.Cleanup(func() { _ = db.Close() })
	return db, gdb
}

func createStation(t *testing.T, gdb *gorm.DB, name string) int64 {
	t.Helper()
	station := gormModels.RadarStation{StationName: name, Latitude: 50.0, Longitude: 10.0, OperationalStatus: "Operational"}
	if err := gdb.Create(&station).Error; err != nil {
		t.Fatalf("Failed to create station: %v", err)
	}
	return station.RadarID
}

func createOperator(t *testing.T, gdb *gorm.DB, username, passwordHash string) int64 {
	t.Helper()
	op := gormModels.Operator{Username: username, PasswordHash: passwordHash, Role: "operator"}
	if err := gdb.Create(&op).Error; err != nil {
		t.Fatalf("Failed to create operator: %v", err)
	}
	return op.OperatorID
}

// createThreat inserts a detection plus its classified threat and
// returns the threat id.
func createThreat(t *testing.T, gdb *gorm.DB, radarID int64, identifier string, level constants.ThreatLevel) int64 {
	t.Helper()
	detection := gormModels.DetectedAircraft{
		AircraftIdentifier: identifier,
		Latitude:           51.5,
		Longitude:          -0.1,
		AltitudeFt:         30000,
		SpeedKts:           450,
		HeadingDeg:         270,
		DetectionTime:      time.Now().UTC(),
		RadarID:            radarID,
	}
	if err := gdb.Create(&detection).Error; err != nil {
		t.Fatalf("Failed to create detection: %v", err)
	}

	threat := gormModels.ClassifiedThreat{
		DetectionID:        detection.DetectionID,
		ThreatLevel:        string(level),
		Source:             string(constants.SourceAutoClassified),
		ClassificationTime: time.Now().UTC(),
	}
	if err := gdb.Create(&threat).Error; err != nil {
		t.Fatalf("Failed to create classified threat: %v", err)
	}
	return threat.ThreatID
}

func createMissile(t *testing.T, gdb *gorm.DB, missileType, serial string, status constants.MissileStatus) int64 {
	t.Helper()
	missile := gormModels.Missile{
		MissileType:         missileType,
		SerialNumber:        serial,
		Status:              string(status),
		LastMaintenanceDate: time.Now().UTC(),
	}
	if err := gdb.Create(&missile).Error; err != nil {
		t.Fatalf("Failed to create missile: %v", err)
	}
	return missile.MissileID
}
