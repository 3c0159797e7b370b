package db

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skyshield/bastion/internal/constants"
	models "skyshield/bastion/internal/models/gorm"
)

// Seed inserts the baseline stations, operator accounts, classification
// rules and starting inventory. Each block is skipped when its table
// already has rows, so it is safe to run on every startup.
func Seed(db *gorm.DB) error {
	if err := seedStations(db); err != nil {
		return err
	}
	if err := seedOperators(db); err != nil {
		return err
	}
	if err := seedRules(db); err != nil {
		return err
	}
	return seedMissiles(db)
}

func seedStations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.RadarStation{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count radar stations: %w", err)
	}
	if count > 0 {
		return nil
	}

	stations := []models.RadarStation{
		{StationName: "Northern Perimeter", Latitude: 61.2176, Longitude: -149.8997, OperationalStatus: "Operational"},
		{StationName: "Coastal Watch", Latitude: 36.8508, Longitude: -75.9779, OperationalStatus: "Operational"},
		{StationName: "Highland Post", Latitude: 39.7392, Longitude: -104.9903, OperationalStatus: "Maintenance"},
	}
	return db.Create(&stations).Error
}

func seedOperators(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Operator{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count operators: %w", err)
	}
	if count > 0 {
		return nil
	}

	accounts := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "password123", "admin"},
		{"op1", "password123", "operator"},
	}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", a.username, err)
		}
		op := models.Operator{Username: a.username, PasswordHash: string(hash), Role: a.role}
		if err := db.Create(&op).Error; err != nil {
			return fmt.Errorf("seed operator %s: %w", a.username, err)
		}
	}
	return nil
}

func seedRules(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ClassificationRule{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count classification rules: %w", err)
	}
	if count > 0 {
		return nil
	}

	rules := []models.ClassificationRule{
		{ParameterName: "speed_kts", Operator: ">", Value: "600", AssignedThreatLevel: string(constants.ThreatCritical), IsEnabled: true},
		{ParameterName: "speed_kts", Operator: ">", Value: "400", AssignedThreatLevel: string(constants.ThreatHigh), IsEnabled: true},
		{ParameterName: "altitude_ft", Operator: "<", Value: "2000", AssignedThreatLevel: string(constants.ThreatHigh), IsEnabled: true},
		{ParameterName: "altitude_ft", Operator: ">", Value: "40000", AssignedThreatLevel: string(constants.ThreatLow), IsEnabled: true},
		{ParameterName: "speed_kts", Operator: ">", Value: "250", AssignedThreatLevel: string(constants.ThreatModerate), IsEnabled: true},
	}
	return db.Create(&rules).Error
}

func seedMissiles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Missile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count missiles: %w", err)
	}
	if count > 0 {
		return nil
	}

	missiles := []models.Missile{
		{MissileType: "Patriot", SerialNumber: "PAT-101", Status: string(constants.MissileAvailable)},
		{MissileType: "Patriot", SerialNumber: "PAT-102", Status: string(constants.MissileAvailable)},
		{MissileType: "Sidewinder", SerialNumber: "SID-201", Status: string(constants.MissileAvailable)},
		{MissileType: "Sidewinder", SerialNumber: "SID-202", Status: string(constants.MissileAvailable)},
	}
	return db.Create(&missiles).Error
}
