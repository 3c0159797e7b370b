package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/db/repositories"
	gormModels "skyshield/bastion/internal/models/gorm"
)

func TestMissileService_AddMissile(t *testing.T) {
	db, gdb := setupTestDB(t)

	svc := NewMissileService(repositories.NewMissileRepository(db))

	missile, err := svc.AddMissile(context.Background(), "Patriot")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if missile.Status != string(constants.MissileAvailable) {
		t.Errorf("Expected Available, got %s", missile.Status)
	}
	if !strings.HasPrefix(missile.SerialNumber, "PAT-") {
		t.Errorf("Expected PAT- serial prefix, got %s", missile.SerialNumber)
	}

	var row gormModels.Missile
	if err := gdb.First(&row, missile.MissileID).Error; err != nil {
		t.Fatalf("Missile not found: %v", err)
	}
	if row.SerialNumber != missile.SerialNumber {
		t.Errorf("Expected serial %s in database, got %s", missile.SerialNumber, row.SerialNumber)
	}
}

func TestMissileService_AddMissile_InventoryCap(t *testing.T) {
	db, gdb := setupTestDB(t)

	for i := 0; i < constants.MaxMissileInventory; i++ {
		createMissile(t, gdb, "Patriot", fmt.Sprintf("PAT-%03d", i), constants.MissileAvailable)
	}

	svc := NewMissileService(repositories.NewMissileRepository(db))

	_, err := svc.AddMissile(context.Background(), "Patriot")
	if !errors.Is(err, ErrInventoryFull) {
		t.Fatalf("Expected ErrInventoryFull, got %v", err)
	}

	var count int64
	gdb.Model(&gormModels.Missile{}).Count(&count)
	if count != constants.MaxMissileInventory {
		t.Errorf("Expected inventory to stay at %d, got %d", constants.MaxMissileInventory, count)
	}
}

func TestMissileService_AddMissile_UsedMissilesStillCount(t *testing.T) {
	db, gdb := setupTestDB(t)

	// The cap counts every row, spent missiles included
	for i := 0; i < constants.MaxMissileInventory; i++ {
		createMissile(t, gdb, "Sidewinder", fmt.Sprintf("SID-%03d", i), constants.MissileUsed)
	}

	svc := NewMissileService(repositories.NewMissileRepository(db))

	_, err := svc.AddMissile(context.Background(), "Sidewinder")
	if !errors.Is(err, ErrInventoryFull) {
		t.Fatalf("Expected ErrInventoryFull when cap reached with used missiles, got %v", err)
	}
}

func TestMissileService_ListAvailable(t *testing.T) {
	db, gdb := setupTestDB(t)

	availableID := createMissile(t, gdb, "Patriot", "PAT-101", constants.MissileAvailable)
	createMissile(t, gdb, "Patriot", "PAT-102", constants.MissileUsed)

	svc := NewMissileService(repositories.NewMissileRepository(db))

	missiles, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(missiles) != 1 {
		t.Fatalf("Expected 1 available missile, got %d", len(missiles))
	}
	if missiles[0].MissileID != availableID {
		t.Errorf("Expected missile %d, got %d", availableID, missiles[0].MissileID)
	}
}

func TestMissileService_AddMissile_SerialCollision(t *testing.T) {
	db, gdb := setupTestDB(t)

	// Two services seeded identically draw the same first serial, so
	// the second must detect the taken serial and draw again.
	drawn := &MissileService{missiles: repositories.NewMissileRepository(db), rng: rand.New(rand.NewSource(7))}
	taken := drawn.generateSerial("Patriot")
	createMissile(t, gdb, "Patriot", taken, constants.MissileAvailable)

	svc := &MissileService{missiles: repositories.NewMissileRepository(db), rng: rand.New(rand.NewSource(7))}
	missile, err := svc.AddMissile(context.Background(), "Patriot")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if missile.SerialNumber == taken {
		t.Errorf("Expected a fresh serial, got taken %s", taken)
	}

	var count int64
	gdb.Model(&gormModels.Missile{}).Count(&count)
	if count != 2 {
		t.Errorf("Expected 2 missile rows, got %d", count)
	}
}

func TestMissileService_GenerateSerial(t *testing.T) {
	svc := &MissileService{rng: rand.New(rand.NewSource(1))}

	serial := svc.generateSerial("Sidewinder")
	if !strings.HasPrefix(serial, "SID-") {
		t.Errorf("Expected SID- prefix, got %s", serial)
	}

	// Short types keep their full name
	serial = svc.generateSerial("S2")
	if !strings.HasPrefix(serial, "S2-") {
		t.Errorf("Expected S2- prefix, got %s", serial)
	}

	// Multibyte names keep whole characters
	serial = svc.generateSerial("Вымпел")
	if !strings.HasPrefix(serial, "ВЫМ-") {
		t.Errorf("Expected ВЫМ- prefix, got %s", serial)
	}
}
