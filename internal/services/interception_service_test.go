package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/db/repositories"
	gormModels "skyshield/bastion/internal/models/gorm"
)

func TestInterceptionService_Intercept_Success(t *testing.T) {
	db, gdb := setupTestDB(t)
	radarID := createStation(t, gdb, "Northern Perimeter")
	operatorID := createOperator(t, gdb, "op1", "irrelevant")
	threatID := createThreat(t, gdb, radarID, "HOSTILE-01", constants.ThreatCritical)
	missileID := createMissile(t, gdb, "Patriot", "PAT-101", constants.MissileAvailable)

	svc := NewInterceptionService(
		repositories.NewInterceptionRepository(db),
		repositories.NewMissileRepository(db),
	)

	result, err := svc.Intercept(context.Background(), threatID, missileID, operatorID, "Cleared hot")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var missile gormModels.Missile
	if err := gdb.First(&missile, missileID).Error; err != nil {
		t.Fatalf("Missile not found: %v", err)
	}
	if missile.Status != string(constants.MissileUsed) {
		t.Errorf("Expected missile Used, got %s", missile.Status)
	}

	var logRow gormModels.InterceptionLog
	if err := gdb.First(&logRow, result.LogID).Error; err != nil {
		t.Fatalf("Interception log not found: %v", err)
	}
	if logRow.ResultDetails != "Cleared hot" {
		t.Errorf("Expected notes to land in log, got %q", logRow.ResultDetails)
	}

	var report gormModels.IncidentReport
	if err := gdb.Where("log_id = ?", result.LogID).First(&report).Error; err != nil {
		t.Fatalf("Incident report not found: %v", err)
	}
	expectedSummary := fmt.Sprintf("Interception initiated against %s (Threat: %s) using %s by %s.",
		"HOSTILE-01", constants.ThreatCritical, "Patriot", "op1")
	if report.ReportSummary != expectedSummary {
		t.Errorf("Unexpected summary:\n got %q\nwant %q", report.ReportSummary, expectedSummary)
	}
	if report.InterceptionResult != "Pending" {
		t.Errorf("Expected Pending result, got %s", report.InterceptionResult)
	}
	if report.AircraftIdentifier != "HOSTILE-01" {
		t.Errorf("Expected snapshot of aircraft identifier, got %s", report.AircraftIdentifier)
	}
}

func TestInterceptionService_Intercept_DefaultNotes(t *testing.T) {
	db, gdb := setupTestDB(t)
	radarID := createStation(t, gdb, "Coastal Watch")
	operatorID := createOperator(t, gdb, "op1", "irrelevant")
	threatID := createThreat(t, gdb, radarID, "HOSTILE-02", constants.ThreatHigh)
	missileID := createMissile(t, gdb, "Sidewinder", "SID-201", constants.MissileAvailable)

	svc := NewInterceptionService(
		repositories.NewInterceptionRepository(db),
		repositories.NewMissileRepository(db),
	)

	result, err := svc.Intercept(context.Background(), threatID, missileID, operatorID, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var logRow gormModels.InterceptionLog
	if err := gdb.First(&logRow, result.LogID).Error; err != nil {
		t.Fatalf("Interception log not found: %v", err)
	}
	if logRow.ResultDetails != "Interception initiated" {
		t.Errorf("Expected default notes, got %q", logRow.ResultDetails)
	}
}

func TestInterceptionService_Intercept_UsedMissileConflicts(t *testing.T) {
	db, gdb := setupTestDB(t)
	radarID := createStation(t, gdb, "Northern Perimeter")
	operatorID := createOperator(t, gdb, "op1", "irrelevant")
	threatID := createThreat(t, gdb, radarID, "HOSTILE-03", constants.ThreatHigh)
	missileID := createMissile(t, gdb, "Patriot", "PAT-102", constants.MissileUsed)

	svc := NewInterceptionService(
		repositories.NewInterceptionRepository(db),
		repositories.NewMissileRepository(db),
	)

	_, err := svc.Intercept(context.Background(), threatID, missileID, operatorID, "")
	if !errors.Is(err, ErrMissileUnavailable) {
		t.Fatalf("Expected ErrMissileUnavailable, got %v", err)
	}

	// The rolled-back log write must not survive
	var logCount int64
	gdb.Model(&gormModels.InterceptionLog{}).Count(&logCount)
	if logCount != 0 {
		t.Errorf("Expected no interception log rows after rollback, got %d", logCount)
	}
}

func TestInterceptionService_Intercept_OneMissileOneWinner(t *testing.T) {
	db, gdb := setupTestDB(t)
	radarID := createStation(t, gdb, "Northern Perimeter")
	operatorID := createOperator(t, gdb, "op1", "irrelevant")
	threatA := createThreat(t, gdb, radarID, "HOSTILE-05", constants.ThreatCritical)
	threatB := createThreat(t, gdb, radarID, "HOSTILE-06", constants.ThreatHigh)
	missileID := createMissile(t, gdb, "Patriot", "PAT-104", constants.MissileAvailable)

	svc := NewInterceptionService(
		repositories.NewInterceptionRepository(db),
		repositories.NewMissileRepository(db),
	)

	// Two launches race for the same missile; the conditional status
	// update lets exactly one of them through.
	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, threatID := range []int64{threatA, threatB} {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := svc.Intercept(context.Background(), id, missileID, operatorID, "")
			results <- err
		}(threatID)
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrMissileUnavailable):
			conflicts++
		default:
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("Expected exactly one success and one conflict, got %d successes, %d conflicts", successes, conflicts)
	}

	var missile gormModels.Missile
	if err := gdb.First(&missile, missileID).Error; err != nil {
		t.Fatalf("Missile not found: %v", err)
	}
	if missile.Status != string(constants.MissileUsed) {
		t.Errorf("Expected missile Used, got %s", missile.Status)
	}

	var logCount int64
	gdb.Model(&gormModels.InterceptionLog{}).Count(&logCount)
	if logCount != 1 {
		t.Errorf("Expected exactly one interception log row, got %d", logCount)
	}
	var reportCount int64
	gdb.Model(&gormModels.IncidentReport{}).Count(&reportCount)
	if reportCount != 1 {
		t.Errorf("Expected exactly one incident report, got %d", reportCount)
	}
}

func TestInterceptionService_Intercept_MissingDetailsRollsBack(t *testing.T) {
	db, gdb := setupTestDB(t)
	radarID := createStation(t, gdb, "Northern Perimeter")
	operatorID := createOperator(t, gdb, "op1", "irrelevant")
	_ = createThreat(t, gdb, radarID, "HOSTILE-04", constants.ThreatCritical)
	missileID := createMissile(t, gdb, "Patriot", "PAT-103", constants.MissileAvailable)

	svc := NewInterceptionService(
		repositories.NewInterceptionRepository(db),
		repositories.NewMissileRepository(db),
	)

	// Nonexistent threat: the missile consume succeeds but the snapshot
	// join finds nothing, so the whole attempt must roll back.
	_, err := svc.Intercept(context.Background(), 9999, missileID, operatorID, "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	var missile gormModels.Missile
	if err := gdb.First(&missile, missileID).Error; err != nil {
		t.Fatalf("Missile not found: %v", err)
	}
	if missile.Status != string(constants.MissileAvailable) {
		t.Errorf("Expected missile restored to Available after rollback, got %s", missile.Status)
	}

	var logCount int64
	gdb.Model(&gormModels.InterceptionLog{}).Count(&logCount)
	if logCount != 0 {
		t.Errorf("Expected no interception log rows after rollback, got %d", logCount)
	}
	var reportCount int64
	gdb.Model(&gormModels.IncidentReport{}).Count(&reportCount)
	if reportCount != 0 {
		t.Errorf("Expected no incident reports after rollback, got %d", reportCount)
	}
}
