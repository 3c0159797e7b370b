package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skyshield/bastion/internal/common"
	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/db/repositories"
	"skyshield/bastion/internal/metrics"
	gormModels "skyshield/bastion/internal/models/gorm"
	"skyshield/bastion/internal/services"
)

// Prometheus collectors register globally, so the test binary shares one
// registry across all tests.
var testMetrics = metrics.NewMetricsRegistry()

func setupTestAPI(t *testing.T) (*chi.Mux, *gorm.DB) {
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

	repos := &Repositories{
		Stations:      repositories.NewStationRepository(db),
		Operators:     repositories.NewOperatorRepository(db),
		Rules:         repositories.NewRuleRepository(db),
		Detections:    repositories.NewDetectionRepository(db),
		Threats:       repositories.NewThreatRepository(db),
		Missiles:      repositories.NewMissileRepository(db),
		Interceptions: repositories.NewInterceptionRepository(db),
		Alerts:        repositories.NewAlertRepository(db),
		Surveillance:  repositories.NewSurveillanceRepository(db),
	}

	cacheSvc := common.NewCacheService(60, 600)
	ruleSvc := services.NewRuleService(repos.Rules, cacheSvc)
	svcs := &Services{
		Cache:         cacheSvc,
		Auth:          services.NewAuthService(repos.Operators),
		Rules:         ruleSvc,
		Detections:    services.NewDetectionService(repos.Detections, repos.Threats, ruleSvc),
		Threats:       services.NewThreatService(repos.Threats),
		Interceptions: services.NewInterceptionService(repos.Interceptions, repos.Missiles),
		Alerts:        services.NewAlertService(repos.Alerts),
		Missiles:      services.NewMissileService(repos.Missiles),
	}

	handlers := NewHandlers(&Dependencies{Repo: repos, Services: svcs, Metrics: testMetrics})

	r := chi.NewRouter()
	r.Post("/api/login", handlers.Login())
	r.Post("/api/aircraft/detect", handlers.DetectAircraft())
	r.Patch("/api/threats/{threatID}/override", handlers.OverrideThreat())
	r.Post("/api/missiles/add", handlers.AddMissile())
	r.Post("/api/interceptions", handlers.CreateInterception())
	r.Post("/api/alerts/generate-unintercepted-threat-alert", handlers.GenerateAlert())
	r.Patch("/api/alerts/{alertID}/acknowledge", handlers.AcknowledgeAlert())
	return r, gdb
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", rec.Body.String(), err)
	}
	return resp["error"]
}

func TestLoginHandler_MissingFields(t *testing.T) {
	router, _ := setupTestAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{"username": "admin"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != constants.MsgLoginFieldsRequired {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestDetectAircraftHandler_IncompleteBody(t *testing.T) {
	router, _ := setupTestAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/aircraft/detect", map[string]interface{}{
		"aircraft_identifier": "HOSTILE-01",
		"latitude":            51.5,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != constants.MsgDetectionFieldsNeeded {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestOverrideThreatHandler_InvalidLevel(t *testing.T) {
	router, gdb := setupTestAPI(t)
	station := gormModels.RadarStation{StationName: "Test", Latitude: 1, Longitude: 1, OperationalStatus: "Operational"}
	gdb.Create(&station)
	detection := gormModels.DetectedAircraft{AircraftIdentifier: "BOGEY-01", Latitude: 1, Longitude: 1, AltitudeFt: 10000, SpeedKts: 300, HeadingDeg: 90, DetectionTime: time.Now().UTC(), RadarID: station.RadarID}
	gdb.Create(&detection)
	threat := gormModels.ClassifiedThreat{DetectionID: detection.DetectionID, ThreatLevel: "Low", Source: "Auto-classified", ClassificationTime: time.Now().UTC()}
	gdb.Create(&threat)

	rec := doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/api/threats/%d/override", threat.ThreatID),
		map[string]interface{}{"newThreatLevel": "Apocalyptic", "operatorId": 1})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != constants.MsgInvalidThreatLevel {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestOverrideThreatHandler_NotFound(t *testing.T) {
	router, _ := setupTestAPI(t)

	rec := doJSON(t, router, http.MethodPatch, "/api/threats/9999/override",
		map[string]interface{}{"newThreatLevel": "High", "operatorId": 1})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Threat with ID 9999 not found." {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestAddMissileHandler_InventoryCap(t *testing.T) {
	router, gdb := setupTestAPI(t)
	for i := 0; i < constants.MaxMissileInventory; i++ {
		gdb.Create(&gormModels.Missile{
			MissileType: "Patriot", SerialNumber: fmt.Sprintf("PAT-%03d", i),
			Status: "Available", LastMaintenanceDate: time.Now().UTC(),
		})
	}

	rec := doJSON(t, router, http.MethodPost, "/api/missiles/add", map[string]string{"missile_type": "Patriot"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", rec.Code)
	}
	expected := fmt.Sprintf("Cannot add more missiles. Maximum limit of %d reached.", constants.MaxMissileInventory)
	if msg := decodeError(t, rec); msg != expected {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestAddMissileHandler_Success(t *testing.T) {
	router, gdb := setupTestAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/missiles/add", map[string]string{"missile_type": "Sidewinder"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var count int64
	gdb.Model(&gormModels.Missile{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 missile row, got %d", count)
	}
}

func TestCreateInterceptionHandler_UsedMissileConflicts(t *testing.T) {
	router, gdb := setupTestAPI(t)
	station := gormModels.RadarStation{StationName: "Test", Latitude: 1, Longitude: 1, OperationalStatus: "Operational"}
	gdb.Create(&station)
	operator := gormModels.Operator{Username: "op1", PasswordHash: "x", Role: "operator"}
	gdb.Create(&operator)
	detection := gormModels.DetectedAircraft{AircraftIdentifier: "HOSTILE-01", Latitude: 1, Longitude: 1, AltitudeFt: 10000, SpeedKts: 650, HeadingDeg: 90, DetectionTime: time.Now().UTC(), RadarID: station.RadarID}
	gdb.Create(&detection)
	threat := gormModels.ClassifiedThreat{DetectionID: detection.DetectionID, ThreatLevel: "Critical", Source: "Auto-classified", ClassificationTime: time.Now().UTC()}
	gdb.Create(&threat)
	missile := gormModels.Missile{MissileType: "Patriot", SerialNumber: "PAT-900", Status: "Used", LastMaintenanceDate: time.Now().UTC()}
	gdb.Create(&missile)

	rec := doJSON(t, router, http.MethodPost, "/api/interceptions", map[string]interface{}{
		"threatId": threat.ThreatID, "missileId": missile.MissileID, "operatorId": operator.OperatorID,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("Expected 409, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != constants.MsgMissileUnavailable {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestGenerateAlertHandler_NothingToAlert(t *testing.T) {
	router, _ := setupTestAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/alerts/generate-unintercepted-threat-alert", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if resp["message"] != constants.MsgNoThreatToAlert {
		t.Errorf("Unexpected message: %q", resp["message"])
	}
}

func TestAcknowledgeAlertHandler_NotFound(t *testing.T) {
	router, _ := setupTestAPI(t)

	rec := doJSON(t, router, http.MethodPatch, "/api/alerts/777/acknowledge",
		map[string]interface{}{"operatorId": 1})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Alert with ID 777 not found or already acknowledged." {
		t.Errorf("Unexpected message: %q", msg)
	}
}
