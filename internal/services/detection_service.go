package services

import (
	"context"
	"fmt"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/db/repositories"
	"skyshield/bastion/internal/models/dtos"
	"skyshield/bastion/internal/models/entities"
)

// DetectionService registers radar detections and auto-classifies them.
type DetectionService struct {
	detections *repositories.DetectionRepository
	threats    *repositories.ThreatRepository
	rules      *RuleService
}

func NewDetectionService(detections *repositories.DetectionRepository, threats *repositories.ThreatRepository, rules *RuleService) *DetectionService {
	return &DetectionService{detections: detections, threats: threats, rules: rules}
}

// DetectionResult reports the ids and level assigned to a new detection.
type DetectionResult struct {
	DetectionID int64
	ThreatID    int64
	Level       constants.ThreatLevel
	RuleID      *int64
}

// RegisterDetection inserts the detection and its classified threat in
// one transaction; either both rows land or neither does.
func (s *DetectionService) RegisterDetection(ctx context.Context, req *dtos.DetectAircraftRequest) (*DetectionResult, error) {
	rules, err := s.rules.EnabledRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("load classification rules: %w", err)
	}

	verdict := ClassifyThreat(req.Fields(), rules)

	tx, err := s.detections.DB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin detection transaction: %w", err)
	}

	detection := &entities.DetectedAircraft{
		AircraftIdentifier: req.AircraftIdentifier,
		Latitude:           *req.Latitude,
		Longitude:          *req.Longitude,
		AltitudeFt:         *req.AltitudeFt,
		SpeedKts:           *req.SpeedKts,
		HeadingDeg:         *req.HeadingDeg,
		RadarID:            *req.RadarID,
	}

	detectionID, err := s.detections.Insert(ctx, tx, detection)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("insert detection: %w", err)
	}

	threatID, err := s.threats.InsertClassification(ctx, tx, detectionID, verdict.Level, constants.SourceAutoClassified, verdict.RuleID)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("insert classified threat: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit detection: %w", err)
	}

	return &DetectionResult{
		DetectionID: detectionID,
		ThreatID:    threatID,
		Level:       verdict.Level,
		RuleID:      verdict.RuleID,
	}, nil
}
