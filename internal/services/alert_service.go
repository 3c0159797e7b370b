package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skyshield/bastion/internal/db/repositories"
	"skyshield/bastion/internal/models/entities"
)

// AlertService raises and acknowledges automated alerts.
type AlertService struct {
	alerts *repositories.AlertRepository
}

func NewAlertService(alerts *repositories.AlertRepository) *AlertService {
	return &AlertService{alerts: alerts}
}

// GeneratedAlert reports a newly raised alert.
type GeneratedAlert struct {
	AlertID            int64
	ThreatID           int64
	AircraftIdentifier string
}

// GenerateUninterceptedThreatAlert raises an alert for the lowest-id
// High/Critical threat with no interception and no existing alert.
// Returns ErrNoThreatToAlert when nothing qualifies, which callers
// treat as an idempotent no-op.
func (s *AlertService) GenerateUninterceptedThreatAlert(ctx context.Context) (*GeneratedAlert, error) {
	threat, err := s.alerts.FindThreatNeedingAlert(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoThreatToAlert
		}
		return nil, fmt.Errorf("find threat needing alert: %w", err)
	}

	reason := fmt.Sprintf("Unintercepted %s threat detected: %s.", threat.ThreatLevel, threat.AircraftIdentifier)

	alertID, err := s.alerts.Insert(ctx, threat.ThreatID, reason)
	if err != nil {
		return nil, fmt.Errorf("insert alert for threat %d: %w", threat.ThreatID, err)
	}

	return &GeneratedAlert{
		AlertID:            alertID,
		ThreatID:           threat.ThreatID,
		AircraftIdentifier: threat.AircraftIdentifier,
	}, nil
}

// Acknowledge flips an alert's acknowledged flag once. ErrNotFound
// covers both a missing alert and one already acknowledged.
func (s *AlertService) Acknowledge(ctx context.Context, alertID, operatorID int64) error {
	affected, err := s.alerts.Acknowledge(ctx, alertID, operatorID)
	if err != nil {
		return fmt.Errorf("acknowledge alert %d: %w", alertID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AlertService) List(ctx context.Context) ([]entities.AlertRow, error) {
	return s.alerts.List(ctx)
}
