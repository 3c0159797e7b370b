package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skyshield/bastion/internal/db/repositories"
	"skyshield/bastion/internal/models/entities"
)

const defaultInterceptionNotes = "Interception initiated"

// InterceptionService runs the launch workflow: log the attempt,
// consume the missile, derive the incident report. All three writes
// share one transaction.
type InterceptionService struct {
	interceptions *repositories.InterceptionRepository
	missiles      *repositories.MissileRepository
}

func NewInterceptionService(interceptions *repositories.InterceptionRepository, missiles *repositories.MissileRepository) *InterceptionService {
	return &InterceptionService{interceptions: interceptions, missiles: missiles}
}

// InterceptionResult reports a committed interception.
type InterceptionResult struct {
	LogID     int64
	ReportID  int64
	ThreatID  int64
	MissileID int64
}

// Intercept attempts to consume one missile against one threat.
//
// The missile update is a conditional UPDATE whose affected-row count
// gates the rest of the workflow; two concurrent attempts on the same
// missile cannot both pass it. Any failure after the first write rolls
// the whole attempt back, so no partial log/missile/report state
// survives.
func (s *InterceptionService) Intercept(ctx context.Context, threatID, missileID, operatorID int64, notes string) (*InterceptionResult, error) {
	if notes == "" {
		notes = defaultInterceptionNotes
	}

	tx, err := s.interceptions.DB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin interception transaction: %w", err)
	}

	logID, err := s.interceptions.InsertLog(ctx, tx, threatID, missileID, operatorID, notes)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("insert interception log: %w", err)
	}

	affected, err := s.missiles.Consume(ctx, tx, missileID)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("consume missile %d: %w", missileID, err)
	}
	if affected == 0 {
		_ = tx.Rollback()
		return nil, ErrMissileUnavailable
	}

	snap, err := s.interceptions.Snapshot(ctx, tx, missileID, operatorID, threatID)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("incident snapshot: %w", err)
	}

	summary := fmt.Sprintf("Interception initiated against %s (Threat: %s) using %s by %s.",
		snap.AircraftIdentifier, snap.ThreatLevel, snap.MissileType, snap.OperatorUsername)

	reportID, err := s.interceptions.InsertIncident(ctx, tx, logID, snap, summary)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("insert incident report: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit interception: %w", err)
	}

	return &InterceptionResult{
		LogID:     logID,
		ReportID:  reportID,
		ThreatID:  threatID,
		MissileID: missileID,
	}, nil
}

func (s *InterceptionService) ListIncidents(ctx context.Context) ([]entities.IncidentReportRow, error) {
	return s.interceptions.ListIncidents(ctx)
}
