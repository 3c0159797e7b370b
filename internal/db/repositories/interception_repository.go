package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/models/entities"
)

type InterceptionRepository struct {
	db *sqlx.DB
}

func NewInterceptionRepository(db *sqlx.DB) *InterceptionRepository {
	return &InterceptionRepository{db}
}

// DB exposes the handle so the interception service can run the whole
// workflow in one transaction.
func (r *InterceptionRepository) DB() *sqlx.DB {
	return r.db
}

func (r *InterceptionRepository) InsertLog(ctx context.Context, q sqlx.ExtContext,
	threatID, missileID, operatorID int64, resultDetails string) (int64, error) {

	var id int64
	err := q.QueryRowxContext(ctx, constants.InsertInterceptionLog,
		threatID, missileID, operatorID, resultDetails,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Snapshot joins detection, threat, missile and operator state for the
// incident report. Returns sql.ErrNoRows on referential inconsistency.
func (r *InterceptionRepository) Snapshot(ctx context.Context, q sqlx.ExtContext,
	missileID, operatorID, threatID int64) (*entities.IncidentSnapshot, error) {

	var snap entities.IncidentSnapshot
	err := q.QueryRowxContext(ctx, constants.IncidentSnapshot, missileID, operatorID, threatID).StructScan(&snap)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *InterceptionRepository) InsertIncident(ctx context.Context, q sqlx.ExtContext,
	logID int64, snap *entities.IncidentSnapshot, summary string) (int64, error) {

	var id int64
	err := q.QueryRowxContext(ctx, constants.InsertIncidentReport,
		logID,
		snap.AircraftIdentifier,
		snap.ThreatLevel,
		snap.MissileType,
		snap.OperatorUsername,
		summary,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *InterceptionRepository) ListIncidents(ctx context.Context) ([]entities.IncidentReportRow, error) {
	reports := []entities.IncidentReportRow{}
	if err := r.db.SelectContext(ctx, &reports, constants.ListIncidentReports); err != nil {
		return nil, err
	}
	return reports, nil
}
