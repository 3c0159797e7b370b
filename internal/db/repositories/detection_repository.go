package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/models/entities"
)

type DetectionRepository struct {
	db *sqlx.DB
}

func NewDetectionRepository(db *sqlx.DB) *DetectionRepository {
	return &DetectionRepository{db}
}

// DB exposes the handle so services can open transactions spanning the
// detection and threat inserts.
func (r *DetectionRepository) DB() *sqlx.DB {
	return r.db
}

// Insert writes one detection row and returns its id. q may be the
// pool or an open transaction.
func (r *DetectionRepository) Insert(ctx context.Context, q sqlx.ExtContext, d *entities.DetectedAircraft) (int64, error) {
	var id int64
	err := q.QueryRowxContext(ctx, constants.InsertDetection,
		d.AircraftIdentifier,
		d.Latitude,
		d.Longitude,
		d.AltitudeFt,
		d.SpeedKts,
		d.HeadingDeg,
		d.RadarID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *DetectionRepository) ListWithThreats(ctx context.Context) ([]entities.AircraftWithThreat, error) {
	rows := []entities.AircraftWithThreat{}
	if err := r.db.SelectContext(ctx, &rows, constants.ListDetectedAircraft); err != nil {
		return nil, err
	}
	return rows, nil
}
