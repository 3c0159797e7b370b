package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/models/entities"
)

type StationRepository struct {
	db *sqlx.DB
}

func NewStationRepository(db *sqlx.DB) *StationRepository {
	return &StationRepository{db}
}

func (r *StationRepository) ListStations(ctx context.Context) ([]entities.RadarStation, error) {
	stations := []entities.RadarStation{}
	if err := r.db.SelectContext(ctx, &stations, constants.ListRadarStations); err != nil {
		return nil, err
	}
	return stations, nil
}
