package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/models/entities"
)

type SurveillanceRepository struct {
	db *sqlx.DB
}

func NewSurveillanceRepository(db *sqlx.DB) *SurveillanceRepository {
	return &SurveillanceRepository{db}
}

func (r *SurveillanceRepository) Summary(ctx context.Context) ([]entities.StationSummary, error) {
	rows := []entities.StationSummary{}
	if err := r.db.SelectContext(ctx, &rows, constants.SurveillanceSummary); err != nil {
		return nil, err
	}
	return rows, nil
}
