package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/models/entities"
)

type MissileRepository struct {
	db *sqlx.DB
}

func NewMissileRepository(db *sqlx.DB) *MissileRepository {
	return &MissileRepository{db}
}

func (r *MissileRepository) ListAvailable(ctx context.Context) ([]entities.AvailableMissile, error) {
	missiles := []entities.AvailableMissile{}
	if err := r.db.SelectContext(ctx, &missiles, constants.ListAvailableMissiles); err != nil {
		return nil, err
	}
	return missiles, nil
}

func (r *MissileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, constants.CountMissiles); err != nil {
		return 0, err
	}
	return count, nil
}

// SerialExists reports whether a serial number is already assigned.
func (r *MissileRepository) SerialExists(ctx context.Context, serialNumber string) (bool, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, constants.CountMissilesBySerial, serialNumber); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MissileRepository) Insert(ctx context.Context, missileType, serialNumber string) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, constants.InsertMissile, missileType, serialNumber).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Consume flips one missile Available -> Used. The WHERE clause carries
// the availability check, so the affected-row count is the race guard:
// zero rows means the missile was already used or never existed.
func (r *MissileRepository) Consume(ctx context.Context, q sqlx.ExtContext, missileID int64) (int64, error) {
	res, err := q.ExecContext(ctx, constants.ConsumeAvailableMissile, missileID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
