package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/models/entities"
)

type AlertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db}
}

// FindThreatNeedingAlert picks the lowest-id High/Critical threat with
// neither an interception log nor an existing alert. Returns
// sql.ErrNoRows when nothing qualifies.
func (r *AlertRepository) FindThreatNeedingAlert(ctx context.Context) (*entities.ThreatNeedingAlert, error) {
	var threat entities.ThreatNeedingAlert
	err := r.db.QueryRowxContext(ctx, constants.FindThreatNeedingAlert).StructScan(&threat)
	if err != nil {
		return nil, err
	}
	return &threat, nil
}

func (r *AlertRepository) Insert(ctx context.Context, threatID int64, reason string) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, constants.InsertAutomatedAlert, threatID, reason).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AlertRepository) List(ctx context.Context) ([]entities.AlertRow, error) {
	alerts := []entities.AlertRow{}
	if err := r.db.SelectContext(ctx, &alerts, constants.ListAutomatedAlerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// Acknowledge flips is_acknowledged once. Zero rows affected means the
// alert is missing or was already acknowledged.
func (r *AlertRepository) Acknowledge(ctx context.Context, alertID, operatorID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, constants.AcknowledgeAlert, operatorID, alertID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
