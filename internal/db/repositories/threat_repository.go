package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skyshield/bastion/internal/constants"
)

type ThreatRepository struct {
	db *sqlx.DB
}

func NewThreatRepository(db *sqlx.DB) *ThreatRepository {
	return &ThreatRepository{db}
}

// InsertClassification writes the threat row paired 1:1 with a
// detection. ruleID is nil when no rule matched.
func (r *ThreatRepository) InsertClassification(ctx context.Context, q sqlx.ExtContext,
	detectionID int64, level constants.ThreatLevel, source constants.ThreatSource, ruleID *int64) (int64, error) {

	var id int64
	err := q.QueryRowxContext(ctx, constants.InsertClassifiedThreat,
		detectionID, level, string(source), ruleID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Override applies an operator's manual level. Returns the number of
// rows updated; zero means the threat id does not exist.
func (r *ThreatRepository) Override(ctx context.Context, threatID, operatorID int64, level constants.ThreatLevel) (int64, error) {
	res, err := r.db.ExecContext(ctx, constants.OverrideThreatLevel, level, operatorID, threatID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
