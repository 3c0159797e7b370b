package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/models/entities"
)

type OperatorRepository struct {
	db *sqlx.DB
}

func NewOperatorRepository(db *sqlx.DB) *OperatorRepository {
	return &OperatorRepository{db}
}

// FindByUsername returns sql.ErrNoRows when the username is unknown.
func (r *OperatorRepository) FindByUsername(ctx context.Context, username string) (*entities.Operator, error) {
	var op entities.Operator
	err := r.db.QueryRowxContext(ctx, constants.GetOperatorByUsername, username).StructScan(&op)
	if err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *OperatorRepository) TouchLastLogin(ctx context.Context, operatorID int64) error {
	_, err := r.db.ExecContext(ctx, constants.TouchOperatorLastLogin, operatorID)
	return err
}
