package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/models/entities"
)

type RuleRepository struct {
	db *sqlx.DB
}

func NewRuleRepository(db *sqlx.DB) *RuleRepository {
	return &RuleRepository{db}
}

// ListEnabled returns enabled rules in rule_id order, which is the
// order the classifier evaluates them in.
func (r *RuleRepository) ListEnabled(ctx context.Context) ([]entities.ClassificationRule, error) {
	rules := []entities.ClassificationRule{}
	if err := r.db.SelectContext(ctx, &rules, constants.ListEnabledRules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *RuleRepository) ListAll(ctx context.Context) ([]entities.ClassificationRule, error) {
	rules := []entities.ClassificationRule{}
	if err := r.db.SelectContext(ctx, &rules, constants.ListAllRules); err != nil {
		return nil, err
	}
	return rules, nil
}
