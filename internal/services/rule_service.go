package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skyshield/bastion/internal/common"
	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/db/repositories"
	"skyshield/bastion/internal/models/entities"
)

const enabledRulesTTL = 30 * time.Second

// RuleService serves the classification rule set, caching the enabled
// subset briefly since every detection reads it.
type RuleService struct {
	repo  *repositories.RuleRepository
	cache common.CacheInterface
}

func NewRuleService(repo *repositories.RuleRepository, cache common.CacheInterface) *RuleService {
	return &RuleService{repo: repo, cache: cache}
}

// EnabledRules returns enabled rules in evaluation order.
func (s *RuleService) EnabledRules(ctx context.Context) ([]entities.ClassificationRule, error) {
	val, err := s.cache.GetOrSet(string(constants.CachePrefixEnabledRules), enabledRulesTTL, func() (any, error) {
		return s.repo.ListEnabled(ctx)
	})
	if err != nil {
		return nil, err
	}

	if rules, ok := val.([]entities.ClassificationRule); ok {
		return rules, nil
	}

	// Redis round-trips values through JSON; re-decode to the concrete
	// type.
	data, err := json.Marshal(val)
	if err != nil {
		return nil, fmt.Errorf("decode cached rules: %w", err)
	}
	var rules []entities.ClassificationRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("decode cached rules: %w", err)
	}
	return rules, nil
}

// ListAll returns every rule, enabled or not, for the operator
// reference view.
func (s *RuleService) ListAll(ctx context.Context) ([]entities.ClassificationRule, error) {
	return s.repo.ListAll(ctx)
}
