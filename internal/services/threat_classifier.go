package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"skyshield/bastion/internal/constants"
	"skyshield/bastion/internal/models/entities"
)

// Classification is the classifier's verdict for one detection. RuleID
// is nil when no rule matched and the level fell back to Unknown.
type Classification struct {
	Level  constants.ThreatLevel
	RuleID *int64
}

// ClassifyThreat evaluates the rule set against a detection's submitted
// fields. Rules are taken in the order given (the repository orders by
// rule_id); the first rule whose named field is present and whose
// comparison holds wins. Rules naming a field absent from the
// submission are skipped. Pure function, no side effects.
func ClassifyThreat(fields map[string]interface{}, rules []entities.ClassificationRule) Classification {
	lowered := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		lowered[strings.ToLower(k)] = v
	}

	for _, rule := range rules {
		value, ok := lowered[strings.ToLower(rule.ParameterName)]
		if !ok {
			continue
		}
		if ruleMatches(value, rule.Operator, rule.Value) {
			id := rule.RuleID
			return Classification{Level: rule.AssignedThreatLevel, RuleID: &id}
		}
	}

	return Classification{Level: constants.ThreatUnknown}
}

// ruleMatches compares numerically when both sides parse as numbers;
// otherwise "=" falls back to string equality and "<"/">" never match.
func ruleMatches(field interface{}, operator, threshold string) bool {
	if fv, ok := toFloat(field); ok {
		if tv, err := strconv.ParseFloat(strings.TrimSpace(threshold), 64); err == nil {
			switch operator {
			case "<":
				return fv < tv
			case ">":
				return fv > tv
			case "=":
				return fv == tv
			}
			return false
		}
	}

	if operator == "=" {
		return fmt.Sprintf("%v", field) == threshold
	}
	return false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
