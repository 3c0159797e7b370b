package entities

import "skyshield/bastion/internal/constants"

// ClassificationRule is one row of the threat rule table. Value is kept
// as text; the classifier decides whether a comparison is numeric.
type ClassificationRule struct {
	RuleID              int64                 `db:"rule_id" json:"rule_id"`
	ParameterName       string                `db:"parameter_name" json:"parameter_name"`
	Operator            string                `db:"operator" json:"operator"`
	Value               string                `db:"value" json:"value"`
	AssignedThreatLevel constants.ThreatLevel `db:"assigned_threat_level" json:"assigned_threat_level"`
	IsEnabled           bool                  `db:"is_enabled" json:"is_enabled"`
}
