package entities

import (
	"time"

	"skyshield/bastion/internal/constants"
)

type ClassifiedThreat struct {
	ThreatID           int64                 `db:"threat_id"`
	DetectionID        int64                 `db:"detection_id"`
	ThreatLevel        constants.ThreatLevel `db:"threat_level"`
	Source             string                `db:"source"`
	RuleID             *int64                `db:"rule_id"`
	ClassificationTime time.Time             `db:"classification_time"`
	OperatorID         *int64                `db:"operator_id"`
}
