package gorm

import "time"

// ClassifiedThreat is the 1:1 classification attached to a detection.
// Overrides mutate threat_level, source, classification_time and
// operator_id in place.
type ClassifiedThreat struct {
	ThreatID           int64     `gorm:"column:threat_id;primaryKey;autoIncrement"`
	DetectionID        int64     `gorm:"column:detection_id;not null;uniqueIndex"`
	ThreatLevel        string    `gorm:"column:threat_level;not null;default:Unknown"`
	Source             string    `gorm:"column:source;not null;default:Auto-classified"`
	RuleID             *int64    `gorm:"column:rule_id"`
	ClassificationTime time.Time `gorm:"column:classification_time;not null;default:CURRENT_TIMESTAMP"`
	OperatorID         *int64    `gorm:"column:operator_id"`

	Detection DetectedAircraft `gorm:"foreignKey:DetectionID;references:DetectionID"`
}

// TableName specifies the table name for GORM
func (ClassifiedThreat) TableName() string {
	return "classified_threats"
}
