package gorm

import "time"

// AutomatedAlert is a system-raised notice for a high/critical threat.
// The unique index on threat_id enforces at-most-one-alert-per-threat at
// the data layer, so concurrent generate calls cannot double-alert.
type AutomatedAlert struct {
	AlertID                  int64     `gorm:"column:alert_id;primaryKey;autoIncrement"`
	ThreatID                 int64     `gorm:"column:threat_id;not null;uniqueIndex"`
	AlertTime                time.Time `gorm:"column:alert_time;not null;default:CURRENT_TIMESTAMP"`
	Reason                   string    `gorm:"column:reason;not null"`
	IsAcknowledged           bool      `gorm:"column:is_acknowledged;not null;default:false"`
	AcknowledgedByOperatorID *int64    `gorm:"column:acknowledged_by_operator_id"`

	Threat ClassifiedThreat `gorm:"foreignKey:ThreatID;references:ThreatID"`
}

// TableName specifies the table name for GORM
func (AutomatedAlert) TableName() string {
	return "automated_alerts"
}
