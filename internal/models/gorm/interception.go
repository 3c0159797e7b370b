package gorm

import "time"

// InterceptionLog records one successful interception attempt.
type InterceptionLog struct {
	LogID            int64     `gorm:"column:log_id;primaryKey;autoIncrement"`
	ThreatID         int64     `gorm:"column:threat_id;not null;index"`
	MissileID        int64     `gorm:"column:missile_id;not null"`
	OperatorID       int64     `gorm:"column:operator_id;not null"`
	ResultDetails    string    `gorm:"column:result_details;not null"`
	InterceptionTime time.Time `gorm:"column:interception_time;not null;default:CURRENT_TIMESTAMP"`

	Threat  ClassifiedThreat `gorm:"foreignKey:ThreatID;references:ThreatID"`
	Missile Missile          `gorm:"foreignKey:MissileID;references:MissileID"`
}

// TableName specifies the table name for GORM
func (InterceptionLog) TableName() string {
	return "interception_log"
}

// IncidentReport is the denormalized snapshot written atomically with an
// interception log row. Immutable after creation; interception_result
// stays "Pending".
type IncidentReport struct {
	ReportID                  int64     `gorm:"column:report_id;primaryKey;autoIncrement"`
	LogID                     int64     `gorm:"column:log_id;not null;uniqueIndex"`
	IncidentTime              time.Time `gorm:"column:incident_time;not null;default:CURRENT_TIMESTAMP"`
	AircraftIdentifier        string    `gorm:"column:aircraft_identifier;not null"`
	ThreatLevelAtIncident     string    `gorm:"column:threat_level_at_incident;not null"`
	MissileTypeUsed           string    `gorm:"column:missile_type_used;not null"`
	LaunchingOperatorUsername string    `gorm:"column:launching_operator_username;not null"`
	InterceptionResult        string    `gorm:"column:interception_result;not null;default:Pending"`
	ReportSummary             string    `gorm:"column:report_summary;not null"`

	Log InterceptionLog `gorm:"foreignKey:LogID;references:LogID"`
}

// TableName specifies the table name for GORM
func (IncidentReport) TableName() string {
	return "incident_reports"
}
