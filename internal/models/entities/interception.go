package entities

import (
	"time"

	"skyshield/bastion/internal/constants"
)

type InterceptionLog struct {
	LogID            int64     `db:"log_id"`
	ThreatID         int64     `db:"threat_id"`
	MissileID        int64     `db:"missile_id"`
	OperatorID       int64     `db:"operator_id"`
	ResultDetails    string    `db:"result_details"`
	InterceptionTime time.Time `db:"interception_time"`
}

// IncidentSnapshot is the joined state captured at interception time and
// denormalized onto the incident report.
type IncidentSnapshot struct {
	AircraftIdentifier string                `db:"aircraft_identifier"`
	ThreatLevel        constants.ThreatLevel `db:"threat_level"`
	MissileType        string                `db:"missile_type"`
	OperatorUsername   string                `db:"launching_operator_username"`
}

// IncidentReportRow is one row of the incident list join.
type IncidentReportRow struct {
	ReportID              int64                 `db:"report_id"`
	LogID                 int64                 `db:"log_id"`
	IncidentTime          time.Time             `db:"incident_time"`
	AircraftIdentifier    string                `db:"aircraft_identifier"`
	ThreatLevelAtIncident constants.ThreatLevel `db:"threat_level_at_incident"`
	MissileTypeUsed       string                `db:"missile_type_used"`
	LaunchingOperator     string                `db:"launching_operator_username"`
	InterceptionResult    string                `db:"interception_result"`
	ReportSummary         string                `db:"report_summary"`
	InterceptionDetails   string                `db:"interception_details"`
}
