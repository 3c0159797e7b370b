package entities

import (
	"time"

	"skyshield/bastion/internal/constants"
)

// AlertRow is one row of the alert list join.
type AlertRow struct {
	AlertID            int64                 `db:"alert_id"`
	ThreatID           int64                 `db:"threat_id"`
	AlertTime          time.Time             `db:"alert_time"`
	Reason             string                `db:"reason"`
	IsAcknowledged     bool                  `db:"is_acknowledged"`
	AircraftIdentifier string                `db:"aircraft_identifier"`
	ThreatLevel        constants.ThreatLevel `db:"threat_level"`
}

// ThreatNeedingAlert is a qualifying threat picked by the alert generator.
type ThreatNeedingAlert struct {
	ThreatID           int64                 `db:"threat_id"`
	AircraftIdentifier string                `db:"aircraft_identifier"`
	ThreatLevel        constants.ThreatLevel `db:"threat_level"`
}
