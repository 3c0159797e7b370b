package entities

import (
	"time"

	"skyshield/bastion/internal/constants"
)

type DetectedAircraft struct {
	DetectionID        int64     `db:"detection_id"`
	AircraftIdentifier string    `db:"aircraft_identifier"`
	Latitude           float64   `db:"latitude"`
	Longitude          float64   `db:"longitude"`
	AltitudeFt         float64   `db:"altitude_ft"`
	SpeedKts           float64   `db:"speed_kts"`
	HeadingDeg         float64   `db:"heading_deg"`
	DetectionTime      time.Time `db:"detection_time"`
	RadarID            int64     `db:"radar_id"`
}

// AircraftWithThreat is one row of the aircraft list join: a detection,
// its radar station name and its 1:1 classified threat.
type AircraftWithThreat struct {
	DetectionID        int64                 `db:"detection_id"`
	AircraftIdentifier string                `db:"aircraft_identifier"`
	DetectionTime      time.Time             `db:"detection_time"`
	Latitude           float64               `db:"latitude"`
	Longitude          float64               `db:"longitude"`
	AltitudeFt         float64               `db:"altitude_ft"`
	SpeedKts           float64               `db:"speed_kts"`
	HeadingDeg         float64               `db:"heading_deg"`
	RadarStationName   string                `db:"radar_station_name"`
	ThreatID           int64                 `db:"threat_id"`
	ThreatLevel        constants.ThreatLevel `db:"threat_level"`
	ClassificationTime time.Time             `db:"classification_time"`
	Source             string                `db:"source"`
}
