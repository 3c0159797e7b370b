package gorm

import "time"

// DetectedAircraft is one radar observation. Rows are immutable after
// creation.
type DetectedAircraft struct {
	DetectionID        int64     `gorm:"column:detection_id;primaryKey;autoIncrement"`
	AircraftIdentifier string    `gorm:"column:aircraft_identifier;not null"`
	Latitude           float64   `gorm:"column:latitude;not null"`
	Longitude          float64   `gorm:"column:longitude;not null"`
	AltitudeFt         float64   `gorm:"column:altitude_ft;not null"`
	SpeedKts           float64   `gorm:"column:speed_kts;not null"`
	HeadingDeg         float64   `gorm:"column:heading_deg;not null"`
	DetectionTime      time.Time `gorm:"column:detection_time;not null;default:CURRENT_TIMESTAMP"`
	RadarID            int64     `gorm:"column:radar_id;not null;index"`

	Radar RadarStation `gorm:"foreignKey:RadarID;references:RadarID"`
}

// TableName specifies the table name for GORM
func (DetectedAircraft) TableName() string {
	return "detected_aircraft"
}
