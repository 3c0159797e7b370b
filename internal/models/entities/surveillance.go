package entities

// StationSummary aggregates one radar station's detections. Altitude
// bounds are nil for stations with no detections.
type StationSummary struct {
	StationName           string   `db:"station_name" json:"station_name"`
	OperationalStatus     string   `db:"operational_status" json:"operational_status"`
	DetectedAircraftCount int64    `db:"detected_aircraft_count" json:"detected_aircraft_count"`
	HighThreatCount       int64    `db:"high_threat_count" json:"high_threat_count"`
	MaxAltitudeFt         *float64 `db:"max_altitude_ft" json:"max_altitude_ft"`
	MinAltitudeFt         *float64 `db:"min_altitude_ft" json:"min_altitude_ft"`
	AvgSpeedKts           float64  `db:"avg_speed_kts" json:"avg_speed_kts"`
}
